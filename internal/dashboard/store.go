package dashboard

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"hotel_dashboard/internal/domain"
)

// Store is the session's record set. It is built once and only read
// afterwards, so it is safe for concurrent use.
type Store struct {
	hotels  []domain.Hotel
	byID    map[int64]int
	version string
}

// NewStore validates every record and indexes it by id. Duplicate ids and
// invalid records are rejected.
func NewStore(hotels []domain.Hotel) (*Store, error) {
	s := &Store{
		hotels: make([]domain.Hotel, len(hotels)),
		byID:   make(map[int64]int, len(hotels)),
	}
	copy(s.hotels, hotels)
	for i, h := range s.hotels {
		if err := h.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[h.ID]; dup {
			return nil, &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate hotel id %d", h.ID)}
		}
		s.byID[h.ID] = i
	}

	b, err := json.Marshal(s.hotels)
	if err != nil {
		return nil, fmt.Errorf("fingerprint store: %w", err)
	}
	sum := sha1.Sum(b)
	s.version = hex.EncodeToString(sum[:8])
	return s, nil
}

func (s *Store) Len() int { return len(s.hotels) }

// Hotels returns a copy of the full record set in load order.
func (s *Store) Hotels() []domain.Hotel {
	out := make([]domain.Hotel, len(s.hotels))
	copy(out, s.hotels)
	return out
}

func (s *Store) Get(id int64) (domain.Hotel, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Hotel{}, false
	}
	return s.hotels[i], true
}

// Version fingerprints the record set; cache keys include it so entries
// from another data set are never served.
func (s *Store) Version() string { return s.version }

// Options lists the values the filter panel offers for this store.
func (s *Store) Options() domain.FilterOptions {
	return domain.FilterOptions{
		Cities:          distinctSorted(s.hotels, func(h domain.Hotel) string { return h.City }),
		RoomTypes:       distinctSorted(s.hotels, func(h domain.Hotel) string { return h.RoomType }),
		ReviewRates:     append([]string(nil), domain.ReviewRates...),
		ScoreThresholds: append([]float64(nil), domain.ScoreThresholds...),
	}
}

func distinctSorted(hs []domain.Hotel, field func(domain.Hotel) string) []string {
	seen := make(map[string]struct{}, 16)
	out := make([]string, 0, 16)
	for _, h := range hs {
		v := field(h)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
