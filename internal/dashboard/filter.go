package dashboard

import (
	"hotel_dashboard/internal/domain"
)

// Filter returns the hotels matching every clause of c, in input order.
// The input is never modified. Malformed parts of c are ignored, so the
// zero Criteria returns every hotel.
func Filter(hotels []domain.Hotel, c domain.Criteria) []domain.Hotel {
	n := c.Normalize()

	var rooms map[string]struct{}
	if len(n.RoomTypes) > 0 {
		rooms = make(map[string]struct{}, len(n.RoomTypes))
		for _, rt := range n.RoomTypes {
			rooms[rt] = struct{}{}
		}
	}

	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if matches(h, n, rooms) {
			out = append(out, h)
		}
	}
	return out
}

func matches(h domain.Hotel, c domain.Criteria, rooms map[string]struct{}) bool {
	if c.City != nil && h.City != *c.City {
		return false
	}
	if c.PriceMin != nil && h.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && h.Price > *c.PriceMax {
		return false
	}
	if len(c.MinScores) > 0 && !meetsAny(h.Score, c.MinScores) {
		return false
	}
	if rooms != nil {
		if _, ok := rooms[h.RoomType]; !ok {
			return false
		}
	}
	if c.FreeCancellation && !h.FreeCancellation {
		return false
	}
	if c.NoPrepayment && !h.NoPrepaymentNeeded {
		return false
	}
	if c.BreakfastIncluded && !h.BreakfastIncluded {
		return false
	}
	return true
}

func meetsAny(score float64, thresholds []float64) bool {
	for _, t := range thresholds {
		if score >= t {
			return true
		}
	}
	return false
}
