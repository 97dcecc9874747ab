package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_dashboard/internal/adapters/observability"
	"hotel_dashboard/internal/dashboard"
	"hotel_dashboard/internal/domain"
)

// QueryService answers every read the dashboard makes against one
// immutable Store. cache may be nil.
type QueryService struct {
	store    *dashboard.Store
	cache    domain.Cache
	cacheTTL time.Duration
	binWidth int
}

func NewQueryService(s *dashboard.Store, c domain.Cache, ttl time.Duration, binWidth int) *QueryService {
	if binWidth <= 0 {
		binWidth = dashboard.DefaultBinWidth
	}
	return &QueryService{store: s, cache: c, cacheTTL: ttl, binWidth: binWidth}
}

// Snapshot filters the store and derives every view for c. binWidth <= 0
// uses the service default.
func (s *QueryService) Snapshot(ctx context.Context, c domain.Criteria, binWidth int) (domain.Snapshot, error) {
	if binWidth <= 0 {
		binWidth = s.binWidth
	}
	key := fmt.Sprintf("snapshot:%s:%d:%s", s.store.Version(), binWidth, c.Key())
	var snap domain.Snapshot
	if s.cache != nil {
		ok, err := s.cache.Get(ctx, key, &snap)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("snapshot cache get failed, rebuilding")
		}
		if ok {
			return snap, nil
		}
	}

	start := time.Now()
	snap, filtered := dashboard.Build(s.store.Hotels(), c, dashboard.Options{BinWidth: binWidth})
	observability.ObservePipeline("build", len(filtered), time.Since(start))

	if s.cache != nil {
		// optional size guard
		if b, _ := json.Marshal(snap); len(b) < 1_000_000 {
			if err := s.cache.Set(ctx, key, snap, int(s.cacheTTL.Seconds())); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("snapshot cache set failed")
			}
		}
	}
	return snap, nil
}

// Hotels returns the filtered set itself, in store order.
func (s *QueryService) Hotels(ctx context.Context, c domain.Criteria) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	out := dashboard.Filter(s.store.Hotels(), c)
	observability.ObservePipeline("filter", len(out), time.Since(start))
	return out, nil
}

func (s *QueryService) Hotel(ctx context.Context, id int64) (domain.Hotel, error) {
	h, ok := s.store.Get(id)
	if !ok {
		return domain.Hotel{}, fmt.Errorf("hotel %d: %w", id, domain.ErrNotFound)
	}
	return h, nil
}

func (s *QueryService) Options(ctx context.Context) domain.FilterOptions {
	return s.store.Options()
}

// Compare ignores filters: it always resolves against the full store.
func (s *QueryService) Compare(ctx context.Context, ids []int64) (domain.ComparisonTable, error) {
	table, err := dashboard.Compare(s.store, ids)
	if err != nil {
		observability.ObserveCompareRejected()
		return domain.ComparisonTable{}, err
	}
	return table, nil
}
