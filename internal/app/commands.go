package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_dashboard/internal/adapters/observability"
	"hotel_dashboard/internal/dashboard"
	"hotel_dashboard/internal/domain"
)

// LoadStore pulls the full record set from src and validates it into a
// Store. Any failure, fetch or validation, comes back wrapped in
// domain.ErrDataUnavailable; nothing is retried here.
func LoadStore(ctx context.Context, src domain.HotelSource) (*dashboard.Store, error) {
	start := time.Now()
	hs, err := src.LoadHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load: %w", domain.ErrDataUnavailable, err)
	}
	s, err := dashboard.NewStore(hs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, err)
	}
	log.Info().
		Int("hotels", s.Len()).
		Str("version", s.Version()).
		Dur("took", time.Since(start)).
		Msg("record store loaded")
	return s, nil
}

// SeedService copies a generated record set into a repository.
type SeedService struct {
	src  domain.HotelSource
	repo domain.HotelRepository
}

func NewSeedService(src domain.HotelSource, repo domain.HotelRepository) *SeedService {
	return &SeedService{src: src, repo: repo}
}

type SeedResult struct {
	Written int
	Failed  int
	Batches int
}

// Seed validates the source set, splits it into batches and writes them
// with at most workers concurrent upserts. Failed batches are logged and
// counted; the joined batch errors are returned.
func (s *SeedService) Seed(ctx context.Context, batchSize, workers int) (SeedResult, error) {
	if batchSize <= 0 {
		batchSize = 100
	}
	if workers <= 0 {
		workers = 1
	}

	store, err := LoadStore(ctx, s.src)
	if err != nil {
		return SeedResult{}, err
	}
	hotels := store.Hotels()

	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		res  SeedResult
		errs []error
	)

	for start := 0; start < len(hotels); start += batchSize {
		batch := hotels[start:min(start+batchSize, len(hotels))]

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}
		res.Batches++

		wg.Add(1)
		go func(first int, batch []domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			err := s.repo.UpsertHotels(ctx, batch)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed += len(batch)
				errs = append(errs, fmt.Errorf("batch at %d: %w", first, err))
				observability.ObserveSeeded("failed", len(batch))
				log.Warn().Int("first", first).Int("size", len(batch)).Err(err).Msg("seed batch failed")
				return
			}
			res.Written += len(batch)
			observability.ObserveSeeded("ok", len(batch))
			log.Debug().Int("first", first).Int("size", len(batch)).Msg("seed batch ok")
		}(start, batch)
	}

	wg.Wait()
	return res, errors.Join(errs...)
}
