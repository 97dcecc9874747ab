package dashboard

import (
	"hotel_dashboard/internal/domain"
)

type Options struct {
	BinWidth int
}

// Build runs the whole pipeline for one criteria value: filter, then the
// aggregate and every derived view over the filtered set. It also returns
// the filtered set itself.
func Build(hotels []domain.Hotel, c domain.Criteria, opts Options) (domain.Snapshot, []domain.Hotel) {
	filtered := Filter(hotels, c)
	return domain.Snapshot{
		Criteria:    c.Normalize(),
		Metrics:     Aggregate(filtered),
		Scatter:     Scatter(filtered),
		Quadrants:   Quadrants(filtered),
		ReviewRates: ReviewRateCounts(filtered),
		Histogram:   PriceHistogram(filtered, opts.BinWidth),
		Markers:     Markers(filtered),
	}, filtered
}
