package dashboard

import (
	"fmt"
	"math"
	"sort"

	"hotel_dashboard/internal/domain"
)

const DefaultBinWidth = 50

// ---- scatter ----

func Scatter(hotels []domain.Hotel) []domain.ScatterPoint {
	out := make([]domain.ScatterPoint, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, domain.ScatterPoint{
			Price:   h.Price,
			Score:   h.Score,
			Reviews: h.Reviews,
			Name:    h.Name,
			Tier:    TierFor(h.Score),
		})
	}
	return out
}

func TierFor(score float64) domain.ScoreTier {
	switch {
	case score >= 9:
		return domain.TierExcellent
	case score >= 8:
		return domain.TierVeryGood
	default:
		return domain.TierStandard
	}
}

// ---- quadrants ----

// Quadrants splits hotels around the median price and median score. The
// median is sorted[n/2] for both odd and even n, and a value equal to the
// median counts as high.
func Quadrants(hotels []domain.Hotel) domain.QuadrantView {
	view := domain.QuadrantView{
		Points: make([]domain.QuadrantPoint, 0, len(hotels)),
		Counts: make([]domain.QuadrantCount, len(domain.Quadrants)),
	}
	for i, q := range domain.Quadrants {
		view.Counts[i].Quadrant = q
	}
	if len(hotels) == 0 {
		return view
	}

	prices := make([]int, len(hotels))
	scores := make([]float64, len(hotels))
	for i, h := range hotels {
		prices[i] = h.Price
		scores[i] = h.Score
	}
	sort.Ints(prices)
	sort.Float64s(scores)
	view.PriceMedian = prices[len(prices)/2]
	view.ScoreMedian = scores[len(scores)/2]

	for _, h := range hotels {
		q := classify(h, view.PriceMedian, view.ScoreMedian)
		view.Points = append(view.Points, domain.QuadrantPoint{
			ID:       h.ID,
			Name:     h.Name,
			City:     h.City,
			Price:    h.Price,
			Score:    h.Score,
			Reviews:  h.Reviews,
			Quadrant: q,
		})
		for i := range view.Counts {
			if view.Counts[i].Quadrant == q {
				view.Counts[i].Count++
			}
		}
	}
	return view
}

func classify(h domain.Hotel, priceMedian int, scoreMedian float64) domain.Quadrant {
	highPrice := h.Price >= priceMedian
	highScore := h.Score >= scoreMedian
	switch {
	case highPrice && highScore:
		return domain.QuadrantPremium
	case !highPrice && highScore:
		return domain.QuadrantValue
	case !highPrice && !highScore:
		return domain.QuadrantBudget
	default:
		return domain.QuadrantUnderperformer
	}
}

// ---- review rates ----

// ReviewRateCounts counts hotels per review label in first-seen order.
func ReviewRateCounts(hotels []domain.Hotel) []domain.CategoryCount {
	idx := make(map[string]int, len(domain.ReviewRates))
	out := make([]domain.CategoryCount, 0, len(domain.ReviewRates))
	for _, h := range hotels {
		i, ok := idx[h.ReviewRate]
		if !ok {
			i = len(out)
			idx[h.ReviewRate] = i
			out = append(out, domain.CategoryCount{Label: h.ReviewRate})
		}
		out[i].Count++
	}
	return out
}

// ---- price histogram ----

// PriceHistogram bins prices into ceil((max-min)/width) buckets starting at
// the minimum price. The maximum price is clamped into the last bin, and a
// set where every price is equal gets a single bin.
func PriceHistogram(hotels []domain.Hotel, width int) domain.Histogram {
	if width <= 0 {
		width = DefaultBinWidth
	}
	hist := domain.Histogram{BinWidth: width, Bins: []domain.Bin{}, Assignments: []int{}}
	if len(hotels) == 0 {
		return hist
	}

	lo, hi := hotels[0].Price, hotels[0].Price
	for _, h := range hotels[1:] {
		lo = min(lo, h.Price)
		hi = max(hi, h.Price)
	}
	bins := int(math.Ceil(float64(hi-lo) / float64(width)))
	if bins < 1 {
		bins = 1
	}

	hist.Min, hist.Max = lo, hi
	hist.Bins = make([]domain.Bin, bins)
	for i := range hist.Bins {
		lower := lo + i*width
		hist.Bins[i] = domain.Bin{
			Index: i,
			Lower: lower,
			Upper: lower + width,
			Label: fmt.Sprintf("%s%d-%d", CurrencySymbol, lower, lower+width),
		}
	}
	hist.Assignments = make([]int, len(hotels))
	for i, h := range hotels {
		b := (h.Price - lo) / width
		if b >= bins {
			b = bins - 1
		}
		hist.Assignments[i] = b
		hist.Bins[b].Count++
	}
	return hist
}

// ---- map markers ----

func Markers(hotels []domain.Hotel) []domain.Marker {
	out := make([]domain.Marker, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, domain.Marker{
			ID:        h.ID,
			Name:      h.Name,
			City:      h.City,
			Lat:       h.Lat,
			Lng:       h.Lng,
			Radius:    math.Sqrt(float64(h.Reviews))/20 + 5,
			Band:      BandFor(h.Price),
			Price:     h.Price,
			Score:     h.Score,
			Reviews:   h.Reviews,
			RoomsLeft: h.RoomsLeft,
		})
	}
	return out
}

func BandFor(price int) domain.PriceBand {
	switch {
	case price < 200:
		return domain.BandBudget
	case price < 350:
		return domain.BandMidrange
	default:
		return domain.BandLuxury
	}
}
