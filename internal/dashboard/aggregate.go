package dashboard

import (
	"math"

	"hotel_dashboard/internal/domain"
)

// Aggregate computes the headline metrics. An empty set yields the zero
// Metrics with HasData=false instead of dividing by zero.
func Aggregate(hotels []domain.Hotel) domain.Metrics {
	if len(hotels) == 0 {
		return domain.Metrics{}
	}
	var priceSum, scoreSum float64
	rooms := 0
	for _, h := range hotels {
		priceSum += float64(h.Price)
		scoreSum += h.Score
		rooms += h.RoomsLeft
	}
	n := float64(len(hotels))
	return domain.Metrics{
		Count:          len(hotels),
		AvgPrice:       int(math.Round(priceSum / n)),
		AvgScore:       round1(scoreSum / n),
		TotalRoomsLeft: rooms,
		HasData:        true,
	}
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
