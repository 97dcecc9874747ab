// Package generator produces the synthetic hotel set the dashboard runs on
// when no database or remote source is configured.
package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"hotel_dashboard/internal/domain"
)

const DefaultCount = 447

// Dublin city centre; coordinates are spread ±1° around it.
const (
	centerLat = 53.3498
	centerLng = -6.2603
)

type Generator struct {
	count int
	seed  int64

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator for count hotels. The same seed always yields the
// same hotels.
func New(count int, seed int64) *Generator {
	if count <= 0 {
		count = DefaultCount
	}
	return &Generator{count: count, seed: seed}
}

// LoadHotels implements domain.HotelSource.
func (g *Generator) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// Generate builds a fresh set from the seed on every call.
func (g *Generator) Generate() []domain.Hotel {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rng = rand.New(rand.NewSource(g.seed))

	out := make([]domain.Hotel, 0, g.count)
	for i := 0; i < g.count; i++ {
		out = append(out, g.hotel(int64(i)))
	}
	return out
}

func (g *Generator) hotel(i int64) domain.Hotel {
	r := g.rng
	return domain.Hotel{
		ID:                 i,
		Name:               fmt.Sprintf("Hotel %c%d", rune('A'+i%26), i/26+1),
		City:               domain.Cities[r.Intn(len(domain.Cities))],
		Score:              round1(5.9 + r.Float64()*3.8),
		ReviewRate:         domain.ReviewRates[r.Intn(len(domain.ReviewRates))],
		Reviews:            r.Intn(5000) + 50,
		RoomType:           domain.RoomTypes[r.Intn(len(domain.RoomTypes))],
		Price:              r.Intn(400) + 100,
		RoomsLeft:          r.Intn(domain.MaxRoomsLeft + 1),
		FreeCancellation:   r.Float64() > 0.4,
		NoPrepaymentNeeded: r.Float64() > 0.6,
		BreakfastIncluded:  r.Float64() > 0.65,
		LocationRate:       round1(8 + r.Float64()*2),
		Lat:                centerLat + (r.Float64()-0.5)*2,
		Lng:                centerLng + (r.Float64()-0.5)*2,
	}
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
