package domain

import "context"

// HotelSource delivers a complete record set or an error. It is the only
// I/O boundary in front of the dashboard pipeline.
type HotelSource interface {
	LoadHotels(ctx context.Context) ([]Hotel, error)
}

type HotelRepository interface {
	HotelSource
	UpsertHotels(ctx context.Context, hs []Hotel) error
	CountHotels(ctx context.Context) (int, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
