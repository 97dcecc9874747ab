package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hotel_dashboard/internal/domain"
)

// maxBatch keeps a single INSERT well below the 65535 placeholder limit.
const maxBatch = 1000

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// UpsertHotels writes hs in batches of at most maxBatch rows.
func (r *Repo) UpsertHotels(ctx context.Context, hs []domain.Hotel) error {
	for start := 0; start < len(hs); start += maxBatch {
		end := min(start+maxBatch, len(hs))
		if err := r.upsertBatch(ctx, hs[start:end]); err != nil {
			return fmt.Errorf("upsert hotels %d..%d: %w", start, end, err)
		}
	}
	return nil
}

func (r *Repo) upsertBatch(ctx context.Context, hs []domain.Hotel) error {
	if len(hs) == 0 {
		return nil
	}
	values := make([]string, 0, len(hs))
	args := make([]any, 0, len(hs)*15) // 15 params per row
	for _, h := range hs {
		values = append(values, hotelPlaceholders)
		args = append(args,
			h.ID,
			h.Name,
			h.City,
			h.Score,
			h.ReviewRate,
			h.Reviews,
			h.RoomType,
			h.Price,
			h.RoomsLeft,
			h.FreeCancellation,
			h.NoPrepaymentNeeded,
			h.BreakfastIncluded,
			h.LocationRate,
			h.Lat,
			h.Lng,
		)
	}
	sqlStr := upsertHotelsPrefix + strings.Join(values, ",") + upsertHotelsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// LoadHotels implements domain.HotelSource.
func (r *Repo) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		var reviewRate, roomType sql.NullString
		var locationRate sql.NullFloat64
		if err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.City,
			&h.Score,
			&reviewRate,
			&h.Reviews,
			&roomType,
			&h.Price,
			&h.RoomsLeft,
			&h.FreeCancellation,
			&h.NoPrepaymentNeeded,
			&h.BreakfastIncluded,
			&locationRate,
			&h.Lat, &h.Lng,
		); err != nil {
			return nil, err
		}
		if reviewRate.Valid {
			h.ReviewRate = reviewRate.String
		}
		if roomType.Valid {
			h.RoomType = roomType.String
		}
		if locationRate.Valid {
			h.LocationRate = locationRate.Float64
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) CountHotels(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countHotelsSQL).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
