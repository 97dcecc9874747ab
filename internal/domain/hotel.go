package domain

import (
	"fmt"
	"math"
	"strings"
)

// Hotel is one listing. Records are immutable once loaded into a store.
type Hotel struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	City               string  `json:"city"`
	Score              float64 `json:"score"`
	ReviewRate         string  `json:"review_rate"`
	Reviews            int     `json:"reviews"`
	RoomType           string  `json:"room_type"`
	Price              int     `json:"price"`
	RoomsLeft          int     `json:"rooms_left"`
	FreeCancellation   bool    `json:"free_cancellation"`
	NoPrepaymentNeeded bool    `json:"no_prepayment_needed"`
	BreakfastIncluded  bool    `json:"breakfast_included"`
	LocationRate       float64 `json:"location_rate"`
	Lat                float64 `json:"lat"`
	Lng                float64 `json:"lng"`
}

var Cities = []string{
	"Dublin City Centre, Dublin", "Galway", "Cork", "Saint Stephen's Green, Dublin",
	"Temple Bar, Dublin", "Ballsbridge, Dublin", "Killarney", "Parnell Square, Dublin",
	"Letterkenny", "Sligo", "Waterford", "Limerick", "Athlone", "Naas", "Laragh",
}

var RoomTypes = []string{
	"Standard Room", "Deluxe Room", "Executive Suite", "Family Room",
	"Twin Room", "Double Room", "King Room", "Queen Room",
}

var ReviewRates = []string{"Good", "Very Good", "Excellent", "Wonderful", "Exceptional"}

// ScoreThresholds are the minimum-score buttons offered by the filter panel.
var ScoreThresholds = []float64{7, 8, 9}

const MaxRoomsLeft = 7

// MaxRating is the top of the 0-10 scale used by score and location_rate.
const MaxRating = 10

func IsRoomType(s string) bool { return contains(RoomTypes, s) }

func IsReviewRate(s string) bool { return contains(ReviewRates, s) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Validate checks the record invariants. It runs at the loading boundary,
// never inside the pipeline. Review and room labels must come from the
// fixed vocabularies when present; empty labels (NULL columns) pass.
// Cities are open-ended: the filter panel lists whatever the store holds.
func (h Hotel) Validate() error {
	switch {
	case strings.TrimSpace(h.Name) == "":
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("hotel %d has no name", h.ID)}
	case strings.TrimSpace(h.City) == "":
		return &ValidationError{Field: "city", Reason: fmt.Sprintf("hotel %d has no city", h.ID)}
	case h.Price <= 0:
		return &ValidationError{Field: "price", Reason: fmt.Sprintf("hotel %d price %d is not positive", h.ID, h.Price)}
	case !finite(h.Score) || h.Score < 0 || h.Score > MaxRating:
		return &ValidationError{Field: "score", Reason: fmt.Sprintf("hotel %d score %v out of [0,%d]", h.ID, h.Score, MaxRating)}
	case !finite(h.LocationRate) || h.LocationRate < 0 || h.LocationRate > MaxRating:
		return &ValidationError{Field: "location_rate", Reason: fmt.Sprintf("hotel %d location_rate %v out of [0,%d]", h.ID, h.LocationRate, MaxRating)}
	case h.ReviewRate != "" && !IsReviewRate(h.ReviewRate):
		return &ValidationError{Field: "review_rate", Reason: fmt.Sprintf("hotel %d review_rate %q is not a known label", h.ID, h.ReviewRate)}
	case h.RoomType != "" && !IsRoomType(h.RoomType):
		return &ValidationError{Field: "room_type", Reason: fmt.Sprintf("hotel %d room_type %q is not a known room type", h.ID, h.RoomType)}
	case h.Reviews < 0:
		return &ValidationError{Field: "reviews", Reason: fmt.Sprintf("hotel %d has negative reviews", h.ID)}
	case h.RoomsLeft < 0 || h.RoomsLeft > MaxRoomsLeft:
		return &ValidationError{Field: "rooms_left", Reason: fmt.Sprintf("hotel %d rooms_left %d out of [0,%d]", h.ID, h.RoomsLeft, MaxRoomsLeft)}
	case !finite(h.Lat) || h.Lat < -90 || h.Lat > 90:
		return &ValidationError{Field: "lat", Reason: fmt.Sprintf("hotel %d latitude %v is invalid", h.ID, h.Lat)}
	case !finite(h.Lng) || h.Lng < -180 || h.Lng > 180:
		return &ValidationError{Field: "lng", Reason: fmt.Sprintf("hotel %d longitude %v is invalid", h.ID, h.Lng)}
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
