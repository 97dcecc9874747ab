package domain

// Read models produced by the dashboard pipeline. All of them are plain
// values that serialize to JSON for the front end.

// Metrics summarizes a record set. HasData is false for an empty set, in
// which case the averages are reported as 0.
type Metrics struct {
	Count          int     `json:"count"`
	AvgPrice       int     `json:"avg_price"`
	AvgScore       float64 `json:"avg_score"`
	TotalRoomsLeft int     `json:"total_rooms_left"`
	HasData        bool    `json:"has_data"`
}

type ScoreTier string

const (
	TierExcellent ScoreTier = "excellent"
	TierVeryGood  ScoreTier = "very_good"
	TierStandard  ScoreTier = "standard"
)

type ScatterPoint struct {
	Price   int       `json:"price"`
	Score   float64   `json:"score"`
	Reviews int       `json:"reviews"`
	Name    string    `json:"name"`
	Tier    ScoreTier `json:"tier"`
}

type Quadrant string

const (
	QuadrantPremium        Quadrant = "premium"
	QuadrantValue          Quadrant = "value"
	QuadrantBudget         Quadrant = "budget"
	QuadrantUnderperformer Quadrant = "underperformer"
)

// Quadrants lists every label in display order.
var Quadrants = []Quadrant{QuadrantPremium, QuadrantValue, QuadrantBudget, QuadrantUnderperformer}

type QuadrantPoint struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Price    int      `json:"price"`
	Score    float64  `json:"score"`
	Reviews  int      `json:"reviews"`
	Quadrant Quadrant `json:"quadrant"`
}

type QuadrantCount struct {
	Quadrant Quadrant `json:"quadrant"`
	Count    int      `json:"count"`
}

type QuadrantView struct {
	PriceMedian int             `json:"price_median"`
	ScoreMedian float64         `json:"score_median"`
	Points      []QuadrantPoint `json:"points"`
	Counts      []QuadrantCount `json:"counts"`
}

type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Bin struct {
	Index int    `json:"index"`
	Lower int    `json:"lower"`
	Upper int    `json:"upper"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Histogram of prices. Assignments[i] is the bin index of the i-th input
// record. An empty input has no bins.
type Histogram struct {
	Min         int   `json:"min"`
	Max         int   `json:"max"`
	BinWidth    int   `json:"bin_width"`
	Bins        []Bin `json:"bins"`
	Assignments []int `json:"assignments"`
}

type PriceBand string

const (
	BandBudget   PriceBand = "budget"
	BandMidrange PriceBand = "midrange"
	BandLuxury   PriceBand = "luxury"
)

type Marker struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Radius    float64   `json:"radius"`
	Band      PriceBand `json:"band"`
	Price     int       `json:"price"`
	Score     float64   `json:"score"`
	Reviews   int       `json:"reviews"`
	RoomsLeft int       `json:"rooms_left"`
}

type ComparisonRow struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// ComparisonTable always has ComparisonColumns headers and cells per row;
// unused columns carry ComparisonPlaceholder.
type ComparisonTable struct {
	Headers []string        `json:"headers"`
	Rows    []ComparisonRow `json:"rows"`
}

const (
	ComparisonColumns     = 3
	ComparisonPlaceholder = "-"
)

type FilterOptions struct {
	Cities          []string  `json:"cities"`
	RoomTypes       []string  `json:"room_types"`
	ReviewRates     []string  `json:"review_rates"`
	ScoreThresholds []float64 `json:"score_thresholds"`
}

// Snapshot is everything the dashboard renders for one criteria value.
type Snapshot struct {
	Criteria    Criteria        `json:"criteria"`
	Metrics     Metrics         `json:"metrics"`
	Scatter     []ScatterPoint  `json:"scatter"`
	Quadrants   QuadrantView    `json:"quadrants"`
	ReviewRates []CategoryCount `json:"review_rates"`
	Histogram   Histogram       `json:"histogram"`
	Markers     []Marker        `json:"markers"`
}
