package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Criteria is one "apply" of the filter panel. The zero value lets every
// hotel through. Clauses are AND-combined; MinScores and RoomTypes are
// OR-combined within themselves.
type Criteria struct {
	City              *string   `json:"city,omitempty"`
	PriceMin          *int      `json:"price_min,omitempty"`
	PriceMax          *int      `json:"price_max,omitempty"`
	MinScores         []float64 `json:"min_scores,omitempty"`
	RoomTypes         []string  `json:"room_types,omitempty"`
	FreeCancellation  bool      `json:"free_cancellation,omitempty"`
	NoPrepayment      bool      `json:"no_prepayment,omitempty"`
	BreakfastIncluded bool      `json:"breakfast_included,omitempty"`
}

// Normalize returns a copy with malformed parts dropped: blank city,
// negative lower bound, non-positive upper bound, non-finite or negative
// score thresholds and unknown room types. A dropped part means "no
// constraint" for that clause.
func (c Criteria) Normalize() Criteria {
	out := Criteria{
		FreeCancellation:  c.FreeCancellation,
		NoPrepayment:      c.NoPrepayment,
		BreakfastIncluded: c.BreakfastIncluded,
	}
	if c.City != nil {
		if s := strings.TrimSpace(*c.City); s != "" {
			out.City = &s
		}
	}
	if c.PriceMin != nil && *c.PriceMin > 0 {
		v := *c.PriceMin
		out.PriceMin = &v
	}
	// an upper bound of 0 reads as "unset" on the filter panel
	if c.PriceMax != nil && *c.PriceMax > 0 {
		v := *c.PriceMax
		out.PriceMax = &v
	}
	for _, s := range c.MinScores {
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			continue
		}
		out.MinScores = append(out.MinScores, s)
	}
	for _, rt := range c.RoomTypes {
		if IsRoomType(rt) {
			out.RoomTypes = append(out.RoomTypes, rt)
		}
	}
	return out
}

func (c Criteria) IsEmpty() bool {
	n := c.Normalize()
	return n.City == nil && n.PriceMin == nil && n.PriceMax == nil &&
		len(n.MinScores) == 0 && len(n.RoomTypes) == 0 &&
		!n.FreeCancellation && !n.NoPrepayment && !n.BreakfastIncluded
}

// Key is a canonical form of the normalized criteria: two criteria that
// select the same hotels for any store produce the same key, and criteria
// that differ never share one. Free-text values are quoted so they cannot
// spell out another clause.
func (c Criteria) Key() string {
	n := c.Normalize()
	var b strings.Builder
	if n.City != nil {
		b.WriteString("city=" + strconv.Quote(*n.City) + ";")
	}
	if n.PriceMin != nil {
		b.WriteString("min=" + strconv.Itoa(*n.PriceMin) + ";")
	}
	if n.PriceMax != nil {
		b.WriteString("max=" + strconv.Itoa(*n.PriceMax) + ";")
	}
	if len(n.MinScores) > 0 {
		ss := make([]string, 0, len(n.MinScores))
		for _, s := range n.MinScores {
			ss = append(ss, strconv.FormatFloat(s, 'f', -1, 64))
		}
		sort.Strings(ss)
		b.WriteString("score=" + strings.Join(dedupe(ss), ",") + ";")
	}
	if len(n.RoomTypes) > 0 {
		rts := append([]string(nil), n.RoomTypes...)
		sort.Strings(rts)
		rts = dedupe(rts)
		for i, rt := range rts {
			rts[i] = strconv.Quote(rt)
		}
		b.WriteString("room=" + strings.Join(rts, ",") + ";")
	}
	if n.FreeCancellation {
		b.WriteString("fc;")
	}
	if n.NoPrepayment {
		b.WriteString("np;")
	}
	if n.BreakfastIncluded {
		b.WriteString("bf;")
	}
	return b.String()
}

// dedupe removes adjacent duplicates from a sorted slice.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if len(out) > 0 && out[len(out)-1] == s {
			continue
		}
		out = append(out, s)
	}
	return out
}
