package app

import (
	"net/url"
	"strconv"
	"strings"

	"hotel_dashboard/internal/domain"
)

/********** query parameter aliases (single source of truth) **********/

var criteriaAliases = map[string][]string{
	"city":               {"city"},
	"price_min":          {"price_min", "priceMin", "min_price"},
	"price_max":          {"price_max", "priceMax", "max_price"},
	"score":              {"score", "min_score", "scores"},
	"room_type":          {"room_type", "roomType", "room_types"},
	"free_cancellation":  {"free_cancellation", "freeCancellation"},
	"no_prepayment":      {"no_prepayment", "noPrepayment", "no_prepayment_needed"},
	"breakfast_included": {"breakfast_included", "breakfastIncluded", "breakfast"},
}

/********** tiny helpers **********/

// values collects every value for an alias set, splitting comma lists.
// split=false keeps values whole (room types and cities contain commas).
func values(q url.Values, key string, split bool) []string {
	var out []string
	for _, k := range criteriaAliases[key] {
		for _, raw := range q[k] {
			parts := []string{raw}
			if split {
				parts = strings.Split(raw, ",")
			}
			for _, p := range parts {
				if t := strings.TrimSpace(p); t != "" {
					out = append(out, t)
				}
			}
		}
	}
	return out
}

func first(q url.Values, key string) string {
	if vs := values(q, key, false); len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// parseIntLoose reads the leading integer of s the way a form field is
// usually read: "€150", "150.9" and "150abc" all give 150. ok is false when
// no digit leads the value.
func parseIntLoose(s string) (int, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "€"))
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFloatFlexible accepts "8", "8.5" and "8+".
func parseFloatFlexible(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "+")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}

/********** criteria mapper **********/

// ParseCriteria builds Criteria from free-form query parameters. Anything
// that does not parse is left unset rather than reported; Criteria.Normalize
// drops the remaining malformed parts.
func ParseCriteria(q url.Values) domain.Criteria {
	var c domain.Criteria

	if city := first(q, "city"); city != "" {
		c.City = &city
	}
	if n, ok := parseIntLoose(first(q, "price_min")); ok {
		c.PriceMin = &n
	}
	if n, ok := parseIntLoose(first(q, "price_max")); ok {
		c.PriceMax = &n
	}
	for _, v := range values(q, "score", true) {
		if f, ok := parseFloatFlexible(v); ok {
			c.MinScores = append(c.MinScores, f)
		}
	}
	c.RoomTypes = values(q, "room_type", false)
	c.FreeCancellation = parseBool(first(q, "free_cancellation"))
	c.NoPrepayment = parseBool(first(q, "no_prepayment"))
	c.BreakfastIncluded = parseBool(first(q, "breakfast_included"))
	return c.Normalize()
}

// ParseCompareIDs reads the comparison slots from ids=1,2,3 and/or repeated
// id params. Empty and unparseable slots are dropped, like ids that do not
// resolve.
func ParseCompareIDs(q url.Values) []int64 {
	var raw []string
	for _, k := range []string{"ids", "id"} {
		for _, v := range q[k] {
			raw = append(raw, strings.Split(v, ",")...)
		}
	}
	out := make([]int64, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// ParseBinWidth returns 0 (service default) unless v is a positive integer.
func ParseBinWidth(v string) int {
	if n, ok := parseIntLoose(v); ok && n > 0 {
		return n
	}
	return 0
}
