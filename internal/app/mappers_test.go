package app_test

import (
	"net/url"
	"reflect"
	"testing"

	"hotel_dashboard/internal/app"
)

func TestParseCriteria_Full(t *testing.T) {
	q := url.Values{
		"city":               {"Temple Bar, Dublin"},
		"price_min":          {"€120"},
		"price_max":          {"300.50"},
		"score":              {"8", "9"},
		"room_type":          {"King Room", "Twin Room"},
		"free_cancellation":  {"on"},
		"no_prepayment":      {"false"},
		"breakfast_included": {"1"},
	}
	c := app.ParseCriteria(q)

	if c.City == nil || *c.City != "Temple Bar, Dublin" {
		t.Fatalf("city must keep its comma: %v", c.City)
	}
	if c.PriceMin == nil || *c.PriceMin != 120 || c.PriceMax == nil || *c.PriceMax != 300 {
		t.Fatalf("unexpected bounds: %v %v", c.PriceMin, c.PriceMax)
	}
	if !reflect.DeepEqual(c.MinScores, []float64{8, 9}) {
		t.Fatalf("unexpected scores: %v", c.MinScores)
	}
	if !reflect.DeepEqual(c.RoomTypes, []string{"King Room", "Twin Room"}) {
		t.Fatalf("unexpected room types: %v", c.RoomTypes)
	}
	if !c.FreeCancellation || c.NoPrepayment || !c.BreakfastIncluded {
		t.Fatalf("unexpected flags: %+v", c)
	}
}

func TestParseCriteria_MalformedIsNoConstraint(t *testing.T) {
	q := url.Values{
		"price_min": {"cheap"},
		"price_max": {""},
		"score":     {"high,7.5"},
		"room_type": {"Igloo"},
		"breakfast": {"maybe"},
	}
	c := app.ParseCriteria(q)
	if c.PriceMin != nil || c.PriceMax != nil || len(c.RoomTypes) != 0 || c.BreakfastIncluded {
		t.Fatalf("malformed parts must be dropped: %+v", c)
	}
	if !reflect.DeepEqual(c.MinScores, []float64{7.5}) {
		t.Fatalf("valid score next to garbage must survive: %v", c.MinScores)
	}
	if !app.ParseCriteria(url.Values{}).IsEmpty() {
		t.Fatalf("no params must mean all-permissive")
	}
}

func TestParseCriteria_Aliases(t *testing.T) {
	c := app.ParseCriteria(url.Values{"priceMin": {"200"}, "scores": {"7,9"}, "roomType": {"Family Room"}})
	if c.PriceMin == nil || *c.PriceMin != 200 || len(c.MinScores) != 2 || len(c.RoomTypes) != 1 {
		t.Fatalf("aliases not honoured: %+v", c)
	}
}

func TestParseCompareIDs(t *testing.T) {
	cases := []struct {
		q    url.Values
		want []int64
	}{
		{url.Values{"ids": {"1,2,3"}}, []int64{1, 2, 3}},
		{url.Values{"id": {"4", "", "4"}}, []int64{4, 4}},
		{url.Values{"ids": {"1,,x"}}, []int64{1}},
		{url.Values{}, []int64{}},
	}
	for _, tc := range cases {
		if got := app.ParseCompareIDs(tc.q); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%v: want %v, got %v", tc.q, tc.want, got)
		}
	}
}

func TestParseBinWidth(t *testing.T) {
	for in, want := range map[string]int{"25": 25, "0": 0, "-5": 0, "abc": 0, "": 0} {
		if got := app.ParseBinWidth(in); got != want {
			t.Fatalf("ParseBinWidth(%q) = %d, want %d", in, got, want)
		}
	}
}
