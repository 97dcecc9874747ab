package dashboard_test

import (
	"errors"
	"reflect"
	"testing"

	"hotel_dashboard/internal/dashboard"
	"hotel_dashboard/internal/domain"
)

func mustStore(t *testing.T, hs []domain.Hotel) *dashboard.Store {
	t.Helper()
	s, err := dashboard.NewStore(hs)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestCompare_TwoHotelsPadsThirdColumn(t *testing.T) {
	s := mustStore(t, sample())

	table, err := dashboard.Compare(s, []int64{1, 3})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(table.Headers, []string{"Hotel B", "Hotel D", "-"}) {
		t.Fatalf("unexpected headers: %v", table.Headers)
	}
	if len(table.Rows) != 9 {
		t.Fatalf("want 9 rows, got %d", len(table.Rows))
	}

	want := map[string][]string{
		"City":               {"Cork", "Cork", "-"},
		"Price (€)":          {"€120", "€410", "-"},
		"Review Score":       {"8.4/10", "9.2/10", "-"},
		"Total Reviews":      {"100", "100", "-"},
		"Rooms Available":    {"1", "1", "-"},
		"Room Type":          {"Deluxe Room", "King Room", "-"},
		"Free Cancellation":  {"Yes", "Yes", "-"},
		"No Prepayment":      {"No", "Yes", "-"},
		"Breakfast Included": {"No", "No", "-"},
	}
	for _, row := range table.Rows {
		if !reflect.DeepEqual(row.Cells, want[row.Label]) {
			t.Fatalf("row %q: want %v, got %v", row.Label, want[row.Label], row.Cells)
		}
	}
	if table.Rows[0].Label != "City" || table.Rows[8].Label != "Breakfast Included" {
		t.Fatalf("unexpected row order: %q ... %q", table.Rows[0].Label, table.Rows[8].Label)
	}
}

func TestCompare_SkipsUnknownAndKeepsDuplicates(t *testing.T) {
	s := mustStore(t, sample())

	table, err := dashboard.Compare(s, []int64{2, 99, 2})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(table.Headers, []string{"Hotel C", "Hotel C", "-"}) {
		t.Fatalf("unexpected headers: %v", table.Headers)
	}
}

func TestCompare_ValidationFailures(t *testing.T) {
	s := mustStore(t, sample())
	cases := map[string][]int64{
		"none":             nil,
		"single":           {1},
		"one resolves":     {1, 42},
		"nothing resolves": {41, 42},
		"too many":         {1, 2, 3, 4},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			table, err := dashboard.Compare(s, in)
			if err == nil {
				t.Fatalf("expected validation error, got table %+v", table)
			}
			if !errors.Is(err, domain.ErrInsufficientSelection) || !domain.IsValidation(err) {
				t.Fatalf("unexpected error type: %v", err)
			}
			if len(table.Rows) != 0 {
				t.Fatalf("no table expected on failure")
			}
		})
	}
}
