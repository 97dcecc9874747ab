package dashboard

import (
	"fmt"
	"strconv"

	"hotel_dashboard/internal/domain"
)

const CurrencySymbol = "€"

type comparedAttr struct {
	label  string
	format func(domain.Hotel) string
}

// comparedAttrs is the fixed row order of the comparison table.
var comparedAttrs = []comparedAttr{
	{"City", func(h domain.Hotel) string { return h.City }},
	{"Price (" + CurrencySymbol + ")", func(h domain.Hotel) string { return CurrencySymbol + strconv.Itoa(h.Price) }},
	{"Review Score", func(h domain.Hotel) string { return strconv.FormatFloat(h.Score, 'f', 1, 64) + "/10" }},
	{"Total Reviews", func(h domain.Hotel) string { return strconv.Itoa(h.Reviews) }},
	{"Rooms Available", func(h domain.Hotel) string { return strconv.Itoa(h.RoomsLeft) }},
	{"Room Type", func(h domain.Hotel) string { return h.RoomType }},
	{"Free Cancellation", func(h domain.Hotel) string { return yesNo(h.FreeCancellation) }},
	{"No Prepayment", func(h domain.Hotel) string { return yesNo(h.NoPrepaymentNeeded) }},
	{"Breakfast Included", func(h domain.Hotel) string { return yesNo(h.BreakfastIncluded) }},
}

// Compare resolves up to three ids against the store and lays the hotels
// out side by side. Unknown ids are skipped; duplicates produce repeated
// columns. Fewer than two resolved hotels, or more than three ids, is a
// validation failure.
func Compare(s *Store, ids []int64) (domain.ComparisonTable, error) {
	if len(ids) > domain.ComparisonColumns {
		return domain.ComparisonTable{}, &domain.ValidationError{
			Field:  "ids",
			Reason: fmt.Sprintf("at most %d hotels can be compared, got %d", domain.ComparisonColumns, len(ids)),
			Err:    domain.ErrInsufficientSelection,
		}
	}

	hotels := make([]domain.Hotel, 0, len(ids))
	for _, id := range ids {
		if h, ok := s.Get(id); ok {
			hotels = append(hotels, h)
		}
	}
	if len(hotels) < 2 {
		return domain.ComparisonTable{}, &domain.ValidationError{
			Field:  "ids",
			Reason: fmt.Sprintf("%d of %d ids resolved to hotels", len(hotels), len(ids)),
			Err:    domain.ErrInsufficientSelection,
		}
	}

	table := domain.ComparisonTable{
		Headers: make([]string, domain.ComparisonColumns),
		Rows:    make([]domain.ComparisonRow, 0, len(comparedAttrs)),
	}
	for i := range table.Headers {
		table.Headers[i] = domain.ComparisonPlaceholder
		if i < len(hotels) {
			table.Headers[i] = hotels[i].Name
		}
	}
	for _, attr := range comparedAttrs {
		row := domain.ComparisonRow{Label: attr.label, Cells: make([]string, domain.ComparisonColumns)}
		for i := range row.Cells {
			row.Cells[i] = domain.ComparisonPlaceholder
			if i < len(hotels) {
				row.Cells[i] = attr.format(hotels[i])
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
