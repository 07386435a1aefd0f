package invoice

import (
	"fmt"

	bookingModel "guesthouse-booking/models/booking"
	"guesthouse-booking/services/meal"
	"guesthouse-booking/services/pricing"
)

// LineItem is one row of an itemized invoice. Room lines carry no unit
// price (seasonal nightly prices vary across the stay), only the
// aggregated total; meal lines carry the sitting's fixed plate price.
type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   *int64 `json:"unit_price,omitempty"`
	Total       int64  `json:"total"`
}

// Invoice is the itemized view of a quote. The sum of line totals always
// equals the quote's grand total because every line is built from the
// same per-night figures the quote was.
type Invoice struct {
	Lines      []LineItem `json:"lines"`
	GrandTotal int64      `json:"grand_total"`
}

// Build itemizes a quote: one line per selected room, one line per meal
// sitting with nonzero plates.
func Build(q pricing.Quote, meals bookingModel.MealSelection) Invoice {
	inv := Invoice{GrandTotal: q.GrandTotal}

	for _, rt := range q.RoomTotals {
		inv.Lines = append(inv.Lines, LineItem{
			Description: fmt.Sprintf("%s - %d night(s)", rt.Room.Name, q.Nights),
			Quantity:    q.Nights,
			Total:       rt.Total,
		})
	}

	for _, sitting := range meal.Sittings() {
		plates := meal.PlateCountFor(meals, sitting).Total()
		if plates == 0 {
			continue
		}
		unit := sitting.Price()
		qty := plates * q.Nights
		inv.Lines = append(inv.Lines, LineItem{
			Description: fmt.Sprintf("%s (%d plate(s)/day)", sitting, plates),
			Quantity:    qty,
			UnitPrice:   &unit,
			Total:       int64(qty) * unit,
		})
	}

	return inv
}

// LinesTotal sums the line-item totals. It equals GrandTotal for every
// invoice built from a quote.
func (inv Invoice) LinesTotal() int64 {
	var sum int64
	for _, l := range inv.Lines {
		sum += l.Total
	}
	return sum
}
