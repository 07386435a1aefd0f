package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "guesthouse-booking/models/booking"
	"guesthouse-booking/models/room"
	"guesthouse-booking/services/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildLinesSumToGrandTotal(t *testing.T) {
	// Two rooms, three nights spanning the low-to-high season boundary
	// (Sep 30 low, Oct 1-2 high), 2 breakfast veg + 1 dinner non-veg per day.
	rooms := []room.Room{
		{ID: 1, Name: "Carmel", Capacity: "2 Adults + 1 Kid", LowPrice: 3000, HighPrice: 3600},
		{ID: 2, Name: "Hermon", Capacity: "2 Adults", LowPrice: 2800, HighPrice: 3400},
	}
	meals := bookingModel.MealSelection{
		Breakfast: bookingModel.PlateCount{Veg: 2},
		Dinner:    bookingModel.PlateCount{NonVeg: 1},
	}

	q := pricing.Compute(date(2025, time.September, 30), date(2025, time.October, 3), rooms, meals, 4)
	inv := Build(q, meals)

	// One line per room, one per sitting with plates.
	require.Len(t, inv.Lines, 4)
	assert.Equal(t, q.GrandTotal, inv.GrandTotal)
	assert.Equal(t, q.GrandTotal, inv.LinesTotal())
	assert.Equal(t, int64(21270), inv.GrandTotal)

	// Room lines aggregate seasonal nightly prices, no unit price.
	assert.Contains(t, inv.Lines[0].Description, "Carmel")
	assert.Equal(t, 3, inv.Lines[0].Quantity)
	assert.Nil(t, inv.Lines[0].UnitPrice)
	assert.Equal(t, int64(10200), inv.Lines[0].Total)
	assert.Equal(t, int64(9600), inv.Lines[1].Total)

	// Meal lines carry the sitting's fixed plate price.
	assert.Contains(t, inv.Lines[2].Description, "breakfast")
	assert.Equal(t, 6, inv.Lines[2].Quantity)
	require.NotNil(t, inv.Lines[2].UnitPrice)
	assert.Equal(t, int64(120), *inv.Lines[2].UnitPrice)
	assert.Equal(t, int64(720), inv.Lines[2].Total)

	assert.Contains(t, inv.Lines[3].Description, "dinner")
	assert.Equal(t, int64(750), inv.Lines[3].Total)
}

func TestBuildSkipsEmptySittings(t *testing.T) {
	rooms := []room.Room{{ID: 1, Name: "Carmel", Capacity: "2 Adults", LowPrice: 3000, HighPrice: 3600}}

	q := pricing.Compute(date(2026, time.June, 1), date(2026, time.June, 2), rooms, bookingModel.MealSelection{}, 2)
	inv := Build(q, bookingModel.MealSelection{})

	require.Len(t, inv.Lines, 1)
	assert.Equal(t, q.GrandTotal, inv.LinesTotal())
}
