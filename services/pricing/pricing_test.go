package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "guesthouse-booking/models/booking"
	"guesthouse-booking/models/room"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var carmel = room.Room{ID: 1, Name: "Carmel", Capacity: "2 Adults + 1 Kid", LowPrice: 3000, HighPrice: 3600}

func TestComputeHighSeasonStay(t *testing.T) {
	// Dec 30 - Jan 2: three nights, all high season.
	meals := bookingModel.MealSelection{Breakfast: bookingModel.PlateCount{Veg: 2}}

	q := Compute(date(2025, time.December, 30), date(2026, time.January, 2), []room.Room{carmel}, meals, 2)

	assert.True(t, q.Valid())
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, int64(10800), q.TotalRoomCost)
	assert.Equal(t, int64(240), q.DailyMealCost)
	assert.Equal(t, int64(720), q.TotalMealCost)
	assert.Equal(t, int64(11520), q.GrandTotal)
	assert.False(t, q.NeedAnotherRoom)
}

func TestComputeSeasonBoundary(t *testing.T) {
	// Sep 30 is low season, Oct 1 and 2 are high.
	q := Compute(date(2025, time.September, 30), date(2025, time.October, 3), []room.Room{carmel}, bookingModel.MealSelection{}, 2)

	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, int64(3000+3600+3600), q.TotalRoomCost)
	assert.Equal(t, q.TotalRoomCost, q.GrandTotal)
}

func TestComputeInvalidStay(t *testing.T) {
	q := Compute(date(2026, time.January, 5), date(2026, time.January, 5), []room.Room{carmel}, bookingModel.MealSelection{}, 2)

	assert.False(t, q.Valid())
	assert.Equal(t, int64(0), q.GrandTotal)

	q = Compute(date(2026, time.January, 5), date(2026, time.January, 3), []room.Room{carmel}, bookingModel.MealSelection{}, 2)
	assert.False(t, q.Valid())
	assert.Equal(t, int64(0), q.GrandTotal)
}

func TestComputeCapacityGateStillPrices(t *testing.T) {
	small := room.Room{ID: 2, Name: "Hermon", Capacity: "4 Adults", LowPrice: 2800, HighPrice: 3400}

	q := Compute(date(2026, time.June, 1), date(2026, time.June, 3), []room.Room{small}, bookingModel.MealSelection{}, 6)

	assert.True(t, q.NeedAnotherRoom)
	assert.Equal(t, 4, q.TotalCapacity)
	// Pricing is still produced; the gate only blocks submission.
	assert.Equal(t, int64(5600), q.GrandTotal)
}

func TestComputeMultipleRooms(t *testing.T) {
	hermon := room.Room{ID: 2, Name: "Hermon", Capacity: "2 Adults", LowPrice: 2800, HighPrice: 3400}

	q := Compute(date(2026, time.June, 1), date(2026, time.June, 3), []room.Room{carmel, hermon}, bookingModel.MealSelection{}, 4)

	assert.Equal(t, int64(2*3000+2*2800), q.TotalRoomCost)
	assert.Len(t, q.RoomTotals, 2)
	assert.Equal(t, int64(6000), q.RoomTotals[0].Total)
	assert.Equal(t, int64(5600), q.RoomTotals[1].Total)
	assert.Equal(t, 5, q.TotalCapacity)
}
