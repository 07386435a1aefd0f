package meal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookingModel "guesthouse-booking/models/booking"
)

func TestClampPlateCount(t *testing.T) {
	tests := []struct {
		name        string
		proposed    int
		otherDiet   int
		guestCount  int
		wantCount   int
		wantClamped bool
	}{
		{"within limit", 2, 1, 4, 2, false},
		{"exactly at limit", 3, 1, 4, 3, false},
		{"clamped against other diet", 5, 3, 4, 1, true},
		{"other diet already full", 2, 4, 4, 0, true},
		{"negative proposal floors at zero", -1, 0, 4, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, clamped := ClampPlateCount(tt.proposed, tt.otherDiet, tt.guestCount)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantClamped, clamped)
		})
	}
}

func TestNormalizeClampsAndReports(t *testing.T) {
	sel := bookingModel.MealSelection{
		Breakfast: bookingModel.PlateCount{Veg: 3, NonVeg: 3},
		Dinner:    bookingModel.PlateCount{Veg: 1, NonVeg: 1},
	}

	normalized, notices := Normalize(sel, 4)

	assert.Equal(t, 3, normalized.Breakfast.Veg)
	assert.Equal(t, 1, normalized.Breakfast.NonVeg)
	assert.Equal(t, sel.Dinner, normalized.Dinner)
	assert.Len(t, notices, 1)
	assert.Contains(t, notices[0], "breakfast")
}

func TestDailyCostIsPlateDriven(t *testing.T) {
	sel := bookingModel.MealSelection{
		Breakfast: bookingModel.PlateCount{Veg: 2},
		Lunch:     bookingModel.PlateCount{Veg: 1, NonVeg: 1},
		Dinner:    bookingModel.PlateCount{NonVeg: 1},
	}

	// 2*120 + 2*200 + 1*250; never scaled by guest count.
	assert.Equal(t, int64(890), DailyCost(sel))
}

func TestValid(t *testing.T) {
	ok := bookingModel.MealSelection{Breakfast: bookingModel.PlateCount{Veg: 2, NonVeg: 2}}
	over := bookingModel.MealSelection{Lunch: bookingModel.PlateCount{Veg: 3, NonVeg: 2}}

	assert.True(t, Valid(ok, 4))
	assert.False(t, Valid(over, 4))
	assert.False(t, Valid(bookingModel.MealSelection{Breakfast: bookingModel.PlateCount{Veg: -1}}, 4))
}
