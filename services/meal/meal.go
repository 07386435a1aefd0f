package meal

import (
	"fmt"

	bookingModel "guesthouse-booking/models/booking"
)

// Sitting identifies one independently priced meal occasion.
type Sitting string

const (
	SittingBreakfast Sitting = "breakfast"
	SittingLunch     Sitting = "lunch"
	SittingDinner    Sitting = "dinner"
)

// Fixed plate prices per sitting.
const (
	BreakfastPrice int64 = 120
	LunchPrice     int64 = 200
	DinnerPrice    int64 = 250
)

// Sittings returns the sittings in serving order.
func Sittings() []Sitting {
	return []Sitting{SittingBreakfast, SittingLunch, SittingDinner}
}

// Price returns the fixed plate price of a sitting.
func (s Sitting) Price() int64 {
	switch s {
	case SittingBreakfast:
		return BreakfastPrice
	case SittingLunch:
		return LunchPrice
	case SittingDinner:
		return DinnerPrice
	default:
		return 0
	}
}

// ClampPlateCount validates a proposed plate count for one diet of one
// sitting against the guest count, given the other diet's current count.
// The returned count never pushes the sitting above guestCount and never
// drops below zero; clamped is true when the proposal was reduced.
func ClampPlateCount(proposed, otherDiet, guestCount int) (count int, clamped bool) {
	if proposed < 0 {
		return 0, true
	}
	if proposed+otherDiet > guestCount {
		count = guestCount - otherDiet
		if count < 0 {
			count = 0
		}
		return count, true
	}
	return proposed, false
}

// Normalize applies the per-sitting clamp to a whole selection and
// returns the corrected selection plus one notice per adjusted count.
// Veg is clamped first, then non-veg against the clamped veg value,
// matching the order the booking form applies changes in.
func Normalize(sel bookingModel.MealSelection, guestCount int) (bookingModel.MealSelection, []string) {
	var notices []string

	clampSitting := func(name Sitting, pc bookingModel.PlateCount) bookingModel.PlateCount {
		veg, vegClamped := ClampPlateCount(pc.Veg, 0, guestCount)
		nonVeg, nonVegClamped := ClampPlateCount(pc.NonVeg, veg, guestCount)
		if vegClamped {
			notices = append(notices, fmt.Sprintf("%s veg plates reduced to %d (max %d guests per sitting)", name, veg, guestCount))
		}
		if nonVegClamped {
			notices = append(notices, fmt.Sprintf("%s non-veg plates reduced to %d (max %d guests per sitting)", name, nonVeg, guestCount))
		}
		return bookingModel.PlateCount{Veg: veg, NonVeg: nonVeg}
	}

	sel.Breakfast = clampSitting(SittingBreakfast, sel.Breakfast)
	sel.Lunch = clampSitting(SittingLunch, sel.Lunch)
	sel.Dinner = clampSitting(SittingDinner, sel.Dinner)

	return sel, notices
}

// Valid reports whether every sitting respects the guest-count cap.
func Valid(sel bookingModel.MealSelection, guestCount int) bool {
	for _, pc := range []bookingModel.PlateCount{sel.Breakfast, sel.Lunch, sel.Dinner} {
		if pc.Veg < 0 || pc.NonVeg < 0 || pc.Total() > guestCount {
			return false
		}
	}
	return true
}

// DailyCost is the meal charge for one day of the stay. Plate counts are
// total plates ordered, so the figure is not additionally scaled by the
// guest count.
func DailyCost(sel bookingModel.MealSelection) int64 {
	return int64(sel.Breakfast.Total())*BreakfastPrice +
		int64(sel.Lunch.Total())*LunchPrice +
		int64(sel.Dinner.Total())*DinnerPrice
}

// PlateCountFor returns the plate counts of the given sitting.
func PlateCountFor(sel bookingModel.MealSelection, s Sitting) bookingModel.PlateCount {
	switch s {
	case SittingBreakfast:
		return sel.Breakfast
	case SittingLunch:
		return sel.Lunch
	case SittingDinner:
		return sel.Dinner
	default:
		return bookingModel.PlateCount{}
	}
}
