package pricing

import (
	"time"

	bookingModel "guesthouse-booking/models/booking"
	"guesthouse-booking/models/room"
	"guesthouse-booking/services/capacity"
	"guesthouse-booking/services/meal"
	"guesthouse-booking/services/season"
	"guesthouse-booking/utils"
)

// RoomTotal is one room's summed seasonal nightly prices over the stay.
type RoomTotal struct {
	Room  room.Room `json:"room"`
	Total int64     `json:"total"`
}

// Quote is the derived pricing for a candidate stay. It is recomputed
// from scratch on every input change; nothing here is persisted except
// the grand total carried onto the booking row.
type Quote struct {
	Nights          int         `json:"nights"`
	RoomTotals      []RoomTotal `json:"room_totals"`
	TotalRoomCost   int64       `json:"total_room_cost"`
	DailyMealCost   int64       `json:"daily_meal_cost"`
	TotalMealCost   int64       `json:"total_meal_cost"`
	GrandTotal      int64       `json:"grand_total"`
	TotalCapacity   int         `json:"total_capacity"`
	NeedAnotherRoom bool        `json:"need_another_room"`
}

// Valid reports whether the stay is priceable at all.
func (q Quote) Valid() bool {
	return q.Nights > 0
}

// Compute prices a candidate stay: per-night seasonal room costs for
// every selected room plus the daily meal cost across all nights.
//
// The capacity check is a submission gate, not a pricing error: a quote
// is still produced when guestCount exceeds the combined room capacity,
// with NeedAnotherRoom set so the caller can block checkout.
func Compute(checkIn, checkOut time.Time, rooms []room.Room, meals bookingModel.MealSelection, guestCount int) Quote {
	q := Quote{Nights: utils.DaysBetween(checkIn, checkOut)}

	for _, r := range rooms {
		q.TotalCapacity += capacity.CapacityOf(r.Capacity)
	}
	q.NeedAnotherRoom = guestCount > q.TotalCapacity

	if q.Nights <= 0 {
		q.Nights = 0
		return q
	}

	q.RoomTotals = make([]RoomTotal, len(rooms))
	for i, r := range rooms {
		q.RoomTotals[i] = RoomTotal{Room: r}
	}

	for i := 0; i < q.Nights; i++ {
		night := utils.AddDays(checkIn, i)
		for j, r := range rooms {
			price := season.RoomPrice(night, r)
			q.RoomTotals[j].Total += price
			q.TotalRoomCost += price
		}
	}

	q.DailyMealCost = meal.DailyCost(meals)
	q.TotalMealCost = int64(q.Nights) * q.DailyMealCost
	q.GrandTotal = q.TotalRoomCost + q.TotalMealCost

	return q
}
