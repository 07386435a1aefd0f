package season

import (
	"time"

	"guesthouse-booking/models/room"
)

// IsHighSeason reports whether a date falls in the high-season tariff.
// High season is December, January, March, April 1-15, October and
// November 1-7; every other date is low season.
func IsHighSeason(date time.Time) bool {
	month := date.Month()
	day := date.Day()

	switch month {
	case time.December, time.January, time.March, time.October:
		return true
	case time.April:
		return day <= 15
	case time.November:
		return day <= 7
	default:
		return false
	}
}

// RoomPrice returns the nightly price for a room on a given date. Each
// room carries its own high/low price pair; there is no global tariff
// table.
func RoomPrice(date time.Time, r room.Room) int64 {
	if IsHighSeason(date) {
		return r.HighPrice
	}
	return r.LowPrice
}
