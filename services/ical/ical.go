package ical

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"guesthouse-booking/models/blockeddate"
	bookingModel "guesthouse-booking/models/booking"
	"guesthouse-booking/models/room"
	"guesthouse-booking/services/availability"
	"guesthouse-booking/utils"
)

const (
	prodID     = "-//Bethany Guesthouse//Booking//EN"
	dateLayout = "20060102"
)

// EventUID derives a stable calendar UID from a booking id, so repeated
// exports update the same event instead of duplicating it.
func EventUID(bookingID uint) string {
	name := fmt.Sprintf("guesthouse-booking/bookings/%d", bookingID)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + "@guesthouse"
}

// ExportRoomCalendar renders a VCALENDAR with one VEVENT per active
// booking that references the room. DTEND carries the checkout date,
// which iCal treats as an exclusive end, matching the half-open stay
// ranges used everywhere else.
func ExportRoomCalendar(r room.Room, bookings []bookingModel.Booking) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:" + prodID + "\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")

	for _, bk := range bookings {
		if !bk.Status.IsActive() {
			continue
		}
		matched := false
		for _, ref := range bk.Rooms {
			if availability.NamesMatch(ref.Name, r.Name) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		b.WriteString("BEGIN:VEVENT\r\n")
		b.WriteString("UID:" + EventUID(bk.ID) + "\r\n")
		b.WriteString("DTSTAMP:" + time.Now().UTC().Format("20060102T150405Z") + "\r\n")
		b.WriteString("DTSTART;VALUE=DATE:" + bk.CheckIn.Format(dateLayout) + "\r\n")
		b.WriteString("DTEND;VALUE=DATE:" + bk.CheckOut.Format(dateLayout) + "\r\n")
		b.WriteString(fmt.Sprintf("SUMMARY:%s (%s)\r\n", r.Name, bk.Status))
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

// ParseBlocks extracts single-night blocks from an OTA iCal feed: every
// VEVENT's [DTSTART,DTEND) range is expanded into one BlockedDate row
// per night, dates converted from YYYYMMDD to date values. Malformed
// events are skipped; this never fails the feed as a whole.
func ParseBlocks(ics string, roomID uint, source string) []blockeddate.BlockedDate {
	var blocks []blockeddate.BlockedDate
	var start, end time.Time
	var haveStart, haveEnd bool

	for _, line := range strings.Split(ics, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case line == "BEGIN:VEVENT":
			haveStart, haveEnd = false, false
		case strings.HasPrefix(line, "DTSTART"):
			if t, ok := parseICSDate(line); ok {
				start, haveStart = t, true
			}
		case strings.HasPrefix(line, "DTEND"):
			if t, ok := parseICSDate(line); ok {
				end, haveEnd = t, true
			}
		case line == "END:VEVENT":
			if !haveStart {
				continue
			}
			if !haveEnd {
				// Events without DTEND block a single night.
				end = utils.AddDays(start, 1)
			}
			for d := start; d.Before(end); d = utils.AddDays(d, 1) {
				blocks = append(blocks, blockeddate.BlockedDate{
					RoomID: roomID,
					Date:   d,
					Source: source,
				})
			}
		}
	}
	return blocks
}

// parseICSDate reads the YYYYMMDD value of a DTSTART/DTEND line,
// tolerating parameters such as ;VALUE=DATE.
func parseICSDate(line string) (time.Time, bool) {
	idx := strings.LastIndex(line, ":")
	if idx < 0 {
		return time.Time{}, false
	}
	value := strings.TrimSpace(line[idx+1:])
	if len(value) > 8 {
		// Date-time values (YYYYMMDDTHHMMSSZ) reduce to their date part.
		value = value[:8]
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
