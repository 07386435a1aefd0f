package availability

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"guesthouse-booking/httpServices/ledger"
	"guesthouse-booking/logger"
	bookingModel "guesthouse-booking/models/booking"
	"guesthouse-booking/models/room"
	"guesthouse-booking/utils"
)

// RoomStatus is the availability of one room for a candidate date range.
type RoomStatus string

const (
	StatusAvailable RoomStatus = "available"
	StatusPartial   RoomStatus = "partial"
	StatusBooked    RoomStatus = "booked"
)

// StayRecord is the normalized shape both booking ledgers are mapped
// into before status computation.
type StayRecord struct {
	CheckIn   time.Time
	CheckOut  time.Time
	RoomNames []string
	Status    bookingModel.BookingStatus
}

// BlockedNight is one externally-reserved night for a room, occupying
// the half-open range [Date, Date+1).
type BlockedNight struct {
	RoomID uint
	Date   time.Time
}

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect. Ranges sharing only an endpoint do not
// overlap: a checkout day is free for the next check-in.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// NamesMatch resolves room identity across the two ledgers: names match
// when, after trimming and lowercasing, either contains the other. The
// two data sources disagree on long-form room names ("Carmel" vs
// "Carmel Deluxe Room"), so the containment is deliberately
// bidirectional.
func NamesMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ParseRoomRefs decodes a room-reference field that may be a JSON array
// of {id,name} objects or that array serialized into a JSON string.
// Malformed input yields an empty list, never an error: a ledger row we
// cannot attribute to a room must not take the whole merge down.
func ParseRoomRefs(raw json.RawMessage) []bookingModel.RoomRef {
	if len(raw) == 0 {
		return nil
	}

	var refs []bookingModel.RoomRef
	if err := json.Unmarshal(raw, &refs); err == nil {
		return refs
	}

	// Array serialized as text: unwrap the string, then decode again.
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(text), &refs); err != nil {
		return nil
	}
	return refs
}

// NormalizeCanonical maps canonical-store bookings into stay records.
func NormalizeCanonical(rows []bookingModel.Booking) []StayRecord {
	records := make([]StayRecord, 0, len(rows))
	for _, b := range rows {
		if !b.Status.IsActive() {
			continue
		}
		names := make([]string, 0, len(b.Rooms))
		for _, ref := range b.Rooms {
			names = append(names, ref.Name)
		}
		records = append(records, StayRecord{
			CheckIn:   b.CheckIn,
			CheckOut:  b.CheckOut,
			RoomNames: names,
			Status:    b.Status,
		})
	}
	return records
}

// NormalizeLegacy maps legacy-ledger entries into stay records. Entries
// with unparseable dates are dropped; unparseable room references
// degrade to an empty room list.
func NormalizeLegacy(entries []ledger.Entry) []StayRecord {
	records := make([]StayRecord, 0, len(entries))
	for _, e := range entries {
		checkIn, err := utils.ParseDate(e.FromDate)
		if err != nil {
			continue
		}
		checkOut, err := utils.ParseDate(e.ToDate)
		if err != nil {
			continue
		}

		status := bookingModel.BookingStatus(strings.ToLower(strings.TrimSpace(e.State)))
		if !status.IsActive() {
			continue
		}

		refs := ParseRoomRefs(e.Rooms)
		names := make([]string, 0, len(refs))
		for _, ref := range refs {
			names = append(names, ref.Name)
		}
		records = append(records, StayRecord{
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			RoomNames: names,
			Status:    status,
		})
	}
	return records
}

// StatusFor computes one room's availability for a candidate stay.
// Precedence is strict: booked > partial > available. An OTA block or an
// overlapping booked/confirmed booking settles the room immediately; a
// pending overlap marks it partial unless a later overlap upgrades it.
func StatusFor(r room.Room, checkIn, checkOut time.Time, stays []StayRecord, blocks []BlockedNight) RoomStatus {
	for _, blk := range blocks {
		if blk.RoomID != r.ID {
			continue
		}
		if Overlaps(checkIn, checkOut, blk.Date, utils.AddDays(blk.Date, 1)) {
			return StatusBooked
		}
	}

	status := StatusAvailable
	for _, stay := range stays {
		if !Overlaps(checkIn, checkOut, stay.CheckIn, stay.CheckOut) {
			continue
		}
		matched := false
		for _, name := range stay.RoomNames {
			if NamesMatch(name, r.Name) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if stay.Status.Blocks() {
			return StatusBooked
		}
		status = StatusPartial
	}
	return status
}

// LegacySource lists the legacy ledger's bookings.
type LegacySource interface {
	ListEntries() ([]ledger.Entry, error)
}

// CanonicalSource lists the canonical store's active bookings and the
// OTA-blocked nights.
type CanonicalSource interface {
	ListActiveBookings() ([]bookingModel.Booking, error)
	ListBlockedNights() ([]BlockedNight, error)
}

// Aggregator merges the two booking ledgers and the blocked-date set
// into per-room availability.
type Aggregator struct {
	canonical CanonicalSource
	legacy    LegacySource
}

func NewAggregator(canonical CanonicalSource, legacy LegacySource) *Aggregator {
	return &Aggregator{canonical: canonical, legacy: legacy}
}

// Fetch reads both ledgers concurrently and joins before returning.
// Either source may fail independently: a failed source is logged and
// degrades to an empty list so the other source's data still gates
// availability.
func (a *Aggregator) Fetch() []StayRecord {
	var (
		canonicalRows []bookingModel.Booking
		legacyEntries []ledger.Entry
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, err := a.canonical.ListActiveBookings()
		if err != nil {
			logger.Error("Failed to read canonical bookings, continuing without them", err)
			return
		}
		canonicalRows = rows
	}()
	go func() {
		defer wg.Done()
		entries, err := a.legacy.ListEntries()
		if err != nil {
			logger.Error("Failed to read legacy ledger, continuing without it", err)
			return
		}
		legacyEntries = entries
	}()
	wg.Wait()

	return append(NormalizeCanonical(canonicalRows), NormalizeLegacy(legacyEntries)...)
}

// RoomStatuses computes the availability of every room for a candidate
// stay, keyed by room id.
func (a *Aggregator) RoomStatuses(rooms []room.Room, checkIn, checkOut time.Time) map[uint]RoomStatus {
	stays := a.Fetch()

	blocks, err := a.canonical.ListBlockedNights()
	if err != nil {
		logger.Error("Failed to read blocked dates, continuing without them", err)
		blocks = nil
	}

	statuses := make(map[uint]RoomStatus, len(rooms))
	for _, r := range rooms {
		statuses[r.ID] = StatusFor(r, checkIn, checkOut, stays, blocks)
	}
	return statuses
}
