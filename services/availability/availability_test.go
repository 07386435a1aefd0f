package availability

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse-booking/httpServices/ledger"
	bookingModel "guesthouse-booking/models/booking"
	"guesthouse-booking/models/room"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsSymmetryAndAdjacency(t *testing.T) {
	jan1 := date(2026, time.January, 1)
	jan3 := date(2026, time.January, 3)
	jan5 := date(2026, time.January, 5)
	jan4 := date(2026, time.January, 4)

	// Symmetric for overlapping ranges.
	assert.True(t, Overlaps(jan1, jan4, jan3, jan5))
	assert.True(t, Overlaps(jan3, jan5, jan1, jan4))

	// Half-open ranges sharing only an endpoint do not overlap:
	// a checkout day is free for the next check-in.
	assert.False(t, Overlaps(jan1, jan3, jan3, jan5))
	assert.False(t, Overlaps(jan3, jan5, jan1, jan3))
}

func TestNamesMatchBidirectionalContainment(t *testing.T) {
	assert.True(t, NamesMatch("Carmel", "Carmel"))
	assert.True(t, NamesMatch("carmel deluxe room", "Carmel"))
	assert.True(t, NamesMatch("Carmel", "  CARMEL DELUXE ROOM "))
	assert.False(t, NamesMatch("Carmel", "Hermon"))
	assert.False(t, NamesMatch("", "Carmel"))
}

func TestParseRoomRefs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain array", `[{"id":1,"name":"Carmel"},{"id":2,"name":"Hermon"}]`, 2},
		{"array serialized as text", `"[{\"id\":1,\"name\":\"Carmel\"}]"`, 1},
		{"invalid JSON text", `"not json at all"`, 0},
		{"garbage", `{{{`, 0},
		{"empty", ``, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := ParseRoomRefs(json.RawMessage(tt.raw))
			assert.Len(t, refs, tt.want)
		})
	}
}

func TestNormalizeLegacy(t *testing.T) {
	entries := []ledger.Entry{
		{FromDate: "2026-01-04", ToDate: "2026-01-06", State: "Booked", Rooms: json.RawMessage(`[{"id":1,"name":"Carmel"}]`)},
		{FromDate: "2026-01-10", ToDate: "2026-01-12", State: "pending", Rooms: json.RawMessage(`"broken {json"`)},
		{FromDate: "not-a-date", ToDate: "2026-01-12", State: "booked"},
		{FromDate: "2026-02-01", ToDate: "2026-02-03", State: "cancelled", Rooms: json.RawMessage(`[{"id":1,"name":"Carmel"}]`)},
	}

	records := NormalizeLegacy(entries)

	// Bad dates and cancelled entries are dropped; a malformed room
	// reference keeps the entry with an empty room list.
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Carmel"}, records[0].RoomNames)
	assert.Equal(t, bookingModel.BookingStatusBooked, records[0].Status)
	assert.Empty(t, records[1].RoomNames)
}

func TestNormalizeCanonical(t *testing.T) {
	rows := []bookingModel.Booking{
		{
			Rooms:    bookingModel.RoomRefList{{ID: 1, Name: "Carmel"}},
			CheckIn:  date(2026, time.January, 4),
			CheckOut: date(2026, time.January, 6),
			Status:   bookingModel.BookingStatusPending,
		},
		{
			Rooms:    bookingModel.RoomRefList{{ID: 2, Name: "Hermon"}},
			CheckIn:  date(2026, time.January, 4),
			CheckOut: date(2026, time.January, 6),
			Status:   bookingModel.BookingStatusCancelled,
		},
	}

	records := NormalizeCanonical(rows)

	require.Len(t, records, 1)
	assert.Equal(t, []string{"Carmel"}, records[0].RoomNames)
}

func TestStatusForBlockedNight(t *testing.T) {
	carmel := room.Room{ID: 1, Name: "Carmel"}
	blocks := []BlockedNight{{RoomID: 1, Date: date(2026, time.January, 5)}}

	// Jan 4-6 overlaps the blocked night [Jan 5, Jan 6).
	status := StatusFor(carmel, date(2026, time.January, 4), date(2026, time.January, 6), nil, blocks)
	assert.Equal(t, StatusBooked, status)

	// Jan 6-8 does not: the block's end is exclusive.
	status = StatusFor(carmel, date(2026, time.January, 6), date(2026, time.January, 8), nil, blocks)
	assert.Equal(t, StatusAvailable, status)

	// Blocks for other rooms are ignored.
	hermon := room.Room{ID: 2, Name: "Hermon"}
	status = StatusFor(hermon, date(2026, time.January, 4), date(2026, time.January, 6), nil, blocks)
	assert.Equal(t, StatusAvailable, status)
}

func TestStatusForPrecedence(t *testing.T) {
	carmel := room.Room{ID: 1, Name: "Carmel"}
	candidateIn := date(2026, time.March, 10)
	candidateOut := date(2026, time.March, 14)

	pendingStay := StayRecord{
		CheckIn:   date(2026, time.March, 11),
		CheckOut:  date(2026, time.March, 12),
		RoomNames: []string{"Carmel Deluxe Room"},
		Status:    bookingModel.BookingStatusPending,
	}
	bookedStay := StayRecord{
		CheckIn:   date(2026, time.March, 12),
		CheckOut:  date(2026, time.March, 13),
		RoomNames: []string{"carmel"},
		Status:    bookingModel.BookingStatusConfirmed,
	}

	// Pending alone marks the room partial.
	assert.Equal(t, StatusPartial, StatusFor(carmel, candidateIn, candidateOut, []StayRecord{pendingStay}, nil))

	// A booked overlap wins regardless of order; partial never
	// downgrades a booked room.
	assert.Equal(t, StatusBooked, StatusFor(carmel, candidateIn, candidateOut, []StayRecord{pendingStay, bookedStay}, nil))
	assert.Equal(t, StatusBooked, StatusFor(carmel, candidateIn, candidateOut, []StayRecord{bookedStay, pendingStay}, nil))

	// Overlapping stays for other rooms leave it available.
	otherRoom := StayRecord{
		CheckIn:   candidateIn,
		CheckOut:  candidateOut,
		RoomNames: []string{"Hermon"},
		Status:    bookingModel.BookingStatusBooked,
	}
	assert.Equal(t, StatusAvailable, StatusFor(carmel, candidateIn, candidateOut, []StayRecord{otherRoom}, nil))
}

type fakeCanonical struct {
	rows   []bookingModel.Booking
	blocks []BlockedNight
	err    error
}

func (f *fakeCanonical) ListActiveBookings() ([]bookingModel.Booking, error) {
	return f.rows, f.err
}

func (f *fakeCanonical) ListBlockedNights() ([]BlockedNight, error) {
	return f.blocks, nil
}

type fakeLegacy struct {
	entries []ledger.Entry
	err     error
}

func (f *fakeLegacy) ListEntries() ([]ledger.Entry, error) {
	return f.entries, f.err
}

func TestAggregatorDegradesFailedSource(t *testing.T) {
	canonicalRow := bookingModel.Booking{
		Rooms:    bookingModel.RoomRefList{{ID: 1, Name: "Carmel"}},
		CheckIn:  date(2026, time.January, 4),
		CheckOut: date(2026, time.January, 6),
		Status:   bookingModel.BookingStatusBooked,
	}

	// Legacy down: canonical data still gates availability.
	agg := NewAggregator(
		&fakeCanonical{rows: []bookingModel.Booking{canonicalRow}},
		&fakeLegacy{err: errors.New("connection refused")},
	)
	records := agg.Fetch()
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Carmel"}, records[0].RoomNames)

	// Canonical down: legacy data still used.
	agg = NewAggregator(
		&fakeCanonical{err: errors.New("connection refused")},
		&fakeLegacy{entries: []ledger.Entry{{
			FromDate: "2026-01-04",
			ToDate:   "2026-01-06",
			State:    "booked",
			Rooms:    json.RawMessage(`[{"id":1,"name":"Carmel"}]`),
		}}},
	)
	records = agg.Fetch()
	require.Len(t, records, 1)

	// Both down: empty merge, not an error.
	agg = NewAggregator(
		&fakeCanonical{err: errors.New("connection refused")},
		&fakeLegacy{err: errors.New("connection refused")},
	)
	assert.Empty(t, agg.Fetch())
}

func TestRoomStatuses(t *testing.T) {
	carmel := room.Room{ID: 1, Name: "Carmel"}
	hermon := room.Room{ID: 2, Name: "Hermon"}

	agg := NewAggregator(
		&fakeCanonical{
			rows: []bookingModel.Booking{{
				Rooms:    bookingModel.RoomRefList{{ID: 1, Name: "Carmel"}},
				CheckIn:  date(2026, time.January, 4),
				CheckOut: date(2026, time.January, 6),
				Status:   bookingModel.BookingStatusConfirmed,
			}},
			blocks: []BlockedNight{{RoomID: 2, Date: date(2026, time.January, 5)}},
		},
		&fakeLegacy{},
	)

	statuses := agg.RoomStatuses([]room.Room{carmel, hermon}, date(2026, time.January, 5), date(2026, time.January, 7))

	assert.Equal(t, StatusBooked, statuses[1])
	assert.Equal(t, StatusBooked, statuses[2])

	statuses = agg.RoomStatuses([]room.Room{carmel, hermon}, date(2026, time.January, 6), date(2026, time.January, 8))
	assert.Equal(t, StatusAvailable, statuses[1])
	assert.Equal(t, StatusAvailable, statuses[2])
}
