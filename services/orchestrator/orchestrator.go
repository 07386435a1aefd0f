package orchestrator

import (
	"fmt"
	"time"

	"guesthouse-booking/httpServices/ledger"
	"guesthouse-booking/logger"
	bookingModel "guesthouse-booking/models/booking"
	"guesthouse-booking/models/room"
	"guesthouse-booking/services/availability"
	"guesthouse-booking/services/capacity"
	"guesthouse-booking/services/invoice"
	"guesthouse-booking/services/meal"
	"guesthouse-booking/services/pricing"
	"guesthouse-booking/utils"
)

// State is the submission lifecycle:
// draft → submitting → created(id) → mirrored | mirror_failed.
// Both terminal states already showed success to the guest; the mirror
// write is best-effort only.
type State string

// ReasonWriteFailed is the user-facing reason when the canonical write
// fails. Callers can match on it to distinguish a failed write from a
// validation failure.
const ReasonWriteFailed = "could not save the booking, please try again"

const (
	StateDraft        State = "draft"
	StateSubmitting   State = "submitting"
	StateCreated      State = "created"
	StateMirrored     State = "mirrored"
	StateMirrorFailed State = "mirror_failed"
)

// Draft holds the user-entered candidate booking data.
type Draft struct {
	GuestName  string
	GuestPhone string
	GuestEmail string
	CheckIn    time.Time
	CheckOut   time.Time
	Rooms      []room.Room
	GuestCount int
	Meals      bookingModel.MealSelection

	// RoomStatuses is the availability computed for the draft's date
	// range, used to catch rooms booked between selection and submit.
	RoomStatuses map[uint]availability.RoomStatus
}

// Result is the outcome of a submission attempt. Reason is set only when
// the attempt returned to draft.
type Result struct {
	State      State           `json:"state"`
	BookingID  uint            `json:"booking_id,omitempty"`
	GrandTotal int64           `json:"grand_total,omitempty"`
	Invoice    invoice.Invoice `json:"invoice,omitempty"`
	Reason     string          `json:"reason,omitempty"`
}

// PrimaryStore performs the canonical write: guest upsert plus booking
// insert, atomically, returning the store-assigned booking id.
type PrimaryStore interface {
	CreateBooking(d Draft, total int64) (uint, error)
}

// MirrorWriter performs the best-effort secondary write.
type MirrorWriter interface {
	MirrorBooking(req ledger.MirrorRequest) error
}

// Orchestrator sequences the booking write path.
type Orchestrator struct {
	store  PrimaryStore
	mirror MirrorWriter

	// syncMirror runs the mirror write inline instead of in a goroutine
	// so tests can observe the terminal state.
	syncMirror bool
}

func New(store PrimaryStore, mirror MirrorWriter) *Orchestrator {
	return &Orchestrator{store: store, mirror: mirror}
}

// Submit validates the draft, writes the canonical booking and then
// fires the mirror write. Validation or primary-write failure returns
// to draft with a reason and no side effects; mirror failure is logged
// and never changes the user-visible outcome. There is no retry for
// either write.
func (o *Orchestrator) Submit(d Draft) Result {
	if reason := validate(d); reason != "" {
		return Result{State: StateDraft, Reason: reason}
	}

	// submitting
	quote := pricing.Compute(d.CheckIn, d.CheckOut, d.Rooms, d.Meals, d.GuestCount)

	id, err := o.store.CreateBooking(d, quote.GrandTotal)
	if err != nil {
		logger.Error("Failed to create booking in the canonical store", err)
		return Result{State: StateDraft, Reason: ReasonWriteFailed}
	}
	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", id))

	res := Result{
		State:      StateCreated,
		BookingID:  id,
		GrandTotal: quote.GrandTotal,
		Invoice:    invoice.Build(quote, d.Meals),
	}

	req := mirrorRequest(d, id, quote.GrandTotal)
	if o.syncMirror {
		res.State = o.runMirror(req, id)
	} else {
		go o.runMirror(req, id)
	}
	return res
}

// runMirror performs the secondary write. A failed mirror leaves the
// booking only in the canonical store; there is no reconciliation job
// for such rows, the log line is the only trace.
func (o *Orchestrator) runMirror(req ledger.MirrorRequest, bookingID uint) State {
	if err := o.mirror.MirrorBooking(req); err != nil {
		logger.Error(fmt.Sprintf("Failed to mirror booking %d into the legacy ledger", bookingID), err)
		return StateMirrorFailed
	}
	logger.Info(fmt.Sprintf("Booking %d mirrored into the legacy ledger", bookingID))
	return StateMirrored
}

func validate(d Draft) string {
	if d.CheckIn.IsZero() || d.CheckOut.IsZero() {
		return "select check-in and check-out dates"
	}
	if !d.CheckOut.After(d.CheckIn) {
		return "check-out must be after check-in"
	}
	if len(d.Rooms) == 0 {
		return "select at least one room"
	}
	if d.GuestCount <= 0 {
		return "enter the number of guests"
	}
	if d.GuestName == "" || d.GuestPhone == "" {
		return "guest name and phone are required"
	}
	if !meal.Valid(d.Meals, d.GuestCount) {
		return "meal plates per sitting cannot exceed the guest count"
	}

	totalCapacity := 0
	for _, r := range d.Rooms {
		totalCapacity += capacity.CapacityOf(r.Capacity)
	}
	if d.GuestCount > totalCapacity {
		return fmt.Sprintf("the selected rooms sleep %d guests, please add another room", totalCapacity)
	}

	for _, r := range d.Rooms {
		if d.RoomStatuses[r.ID] == availability.StatusBooked {
			return fmt.Sprintf("room %q is no longer available for these dates", r.Name)
		}
	}
	return ""
}

func mirrorRequest(d Draft, bookingID uint, total int64) ledger.MirrorRequest {
	rooms := make([]ledger.MirrorRoom, len(d.Rooms))
	for i, r := range d.Rooms {
		rooms[i] = ledger.MirrorRoom{ID: r.ID, Name: r.Name}
	}
	return ledger.MirrorRequest{
		RefNo:      fmt.Sprintf("GH-%d", bookingID),
		GuestName:  d.GuestName,
		FromDate:   utils.FormatDate(d.CheckIn),
		ToDate:     utils.FormatDate(d.CheckOut),
		State:      bookingModel.BookingStatusPending.String(),
		Rooms:      rooms,
		GuestCount: d.GuestCount,
		Amount:     total,
	}
}
