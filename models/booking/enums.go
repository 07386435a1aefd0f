package booking

// BookingStatus is the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusBooked, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive returns true if the booking occupies its rooms. Active
// bookings count against availability and are exported to calendars.
func (bs BookingStatus) IsActive() bool {
	return bs == BookingStatusPending || bs == BookingStatusBooked || bs == BookingStatusConfirmed
}

// Blocks returns true if an overlapping booking with this status makes a
// room fully unavailable rather than tentatively held.
func (bs BookingStatus) Blocks() bool {
	return bs == BookingStatusBooked || bs == BookingStatusConfirmed
}

// CanBeUpdated returns true if staff may still change the status.
func (bs BookingStatus) CanBeUpdated() bool {
	return bs != BookingStatusCancelled
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusBooked,
		BookingStatusConfirmed,
		BookingStatusCancelled,
	}
}
