package booking

import (
	"fmt"

	bookingModel "guesthouse-booking/models/booking"
)

// AvailabilityRequest asks for per-room status over a candidate stay.
type AvailabilityRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

func (r AvailabilityRequest) Validate() error {
	if r.CheckIn == "" {
		return fmt.Errorf("check_in is required")
	}
	if r.CheckOut == "" {
		return fmt.Errorf("check_out is required")
	}
	return nil
}

// QuoteRequest asks for pricing and an invoice preview for a candidate
// stay. Meal counts are normalized (clamped) before pricing.
type QuoteRequest struct {
	CheckIn    string                     `json:"check_in"`
	CheckOut   string                     `json:"check_out"`
	RoomIDs    []uint                     `json:"room_ids"`
	GuestCount int                        `json:"guest_count"`
	Meals      bookingModel.MealSelection `json:"meals"`
}

func (r QuoteRequest) Validate() error {
	if r.CheckIn == "" {
		return fmt.Errorf("check_in is required")
	}
	if r.CheckOut == "" {
		return fmt.Errorf("check_out is required")
	}
	if len(r.RoomIDs) == 0 {
		return fmt.Errorf("select at least one room")
	}
	if r.GuestCount <= 0 {
		return fmt.Errorf("guest_count must be positive")
	}
	return nil
}

// BookingCreateRequest is the submit payload.
type BookingCreateRequest struct {
	GuestName  string                     `json:"guest_name"`
	GuestPhone string                     `json:"guest_phone"`
	GuestEmail string                     `json:"guest_email"`
	CheckIn    string                     `json:"check_in"`
	CheckOut   string                     `json:"check_out"`
	RoomIDs    []uint                     `json:"room_ids"`
	GuestCount int                        `json:"guest_count"`
	Meals      bookingModel.MealSelection `json:"meals"`
}

func (r BookingCreateRequest) Validate() error {
	if r.GuestName == "" {
		return fmt.Errorf("guest_name is required")
	}
	if r.GuestPhone == "" {
		return fmt.Errorf("guest_phone is required")
	}
	if r.CheckIn == "" || r.CheckOut == "" {
		return fmt.Errorf("check_in and check_out are required")
	}
	if len(r.RoomIDs) == 0 {
		return fmt.Errorf("select at least one room")
	}
	if r.GuestCount <= 0 {
		return fmt.Errorf("guest_count must be positive")
	}
	return nil
}

// StatusUpdateRequest is the staff status-change payload.
type StatusUpdateRequest struct {
	BookingID uint   `json:"booking_id"`
	Status    string `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if r.BookingID == 0 {
		return fmt.Errorf("booking_id is required")
	}
	if !bookingModel.BookingStatus(r.Status).IsValid() {
		return fmt.Errorf("status must be one of pending, booked, confirmed, cancelled")
	}
	return nil
}
