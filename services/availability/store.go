package availability

import (
	"gorm.io/gorm"

	"guesthouse-booking/models/blockeddate"
	bookingModel "guesthouse-booking/models/booking"
)

// GormSource reads the canonical store.
type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) ListActiveBookings() ([]bookingModel.Booking, error) {
	var rows []bookingModel.Booking
	err := s.db.
		Where("status IN ?", []bookingModel.BookingStatus{
			bookingModel.BookingStatusPending,
			bookingModel.BookingStatusBooked,
			bookingModel.BookingStatusConfirmed,
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormSource) ListBlockedNights() ([]BlockedNight, error) {
	var rows []blockeddate.BlockedDate
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	nights := make([]BlockedNight, len(rows))
	for i, row := range rows {
		nights[i] = BlockedNight{RoomID: row.RoomID, Date: row.Date}
	}
	return nights, nil
}
