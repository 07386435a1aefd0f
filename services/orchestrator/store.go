package orchestrator

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingModel "guesthouse-booking/models/booking"
	guestModel "guesthouse-booking/models/guest"
)

// GormStore is the canonical-store implementation of PrimaryStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateBooking upserts the guest by phone and inserts the booking row
// inside one transaction, so a failed insert leaves no partial state.
func (s *GormStore) CreateBooking(d Draft, total int64) (uint, error) {
	var b bookingModel.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var g guestModel.Guest
		err := tx.Where("phone = ?", d.GuestPhone).First(&g).Error
		if err == gorm.ErrRecordNotFound {
			g = guestModel.Guest{
				Uuid:  uuid.NewString(),
				Name:  d.GuestName,
				Phone: d.GuestPhone,
			}
			if d.GuestEmail != "" {
				g.Email = &d.GuestEmail
			}
			if err := tx.Create(&g).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			g.Name = d.GuestName
			if d.GuestEmail != "" {
				g.Email = &d.GuestEmail
			}
			if err := tx.Save(&g).Error; err != nil {
				return err
			}
		}

		refs := make(bookingModel.RoomRefList, len(d.Rooms))
		for i, r := range d.Rooms {
			refs[i] = bookingModel.RoomRef{ID: r.ID, Name: r.Name}
		}

		b = bookingModel.Booking{
			GuestID:    g.ID,
			Rooms:      refs,
			CheckIn:    d.CheckIn,
			CheckOut:   d.CheckOut,
			Status:     bookingModel.BookingStatusPending,
			GuestCount: d.GuestCount,
			Meals:      d.Meals,
			TotalPrice: total,
			CreatedBy:  "website",
		}
		return tx.Create(&b).Error
	})
	if err != nil {
		return 0, err
	}
	return b.ID, nil
}
