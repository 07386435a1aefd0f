package booking

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"guesthouse-booking/models/guest"
)

// Booking is the canonical booking record. Room references are stored as
// a JSON array of {id,name} pairs, the same shape the legacy ledger uses.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for guest relationship
	GuestID uint        `gorm:"not null" json:"guest_id"`
	Guest   guest.Guest `gorm:"foreignKey:GuestID" json:"guest"`

	Rooms RoomRefList `gorm:"type:json;not null" json:"rooms"`

	// CheckOut is exclusive: the checkout day itself is not occupied.
	CheckIn  time.Time `gorm:"type:date;not null" json:"check_in"`
	CheckOut time.Time `gorm:"type:date;not null" json:"check_out"`

	Status     BookingStatus `gorm:"type:varchar(50);not null" json:"status"`
	GuestCount int           `gorm:"not null" json:"guest_count"`
	Meals      MealSelection `gorm:"type:json" json:"meals"`
	TotalPrice int64         `gorm:"not null" json:"total_price"`

	CreatedBy string     `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string     `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"` // Soft delete field
}

// RoomRef is one {id,name} room reference inside a booking row.
type RoomRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RoomRefList is a custom type to handle JSON serialization for PostgreSQL
type RoomRefList []RoomRef

// Scan implements the Scanner interface for database deserialization
func (rl *RoomRefList) Scan(value interface{}) error {
	if value == nil {
		*rl = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, rl)
}

// Value implements the driver Valuer interface for database serialization
func (rl RoomRefList) Value() (driver.Value, error) {
	if rl == nil {
		return nil, nil
	}
	return json.Marshal(rl)
}

// PlateCount holds the veg / non-veg plate counts for one sitting.
// Counts are total plates ordered, independent of headcount.
type PlateCount struct {
	Veg    int `json:"veg"`
	NonVeg int `json:"non_veg"`
}

// Total returns the combined plates for the sitting.
func (pc PlateCount) Total() int {
	return pc.Veg + pc.NonVeg
}

// MealSelection holds the per-sitting plate counts for a stay.
type MealSelection struct {
	Breakfast PlateCount `json:"breakfast"`
	Lunch     PlateCount `json:"lunch"`
	Dinner    PlateCount `json:"dinner"`
}

// Scan implements the Scanner interface for database deserialization
func (ms *MealSelection) Scan(value interface{}) error {
	if value == nil {
		*ms = MealSelection{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, ms)
}

// Value implements the driver Valuer interface for database serialization
func (ms MealSelection) Value() (driver.Value, error) {
	return json.Marshal(ms)
}
