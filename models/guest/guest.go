package guest

import (
	"time"
)

// Guest represents the person a booking is made for. Guests are upserted
// by phone number on submit; no further identity deduplication happens here.
type Guest struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid  string  `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Name  string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone string  `gorm:"type:varchar(20);not null;unique" json:"phone"`
	Email *string `gorm:"type:varchar(255)" json:"email,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
