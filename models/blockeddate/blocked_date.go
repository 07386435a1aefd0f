package blockeddate

import (
	"time"

	"guesthouse-booking/models/room"
)

// BlockedDate is one externally-reserved night for a room, ingested from
// an OTA calendar feed. A row blocks the half-open range [Date, Date+1).
// Rows are written by calendar ingestion and read-only everywhere else.
type BlockedDate struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for room relationship
	RoomID uint      `gorm:"not null;index" json:"room_id"`
	Room   room.Room `gorm:"foreignKey:RoomID" json:"room"`

	Date   time.Time `gorm:"type:date;not null" json:"date"`
	Source string    `gorm:"type:varchar(100);not null" json:"source"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
