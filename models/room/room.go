package room

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Room represents one bookable guesthouse room. The high/low price pair
// is fixed at seed time; seasonal pricing dispatches on these fields.
type Room struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null;unique" json:"name"`

	// Capacity is free text shown on the site (e.g. "4 Adults + 1 Kid").
	// The numeric sleeping capacity is derived from it, see services/capacity.
	Capacity string `gorm:"type:varchar(255);not null" json:"capacity"`

	LowPrice  int64 `gorm:"not null" json:"low_price"`
	HighPrice int64 `gorm:"not null" json:"high_price"`

	Features StringSlice `gorm:"type:json" json:"features"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// StringSlice is a custom type to handle JSON serialization for PostgreSQL
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}
