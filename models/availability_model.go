package models

import (
	"time"

	"github.com/google/uuid"
)

// RoomAvailability is one ledger row per (room, date). A missing row for a
// date means booked_quantity = 0 and no price override.
type RoomAvailability struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoomID         uuid.UUID `gorm:"not null;uniqueIndex:idx_room_date" json:"room_id"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:idx_room_date" json:"date"`
	BookedQuantity int       `gorm:"not null;default:0" json:"booked_quantity"`
	Available      bool      `gorm:"not null;default:true" json:"available"`
	CustomPrice    *float64  `gorm:"type:numeric(10,2)" json:"custom_price,omitempty"`

	Room Room `gorm:"foreignkey:RoomID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
