package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PropertyID  uuid.UUID `gorm:"not null;index" json:"property_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Capacity    int       `gorm:"not null;default:1" json:"capacity"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock       int       `gorm:"not null;default:1" json:"stock"`

	Facilities datatypes.JSON `gorm:"type:jsonb" json:"facilities,omitempty"`

	Property       Property           `gorm:"foreignkey:PropertyID" json:"-"`
	Availabilities []RoomAvailability `gorm:"foreignkey:RoomID;constraint:OnDelete:CASCADE" json:"availabilities,omitempty"`
	Bookings       []Booking          `gorm:"foreignkey:RoomID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
