package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null;index" json:"user_id"`
	PropertyID uuid.UUID `gorm:"not null;index" json:"property_id"`
	RoomID     uuid.UUID `gorm:"not null;index" json:"room_id"`

	CheckIn    time.Time `gorm:"type:date;not null" json:"check_in"`
	CheckOut   time.Time `gorm:"type:date;not null;index" json:"check_out"`
	GuestCount int       `gorm:"not null" json:"guest_count"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	TotalPrice float64   `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status     string    `gorm:"size:20;not null;default:'pending';index" json:"status"`

	SpecialRequests *string `gorm:"type:text" json:"special_requests,omitempty"`

	User     User     `gorm:"foreignkey:UserID" json:"-"`
	Property Property `gorm:"foreignkey:PropertyID" json:"-"`
	Room     Room     `gorm:"foreignkey:RoomID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Nights is the length of the stay under the half-open [check_in, check_out)
// convention.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// CanBeCancelled reports whether the guest may still cancel: any pending
// booking, or a confirmed booking with check-in more than one day away.
func (b *Booking) CanBeCancelled(now time.Time) bool {
	if b.Status == BookingStatusPending {
		return true
	}
	return b.Status == BookingStatusConfirmed && b.CheckIn.After(now.AddDate(0, 0, 1))
}
