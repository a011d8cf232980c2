package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodQRIS     = "qris"

	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null;unique" json:"booking_id"`
	Amount    float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method    string    `gorm:"size:20;not null" json:"method"`
	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	// Reference to the uploaded proof artifact; storage itself lives outside
	// this service.
	TransferProof *string    `gorm:"size:512" json:"transfer_proof,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
