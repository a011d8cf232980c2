package models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Address     string    `gorm:"size:255;not null" json:"address"`
	City        string    `gorm:"size:100;not null;index" json:"city"`

	Owner  User            `gorm:"foreignkey:UserID" json:"-"`
	Photos []PropertyPhoto `gorm:"foreignkey:PropertyID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	Rooms  []Room          `gorm:"foreignkey:PropertyID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PropertyPhoto struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PropertyID uuid.UUID `gorm:"not null;index" json:"-"`
	URL        string    `gorm:"size:512;not null" json:"url"`
	IsPrimary  bool      `gorm:"default:false" json:"is_primary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
