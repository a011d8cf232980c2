package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/models"
)

type DateAvailability struct {
	Date           time.Time `json:"date"`
	AvailableCount int       `json:"available_count"`
	CustomPrice    *float64  `json:"custom_price,omitempty"`
}

type AvailabilityResult struct {
	IsAvailable bool               `json:"is_available"`
	PerDate     []DateAvailability `json:"per_date"`
}

type AvailabilityService struct {
	store Store
}

func NewAvailabilityService(store Store) *AvailabilityService {
	return &AvailabilityService{store: store}
}

// resolveDate computes the remaining capacity of a room on a single date:
// stock minus the booked quantity, plus units vacated by confirmed bookings
// checking out that same morning.
func (s *AvailabilityService) resolveDate(store Store, room *models.Room, date time.Time) (*DateAvailability, error) {
	entry, err := store.GetLedgerEntry(room.ID, date)
	if err != nil {
		return nil, err
	}

	booked := 0
	var customPrice *float64
	if entry != nil {
		booked = entry.BookedQuantity
		customPrice = entry.CustomPrice
	}

	released, err := store.ReleasableQuantity(room.ID, date)
	if err != nil {
		return nil, err
	}

	return &DateAvailability{
		Date:           date,
		AvailableCount: room.Stock - booked + released,
		CustomPrice:    customPrice,
	}, nil
}

// CheckAvailability resolves remaining capacity for every night of
// [start, end) and reports whether the requested quantity fits on all of
// them.
func (s *AvailabilityService) CheckAvailability(roomID uuid.UUID, start, end time.Time, quantity int) (*AvailabilityResult, error) {
	if quantity < 1 {
		return nil, validationErrorf("quantity must be at least 1")
	}

	dates, err := StayDates(start, end)
	if err != nil {
		return nil, err
	}

	room, err := s.store.GetRoom(roomID)
	if err != nil {
		return nil, err
	}

	result := &AvailabilityResult{IsAvailable: true}
	for _, date := range dates {
		day, err := s.resolveDate(s.store, room, date)
		if err != nil {
			return nil, err
		}
		if day.AvailableCount < quantity {
			result.IsAvailable = false
		}
		result.PerDate = append(result.PerDate, *day)
	}

	return result, nil
}
