package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/models"
)

type ReleaseResult struct {
	RoomsUpdated     int `json:"rooms_updated"`
	BookingsReleased int `json:"bookings_released"`
}

type ReleaseService struct {
	store Store
	clock Clock
}

func NewReleaseService(store Store, clock Clock) *ReleaseService {
	return &ReleaseService{store: store, clock: clock}
}

// Run releases rooms for the current day.
func (s *ReleaseService) Run() (*ReleaseResult, error) {
	return s.RunNightlyRelease(s.clock.Now())
}

// RunNightlyRelease restores ledger capacity for confirmed bookings whose
// check-out date is asOf or earlier. Each released booking is marked
// completed in the same transaction as its ledger adjustment, so a repeated
// run for the same date finds nothing left to release. Rooms are processed
// in separate short transactions to keep booking commits unblocked.
func (s *ReleaseService) RunNightlyRelease(asOf time.Time) (*ReleaseResult, error) {
	due, err := s.store.DueForRelease(DateOnly(asOf))
	if err != nil {
		return nil, err
	}

	byRoom := make(map[uuid.UUID][]models.Booking)
	for _, b := range due {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	result := &ReleaseResult{}
	for roomID, bookings := range byRoom {
		_, err := s.store.GetRoom(roomID)
		if err != nil {
			return result, err
		}

		err = s.store.InTransaction(func(tx Store) error {
			for i := range bookings {
				booking := bookings[i]
				checkOut := DateOnly(booking.CheckOut)

				entry, err := tx.LockLedgerEntry(roomID, checkOut)
				if err != nil {
					return err
				}
				if entry == nil {
					entry = &models.RoomAvailability{
						RoomID:    roomID,
						Date:      checkOut,
						Available: true,
					}
					if err := tx.CreateLedgerEntry(entry); err != nil {
						return err
					}
				} else {
					entry.BookedQuantity -= booking.Quantity
					if entry.BookedQuantity < 0 {
						entry.BookedQuantity = 0
					}
					entry.Available = true
					if err := tx.SaveLedgerEntry(entry); err != nil {
						return err
					}
				}

				booking.Status = models.BookingStatusCompleted
				if err := tx.SaveBooking(&booking); err != nil {
					return err
				}
				result.BookingsReleased++
			}
			return nil
		})
		if err != nil {
			return result, err
		}

		result.RoomsUpdated++
	}

	return result, nil
}
