package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/models"
)

// Store is the persistence surface the booking engine operates on. The gorm
// implementation lives in the repositories package; tests use an in-memory
// implementation.
type Store interface {
	GetRoom(id uuid.UUID) (*models.Room, error)

	// GetLedgerEntry returns the ledger row for (roomID, date), or nil when
	// no row exists — which is equivalent to booked_quantity = 0 with no
	// price override.
	GetLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error)

	// LockLedgerEntry is GetLedgerEntry with a row-level write lock. Only
	// valid inside InTransaction. Callers must lock dates in ascending
	// order to avoid deadlocks between overlapping stays.
	LockLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error)

	CreateLedgerEntry(entry *models.RoomAvailability) error
	SaveLedgerEntry(entry *models.RoomAvailability) error

	// ReleasableQuantity sums the quantities of confirmed bookings on the
	// room whose check-out falls on date: units that vacate that morning.
	ReleasableQuantity(roomID uuid.UUID, date time.Time) (int, error)

	CreateBooking(b *models.Booking) error
	GetBooking(id uuid.UUID) (*models.Booking, error)
	SaveBooking(b *models.Booking) error

	// DueForRelease returns confirmed bookings with check_out <= asOf,
	// ordered by room.
	DueForRelease(asOf time.Time) ([]models.Booking, error)

	// InTransaction runs fn against a transactional view of the store. Any
	// error returned by fn rolls the whole unit of work back.
	InTransaction(fn func(tx Store) error) error
}
