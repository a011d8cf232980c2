package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/models"
)

type CreateBookingInput struct {
	UserID          uuid.UUID
	PropertyID      uuid.UUID
	RoomID          uuid.UUID
	CheckIn         string
	CheckOut        string
	GuestCount      int
	Quantity        int
	SpecialRequests *string
}

type BookingService struct {
	store        Store
	clock        Clock
	availability *AvailabilityService
	maxQuantity  int
}

func NewBookingService(store Store, clock Clock, maxQuantity int) *BookingService {
	return &BookingService{
		store:        store,
		clock:        clock,
		availability: NewAvailabilityService(store),
		maxQuantity:  maxQuantity,
	}
}

// CreateBooking runs the booking attempt: validate capacity for every night
// of the stay, price it, then commit atomically. A capacity shortfall on any
// date returns a *ConflictError naming the date and counts; any storage
// failure during commit rolls the whole attempt back.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	checkIn, checkOut, err := s.parseStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if in.Quantity < 1 {
		return nil, validationErrorf("quantity must be at least 1")
	}
	if in.Quantity > s.maxQuantity {
		return nil, validationErrorf("quantity must not exceed %d", s.maxQuantity)
	}
	if in.GuestCount < 1 {
		return nil, validationErrorf("guest count must be at least 1")
	}

	dates, err := StayDates(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	room, err := s.store.GetRoom(in.RoomID)
	if err != nil {
		return nil, err
	}
	if room.PropertyID != in.PropertyID {
		return nil, validationErrorf("room does not belong to the given property")
	}
	if in.GuestCount > room.Capacity*in.Quantity {
		return nil, validationErrorf("guest count exceeds room capacity for %d unit(s)", in.Quantity)
	}

	// Validating: optimistic pass over the stay range before taking any
	// locks. A shortfall here is terminal for the attempt.
	for _, date := range dates {
		day, err := s.availability.resolveDate(s.store, room, date)
		if err != nil {
			return nil, err
		}
		if day.AvailableCount < in.Quantity {
			return nil, &ConflictError{Date: date, Available: day.AvailableCount, Requested: in.Quantity}
		}
	}

	// Committing: lock the ledger rows in ascending date order, re-validate
	// against the locked state, price from the same rows, and write booking
	// plus increments in one unit of work.
	var booking *models.Booking
	err = s.store.InTransaction(func(tx Store) error {
		total := 0.0

		for _, date := range dates {
			entry, err := tx.LockLedgerEntry(room.ID, date)
			if err != nil {
				return err
			}

			booked := 0
			if entry != nil {
				booked = entry.BookedQuantity
			}

			released, err := tx.ReleasableQuantity(room.ID, date)
			if err != nil {
				return err
			}

			// Re-check under lock: release-aware capacity, and a hard cap
			// keeping booked_quantity within stock.
			if room.Stock-booked+released < in.Quantity || booked+in.Quantity > room.Stock {
				available := room.Stock - booked
				if available < 0 {
					available = 0
				}
				return &ConflictError{Date: date, Available: available, Requested: in.Quantity}
			}

			total += nightlyPrice(room, entry) * float64(in.Quantity)

			if entry == nil {
				entry = &models.RoomAvailability{
					RoomID:         room.ID,
					Date:           date,
					BookedQuantity: in.Quantity,
					Available:      in.Quantity < room.Stock,
				}
				if err := tx.CreateLedgerEntry(entry); err != nil {
					return err
				}
				continue
			}

			entry.BookedQuantity += in.Quantity
			entry.Available = entry.BookedQuantity < room.Stock
			if err := tx.SaveLedgerEntry(entry); err != nil {
				return err
			}
		}

		booking = &models.Booking{
			UserID:          in.UserID,
			PropertyID:      in.PropertyID,
			RoomID:          in.RoomID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			GuestCount:      in.GuestCount,
			Quantity:        in.Quantity,
			TotalPrice:      total,
			Status:          models.BookingStatusPending,
			SpecialRequests: in.SpecialRequests,
		}
		return tx.CreateBooking(booking)
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// CancelBooking cancels the requester's booking and returns its units to the
// ledger for every night of the stay, atomically.
func (s *BookingService) CancelBooking(bookingID, userID uuid.UUID) (*models.Booking, error) {
	booking, err := s.store.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, validationErrorf("booking does not belong to the requester")
	}
	if !booking.CanBeCancelled(s.clock.Now()) {
		return nil, validationErrorf("booking can no longer be cancelled")
	}

	dates, err := StayDates(booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, err
	}

	room, err := s.store.GetRoom(booking.RoomID)
	if err != nil {
		return nil, err
	}

	err = s.store.InTransaction(func(tx Store) error {
		for _, date := range dates {
			entry, err := tx.LockLedgerEntry(room.ID, date)
			if err != nil {
				return err
			}
			if entry == nil {
				continue
			}

			entry.BookedQuantity -= booking.Quantity
			if entry.BookedQuantity < 0 {
				entry.BookedQuantity = 0
			}
			entry.Available = entry.BookedQuantity < room.Stock
			if err := tx.SaveLedgerEntry(entry); err != nil {
				return err
			}
		}

		booking.Status = models.BookingStatusCancelled
		return tx.SaveBooking(booking)
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *BookingService) parseStay(checkIn, checkOut string) (in, out time.Time, err error) {
	in, err = time.Parse("2006-01-02", checkIn)
	if err != nil {
		return in, out, validationErrorf("check_in must be a date in YYYY-MM-DD format")
	}
	out, err = time.Parse("2006-01-02", checkOut)
	if err != nil {
		return in, out, validationErrorf("check_out must be a date in YYYY-MM-DD format")
	}

	today := DateOnly(s.clock.Now())
	if DateOnly(in).Before(today) {
		return in, out, validationErrorf("check_in must be today or later")
	}
	return DateOnly(in), DateOnly(out), nil
}
