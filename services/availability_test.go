package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/models"
)

func TestCheckAvailability_MissingRowsMeanFullStock(t *testing.T) {
	store := newMockStore()
	room := store.addRoom(3, 100)
	svc := NewAvailabilityService(store)

	result, err := svc.CheckAvailability(room.ID, day("2025-06-01"), day("2025-06-04"), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsAvailable {
		t.Error("expected room to be available")
	}
	if len(result.PerDate) != 3 {
		t.Fatalf("expected 3 per-date entries, got %d", len(result.PerDate))
	}
	for _, d := range result.PerDate {
		if d.AvailableCount != 3 {
			t.Errorf("expected available_count 3 on %s, got %d", d.Date.Format("2006-01-02"), d.AvailableCount)
		}
		if d.CustomPrice != nil {
			t.Errorf("expected no custom price on %s", d.Date.Format("2006-01-02"))
		}
	}
}

func TestCheckAvailability_AccountsForBookedQuantity(t *testing.T) {
	store := newMockStore()
	room := store.addRoom(3, 100)
	store.addLedgerEntry(room.ID, "2025-06-02", 2, nil)
	svc := NewAvailabilityService(store)

	result, err := svc.CheckAvailability(room.ID, day("2025-06-01"), day("2025-06-03"), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsAvailable {
		t.Error("expected insufficient availability for quantity 2")
	}
	if result.PerDate[0].AvailableCount != 3 {
		t.Errorf("expected 3 available on 06-01, got %d", result.PerDate[0].AvailableCount)
	}
	if result.PerDate[1].AvailableCount != 1 {
		t.Errorf("expected 1 available on 06-02, got %d", result.PerDate[1].AvailableCount)
	}
}

func TestCheckAvailability_SameDayCheckoutReleasesCapacity(t *testing.T) {
	store := newMockStore()
	room := store.addRoom(2, 100)
	// Fully booked ledger row on the turnover date, with a confirmed booking
	// checking out that morning.
	store.addLedgerEntry(room.ID, "2025-06-05", 2, nil)
	store.addBooking(room.ID, "2025-06-03", "2025-06-05", 1, models.BookingStatusConfirmed)
	svc := NewAvailabilityService(store)

	result, err := svc.CheckAvailability(room.ID, day("2025-06-05"), day("2025-06-06"), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PerDate[0].AvailableCount != 1 {
		t.Errorf("expected same-day release to leave 1 available, got %d", result.PerDate[0].AvailableCount)
	}
	if !result.IsAvailable {
		t.Error("expected same-day turnover booking to be accepted")
	}
}

func TestCheckAvailability_PendingCheckoutDoesNotRelease(t *testing.T) {
	store := newMockStore()
	room := store.addRoom(2, 100)
	store.addLedgerEntry(room.ID, "2025-06-05", 2, nil)
	store.addBooking(room.ID, "2025-06-03", "2025-06-05", 1, models.BookingStatusPending)
	svc := NewAvailabilityService(store)

	result, err := svc.CheckAvailability(room.ID, day("2025-06-05"), day("2025-06-06"), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsAvailable {
		t.Error("pending bookings must not count as releasable capacity")
	}
}

func TestCheckAvailability_SurfacesCustomPrice(t *testing.T) {
	store := newMockStore()
	room := store.addRoom(2, 100)
	price := 150.0
	store.addLedgerEntry(room.ID, "2025-06-01", 0, &price)
	svc := NewAvailabilityService(store)

	result, err := svc.CheckAvailability(room.ID, day("2025-06-01"), day("2025-06-03"), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PerDate[0].CustomPrice == nil || *result.PerDate[0].CustomPrice != 150 {
		t.Errorf("expected custom price 150 on 06-01, got %v", result.PerDate[0].CustomPrice)
	}
	if result.PerDate[1].CustomPrice != nil {
		t.Errorf("expected no custom price on 06-02")
	}
}

func TestCheckAvailability_UnknownRoom(t *testing.T) {
	store := newMockStore()
	svc := NewAvailabilityService(store)

	_, err := svc.CheckAvailability(uuid.New(), day("2025-06-01"), day("2025-06-02"), 1)
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestCheckAvailability_RejectsNonPositiveQuantity(t *testing.T) {
	store := newMockStore()
	room := store.addRoom(2, 100)
	svc := NewAvailabilityService(store)

	_, err := svc.CheckAvailability(room.ID, day("2025-06-01"), day("2025-06-02"), 0)
	var invalid *ValidationError
	if !errors.As(err, &invalid) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestCheckAvailability_RejectsInvertedRange(t *testing.T) {
	store := newMockStore()
	room := store.addRoom(2, 100)
	svc := NewAvailabilityService(store)

	_, err := svc.CheckAvailability(room.ID, day("2025-06-03"), day("2025-06-01"), 1)
	if !errors.Is(err, ErrInvalidStayRange) {
		t.Errorf("expected ErrInvalidStayRange, got %v", err)
	}
}
