package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/models"
)

var errTestStorage = errors.New("storage failure")

// ============================================
// In-memory Store used by the engine tests
// ============================================

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ledgerKey(roomID uuid.UUID, date time.Time) string {
	return roomID.String() + "|" + DateOnly(date).Format("2006-01-02")
}

type mockStore struct {
	mu       sync.Mutex
	rooms    map[uuid.UUID]*models.Room
	ledger   map[string]*models.RoomAvailability
	bookings map[uuid.UUID]*models.Booking

	// Error injection for rollback tests.
	failCreateBooking   bool
	failSaveLedgerEntry bool
}

func newMockStore() *mockStore {
	return &mockStore{
		rooms:    make(map[uuid.UUID]*models.Room),
		ledger:   make(map[string]*models.RoomAvailability),
		bookings: make(map[uuid.UUID]*models.Booking),
	}
}

func (m *mockStore) addRoom(stock int, price float64) *models.Room {
	room := &models.Room{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Name:       "Test Room",
		Capacity:   2,
		Price:      price,
		Stock:      stock,
	}
	m.rooms[room.ID] = room
	return room
}

func (m *mockStore) addLedgerEntry(roomID uuid.UUID, date string, booked int, customPrice *float64) *models.RoomAvailability {
	room := m.rooms[roomID]
	entry := &models.RoomAvailability{
		ID:             uuid.New(),
		RoomID:         roomID,
		Date:           day(date),
		BookedQuantity: booked,
		Available:      booked < room.Stock,
		CustomPrice:    customPrice,
	}
	m.ledger[ledgerKey(roomID, entry.Date)] = entry
	return entry
}

func (m *mockStore) addBooking(roomID uuid.UUID, checkIn, checkOut string, quantity int, status string) *models.Booking {
	room := m.rooms[roomID]
	b := &models.Booking{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		PropertyID: room.PropertyID,
		RoomID:     roomID,
		CheckIn:    day(checkIn),
		CheckOut:   day(checkOut),
		GuestCount: 1,
		Quantity:   quantity,
		Status:     status,
	}
	m.bookings[b.ID] = b
	return b
}

// Unlocked internals, shared by the plain store and the transactional view.

func (m *mockStore) getRoom(id uuid.UUID) (*models.Room, error) {
	room, ok := m.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (m *mockStore) getLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error) {
	entry, ok := m.ledger[ledgerKey(roomID, date)]
	if !ok {
		return nil, nil
	}
	copied := *entry
	return &copied, nil
}

func (m *mockStore) createLedgerEntry(entry *models.RoomAvailability) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	copied := *entry
	m.ledger[ledgerKey(entry.RoomID, entry.Date)] = &copied
	return nil
}

func (m *mockStore) saveLedgerEntry(entry *models.RoomAvailability) error {
	if m.failSaveLedgerEntry {
		return errTestStorage
	}
	copied := *entry
	m.ledger[ledgerKey(entry.RoomID, entry.Date)] = &copied
	return nil
}

func (m *mockStore) releasableQuantity(roomID uuid.UUID, date time.Time) (int, error) {
	date = DateOnly(date)
	total := 0
	for _, b := range m.bookings {
		if b.RoomID == roomID && b.Status == models.BookingStatusConfirmed && DateOnly(b.CheckOut).Equal(date) {
			total += b.Quantity
		}
	}
	return total, nil
}

func (m *mockStore) createBooking(b *models.Booking) error {
	if m.failCreateBooking {
		return errTestStorage
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	copied := *b
	m.bookings[b.ID] = &copied
	return nil
}

func (m *mockStore) getBooking(id uuid.UUID) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *mockStore) saveBooking(b *models.Booking) error {
	copied := *b
	m.bookings[b.ID] = &copied
	return nil
}

func (m *mockStore) dueForRelease(asOf time.Time) ([]models.Booking, error) {
	asOf = DateOnly(asOf)
	var due []models.Booking
	for _, b := range m.bookings {
		if b.Status == models.BookingStatusConfirmed && !DateOnly(b.CheckOut).After(asOf) {
			due = append(due, *b)
		}
	}
	return due, nil
}

// Locked Store methods for use outside transactions.

func (m *mockStore) GetRoom(id uuid.UUID) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getRoom(id)
}

func (m *mockStore) GetLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getLedgerEntry(roomID, date)
}

func (m *mockStore) LockLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getLedgerEntry(roomID, date)
}

func (m *mockStore) CreateLedgerEntry(entry *models.RoomAvailability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createLedgerEntry(entry)
}

func (m *mockStore) SaveLedgerEntry(entry *models.RoomAvailability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLedgerEntry(entry)
}

func (m *mockStore) ReleasableQuantity(roomID uuid.UUID, date time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.releasableQuantity(roomID, date)
}

func (m *mockStore) CreateBooking(b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createBooking(b)
}

func (m *mockStore) GetBooking(id uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getBooking(id)
}

func (m *mockStore) SaveBooking(b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveBooking(b)
}

func (m *mockStore) DueForRelease(asOf time.Time) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dueForRelease(asOf)
}

// InTransaction holds the store lock for the whole unit of work, which makes
// transactions serializable exactly like row-locked commits against the real
// database. On error the pre-transaction state is restored.
func (m *mockStore) InTransaction(fn func(tx Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ledgerSnap := make(map[string]*models.RoomAvailability, len(m.ledger))
	for k, v := range m.ledger {
		copied := *v
		ledgerSnap[k] = &copied
	}
	bookingSnap := make(map[uuid.UUID]*models.Booking, len(m.bookings))
	for k, v := range m.bookings {
		copied := *v
		bookingSnap[k] = &copied
	}

	err := fn(&mockTx{m})
	if err != nil {
		m.ledger = ledgerSnap
		m.bookings = bookingSnap
	}
	return err
}

// mockTx is the view handed to InTransaction callbacks: same data, no
// re-locking.
type mockTx struct {
	m *mockStore
}

func (t *mockTx) GetRoom(id uuid.UUID) (*models.Room, error) { return t.m.getRoom(id) }
func (t *mockTx) GetLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error) {
	return t.m.getLedgerEntry(roomID, date)
}
func (t *mockTx) LockLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error) {
	return t.m.getLedgerEntry(roomID, date)
}
func (t *mockTx) CreateLedgerEntry(entry *models.RoomAvailability) error {
	return t.m.createLedgerEntry(entry)
}
func (t *mockTx) SaveLedgerEntry(entry *models.RoomAvailability) error {
	return t.m.saveLedgerEntry(entry)
}
func (t *mockTx) ReleasableQuantity(roomID uuid.UUID, date time.Time) (int, error) {
	return t.m.releasableQuantity(roomID, date)
}
func (t *mockTx) CreateBooking(b *models.Booking) error  { return t.m.createBooking(b) }
func (t *mockTx) GetBooking(id uuid.UUID) (*models.Booking, error) {
	return t.m.getBooking(id)
}
func (t *mockTx) SaveBooking(b *models.Booking) error { return t.m.saveBooking(b) }
func (t *mockTx) DueForRelease(asOf time.Time) ([]models.Booking, error) {
	return t.m.dueForRelease(asOf)
}
func (t *mockTx) InTransaction(fn func(tx Store) error) error { return fn(t) }
