package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/models"
	"github.com/rzkibhtrafnd/Booking-API/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements services.Store over a gorm connection. Inside
// InTransaction the same type wraps the transaction handle, so every method
// works in both scopes.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetRoom(id uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (s *GormStore) GetLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error) {
	var entry models.RoomAvailability
	err := s.db.Where("room_id = ? AND date = ?", roomID, services.DateOnly(date)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *GormStore) LockLedgerEntry(roomID uuid.UUID, date time.Time) (*models.RoomAvailability, error) {
	var entry models.RoomAvailability
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_id = ? AND date = ?", roomID, services.DateOnly(date)).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *GormStore) CreateLedgerEntry(entry *models.RoomAvailability) error {
	return s.db.Create(entry).Error
}

func (s *GormStore) SaveLedgerEntry(entry *models.RoomAvailability) error {
	return s.db.Save(entry).Error
}

func (s *GormStore) ReleasableQuantity(roomID uuid.UUID, date time.Time) (int, error) {
	var total int64
	err := s.db.Model(&models.Booking{}).
		Where("room_id = ? AND status = ? AND check_out = ?",
			roomID, models.BookingStatusConfirmed, services.DateOnly(date)).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (s *GormStore) CreateBooking(b *models.Booking) error {
	return s.db.Create(b).Error
}

func (s *GormStore) GetBooking(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) SaveBooking(b *models.Booking) error {
	return s.db.Save(b).Error
}

func (s *GormStore) DueForRelease(asOf time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("status = ? AND check_out <= ?",
		models.BookingStatusConfirmed, services.DateOnly(asOf)).
		Order("room_id, check_out").
		Find(&bookings).Error
	return bookings, err
}

func (s *GormStore) InTransaction(fn func(tx services.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
