package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/database"
	"github.com/rzkibhtrafnd/Booking-API/models"
	"github.com/rzkibhtrafnd/Booking-API/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AvailabilitySeed struct {
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	CustomPrice *float64 `json:"custom_price,omitempty" validate:"omitempty,gte=0"`
	Available   *bool    `json:"available,omitempty"`
}

type RoomRequest struct {
	Name           string             `json:"name" validate:"required,min=2"`
	Description    string             `json:"description"`
	Capacity       int                `json:"capacity" validate:"required,min=1"`
	Price          float64            `json:"price" validate:"required,gte=0"`
	Stock          int                `json:"stock" validate:"required,min=1"`
	Facilities     []string           `json:"facilities,omitempty"`
	Availabilities []AvailabilitySeed `json:"availabilities,omitempty" validate:"omitempty,dive"`
}

// ownedRoom loads a room and verifies the requester owns its property.
func ownedRoom(c *fiber.Ctx, roomID string) (*models.Room, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room id"})
	}

	var room models.Room
	if err := database.DB.Preload("Property").First(&room, "id = ?", id).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}
	if room.Property.UserID != requesterID(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this room"})
	}
	return &room, nil
}

func facilitiesJSON(facilities []string) (datatypes.JSON, error) {
	if facilities == nil {
		return nil, nil
	}
	raw, err := json.Marshal(facilities)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// applySeeds replaces price overrides and blocks for dates that carry no
// bookings yet. Seeded rows start at booked_quantity 0; rows with booked
// units keep their counter and only take the new override.
func applySeeds(tx *gorm.DB, room *models.Room, seeds []AvailabilitySeed) error {
	for _, seed := range seeds {
		date, err := time.Parse("2006-01-02", seed.Date)
		if err != nil {
			return err
		}
		date = services.DateOnly(date)

		available := true
		if seed.Available != nil {
			available = *seed.Available
		}

		var entry models.RoomAvailability
		err = tx.Where("room_id = ? AND date = ?", room.ID, date).First(&entry).Error
		if err == gorm.ErrRecordNotFound {
			entry = models.RoomAvailability{
				RoomID:      room.ID,
				Date:        date,
				CustomPrice: seed.CustomPrice,
				Available:   available,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		entry.CustomPrice = seed.CustomPrice
		if seed.Available != nil {
			entry.Available = available && entry.BookedQuantity < room.Stock
		}
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

func CreateRoom(c *fiber.Ctx) error {
	property, err := ownedProperty(c, c.Params("propertyId"))
	if err != nil {
		return err
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	facilities, err := facilitiesJSON(req.Facilities)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid facilities"})
	}

	room := models.Room{
		PropertyID:  property.ID,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Stock:       req.Stock,
		Facilities:  facilities,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		return applySeeds(tx, &room, req.Availabilities)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create room"})
	}

	database.DB.Preload("Availabilities").First(&room, "id = ?", room.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Room created successfully",
		"data":    room,
	})
}

func GetOwnerRooms(c *fiber.Ctx) error {
	ownerID := requesterID(c)

	var rooms []models.Room
	database.DB.Preload("Availabilities").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.user_id = ?", ownerID).
		Find(&rooms)

	return c.JSON(fiber.Map{
		"message": "Rooms fetched successfully",
		"data":    rooms,
	})
}

func GetOwnerRoom(c *fiber.Ctx) error {
	room, err := ownedRoom(c, c.Params("roomId"))
	if err != nil {
		return err
	}

	database.DB.Preload("Availabilities").First(room, "id = ?", room.ID)
	return c.JSON(fiber.Map{
		"message": "Room fetched successfully",
		"data":    room,
	})
}

func UpdateRoom(c *fiber.Ctx) error {
	room, err := ownedRoom(c, c.Params("roomId"))
	if err != nil {
		return err
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Shrinking stock below the booked quantity of any future date would
	// corrupt the ledger invariant.
	if req.Stock < room.Stock {
		var maxBooked int64
		database.DB.Model(&models.RoomAvailability{}).
			Where("room_id = ?", room.ID).
			Select("COALESCE(MAX(booked_quantity), 0)").
			Scan(&maxBooked)
		if int64(req.Stock) < maxBooked {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Stock cannot be reduced below the highest booked quantity",
			})
		}
	}

	facilities, err := facilitiesJSON(req.Facilities)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid facilities"})
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.Price = req.Price
	room.Stock = req.Stock
	if facilities != nil {
		room.Facilities = facilities
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(room).Error; err != nil {
			return err
		}
		// Stock changes shift the availability flag on every ledger row.
		if err := tx.Model(&models.RoomAvailability{}).
			Where("room_id = ?", room.ID).
			Update("available", gorm.Expr("booked_quantity < ?", room.Stock)).Error; err != nil {
			return err
		}
		return applySeeds(tx, room, req.Availabilities)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update room"})
	}

	database.DB.Preload("Availabilities").First(room, "id = ?", room.ID)
	return c.JSON(fiber.Map{
		"message": "Room updated successfully",
		"data":    room,
	})
}

type PriceOverrideRequest struct {
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	CustomPrice *float64 `json:"custom_price,omitempty" validate:"omitempty,gte=0"`
	Available   *bool    `json:"available,omitempty"`
}

// SetRoomPriceOverride upserts a per-date price override or block on the
// ledger without touching booked quantities.
func SetRoomPriceOverride(c *fiber.Ctx) error {
	room, err := ownedRoom(c, c.Params("roomId"))
	if err != nil {
		return err
	}

	var req PriceOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return applySeeds(tx, room, []AvailabilitySeed{{
			Date:        req.Date,
			CustomPrice: req.CustomPrice,
			Available:   req.Available,
		}})
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to set price override"})
	}

	return c.JSON(fiber.Map{"message": "Availability updated successfully"})
}

func DeleteRoom(c *fiber.Ctx) error {
	room, err := ownedRoom(c, c.Params("roomId"))
	if err != nil {
		return err
	}

	if err := database.DB.Select("Availabilities", "Bookings").Delete(room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete room"})
	}

	return c.JSON(fiber.Map{"message": "Room deleted successfully"})
}
