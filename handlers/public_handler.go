package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/database"
	"github.com/rzkibhtrafnd/Booking-API/models"
	"github.com/rzkibhtrafnd/Booking-API/services"
)

const propertyPageSize = 10

func ListProperties(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Property{}).Preload("Photos")

	if city := c.Query("city"); city != "" {
		query = query.Where("city ILIKE ?", "%"+city+"%")
	}
	if propertyType := c.Query("type"); propertyType != "" {
		query = query.Where("type = ?", propertyType)
	}
	if name := c.Query("name"); name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	var total int64
	query.Count(&total)

	var properties []models.Property
	query.Limit(propertyPageSize).Offset((page - 1) * propertyPageSize).
		Order("created_at desc").
		Find(&properties)

	return c.JSON(fiber.Map{
		"message": "Properties fetched successfully",
		"data":    properties,
		"meta": fiber.Map{
			"page":      page,
			"page_size": propertyPageSize,
			"total":     total,
		},
	})
}

func GetProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid property id"})
	}

	var property models.Property
	if err := database.DB.Preload("Photos").Preload("Rooms").First(&property, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	return c.JSON(fiber.Map{
		"message": "Property fetched successfully",
		"data":    property,
	})
}

func GetPropertyRooms(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid property id"})
	}

	var rooms []models.Room
	database.DB.Preload("Availabilities").Where("property_id = ?", id).Find(&rooms)

	return c.JSON(fiber.Map{
		"message": "Rooms fetched successfully",
		"data":    rooms,
	})
}

// GetRoomDetail returns a room with its forward availability and the
// booking constraints a client needs to build a request.
func GetRoomDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room id"})
	}

	var room models.Room
	if err := database.DB.First(&room, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	today := services.DateOnly(services.SystemClock().Now())

	var availabilities []models.RoomAvailability
	database.DB.Where("room_id = ? AND date >= ?", room.ID, today).
		Order("date asc").
		Find(&availabilities)

	customPrices := fiber.Map{}
	for _, entry := range availabilities {
		if entry.CustomPrice != nil {
			customPrices[entry.Date.Format("2006-01-02")] = *entry.CustomPrice
		}
	}

	return c.JSON(fiber.Map{
		"message": "Room fetched successfully",
		"data": fiber.Map{
			"room":           room,
			"availabilities": availabilities,
			"booking_info": fiber.Map{
				"min_date":     today.Format("2006-01-02"),
				"max_quantity": room.Stock,
				"price_range": fiber.Map{
					"default": room.Price,
					"custom":  customPrices,
				},
			},
		},
	})
}
