package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/database"
	"github.com/rzkibhtrafnd/Booking-API/models"
	"gorm.io/gorm"
)

type PropertyRequest struct {
	Name        string   `json:"name" validate:"required,min=3"`
	Description string   `json:"description"`
	Type        string   `json:"type" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	PhotoURLs   []string `json:"photo_urls,omitempty" validate:"omitempty,dive,url"`
}

// ownedProperty loads a property and verifies the requester owns it.
func ownedProperty(c *fiber.Ctx, propertyID string) (*models.Property, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid property id"})
	}

	var property models.Property
	if err := database.DB.First(&property, "id = ?", id).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}
	if property.UserID != requesterID(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this property"})
	}
	return &property, nil
}

func CreateProperty(c *fiber.Ctx) error {
	ownerID := requesterID(c)

	var req PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	property := models.Property{
		UserID:      ownerID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Address:     req.Address,
		City:        req.City,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		for i, url := range req.PhotoURLs {
			photo := models.PropertyPhoto{
				PropertyID: property.ID,
				URL:        url,
				IsPrimary:  i == 0,
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create property"})
	}

	database.DB.Preload("Photos").First(&property, "id = ?", property.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Property created successfully",
		"data":    property,
	})
}

func GetOwnerProperties(c *fiber.Ctx) error {
	ownerID := requesterID(c)

	var properties []models.Property
	database.DB.Preload("Photos").Preload("Rooms").
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&properties)

	return c.JSON(fiber.Map{
		"message": "Properties fetched successfully",
		"data":    properties,
	})
}

func GetOwnerProperty(c *fiber.Ctx) error {
	property, err := ownedProperty(c, c.Params("propertyId"))
	if err != nil {
		return err
	}

	database.DB.Preload("Photos").Preload("Rooms.Availabilities").First(property, "id = ?", property.ID)
	return c.JSON(fiber.Map{
		"message": "Property fetched successfully",
		"data":    property,
	})
}

func UpdateProperty(c *fiber.Ctx) error {
	property, err := ownedProperty(c, c.Params("propertyId"))
	if err != nil {
		return err
	}

	var req PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	property.Name = req.Name
	property.Description = req.Description
	property.Type = req.Type
	property.Address = req.Address
	property.City = req.City

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(property).Error; err != nil {
			return err
		}
		if req.PhotoURLs == nil {
			return nil
		}
		if err := tx.Where("property_id = ?", property.ID).Delete(&models.PropertyPhoto{}).Error; err != nil {
			return err
		}
		for i, url := range req.PhotoURLs {
			photo := models.PropertyPhoto{
				PropertyID: property.ID,
				URL:        url,
				IsPrimary:  i == 0,
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update property"})
	}

	database.DB.Preload("Photos").First(property, "id = ?", property.ID)
	return c.JSON(fiber.Map{
		"message": "Property updated successfully",
		"data":    property,
	})
}

func DeleteProperty(c *fiber.Ctx) error {
	property, err := ownedProperty(c, c.Params("propertyId"))
	if err != nil {
		return err
	}

	// Cascades to rooms, their ledgers, and bookings.
	if err := database.DB.Select("Photos", "Rooms").Delete(property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete property"})
	}

	return c.JSON(fiber.Map{"message": "Property deleted successfully"})
}
