package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/database"
	"github.com/rzkibhtrafnd/Booking-API/jobs"
	"github.com/rzkibhtrafnd/Booking-API/models"
)

func GetOwners(c *fiber.Ctx) error {
	var owners []models.User
	database.DB.Where("role = ?", models.RoleOwner).Order("created_at desc").Find(&owners)

	return c.JSON(fiber.Map{
		"message": "Owners fetched successfully",
		"data":    owners,
	})
}

func SetOwnerActive(c *fiber.Ctx) error {
	ownerID, err := uuid.Parse(c.Params("ownerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid owner id"})
	}

	type Request struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var owner models.User
	if err := database.DB.Where("id = ? AND role = ?", ownerID, models.RoleOwner).First(&owner).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Owner not found"})
	}

	owner.IsActive = *req.IsActive
	if err := database.DB.Save(&owner).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update owner"})
	}

	return c.JSON(fiber.Map{"message": "Owner updated successfully", "data": owner})
}

// RunNightlyRelease triggers the release job on demand, optionally for a
// given as_of_date. The scheduled run covers the normal case; this exists
// for catch-up after missed runs.
func RunNightlyRelease(c *fiber.Ctx) error {
	asOf := time.Now()
	if raw := c.Query("as_of_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "as_of_date must be a date in YYYY-MM-DD format"})
		}
		asOf = parsed
	}

	result, err := jobs.RunRelease(asOf)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Release job failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Room availability updated successfully",
		"data":    result,
	})
}
