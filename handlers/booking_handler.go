package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/rzkibhtrafnd/Booking-API/configs"
	"github.com/rzkibhtrafnd/Booking-API/database"
	"github.com/rzkibhtrafnd/Booking-API/models"
	"github.com/rzkibhtrafnd/Booking-API/repositories"
	"github.com/rzkibhtrafnd/Booking-API/services"
)

const defaultMaxQuantity = 5

func bookingService() *services.BookingService {
	return services.NewBookingService(
		repositories.NewGormStore(database.DB),
		services.SystemClock(),
		config.ConfigInt("BOOKING_MAX_QUANTITY", defaultMaxQuantity),
	)
}

func availabilityService() *services.AvailabilityService {
	return services.NewAvailabilityService(repositories.NewGormStore(database.DB))
}

// engineError maps engine errors to HTTP responses. Conflicts carry the
// offending date and counts; commit failures stay opaque.
func engineError(c *fiber.Ctx, err error) error {
	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":            "Room not available for selected dates",
			"conflict_date":      conflict.Date.Format("2006-01-02"),
			"available_quantity": conflict.Available,
			"requested_quantity": conflict.Requested,
		})
	}

	var invalid *services.ValidationError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": invalid.Message})
	}

	switch {
	case errors.Is(err, services.ErrInvalidStayRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrPaymentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Failed to create booking",
		"error":   err.Error(),
	})
}

func CheckRoomAvailability(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room id"})
	}

	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check_in must be a date in YYYY-MM-DD format"})
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check_out must be a date in YYYY-MM-DD format"})
	}
	quantity := c.QueryInt("quantity", 1)

	result, err := availabilityService().CheckAvailability(roomID, checkIn, checkOut, quantity)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Availability fetched successfully",
		"data":    result,
	})
}

type CreateBookingRequest struct {
	RoomID          string  `json:"room_id" validate:"required,uuid"`
	PropertyID      string  `json:"property_id" validate:"required,uuid"`
	CheckIn         string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut        string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	GuestCount      int     `json:"guest_count" validate:"required,min=1"`
	Quantity        int     `json:"quantity" validate:"required,min=1"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func CreateBooking(c *fiber.Ctx) error {
	userID := requesterID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	roomID, _ := uuid.Parse(req.RoomID)
	propertyID, _ := uuid.Parse(req.PropertyID)

	booking, err := bookingService().CreateBooking(services.CreateBookingInput{
		UserID:          userID,
		PropertyID:      propertyID,
		RoomID:          roomID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		GuestCount:      req.GuestCount,
		Quantity:        req.Quantity,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return engineError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

func CancelBooking(c *fiber.Ctx) error {
	userID := requesterID(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := bookingService().CancelBooking(bookingID, userID)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Booking cancelled successfully",
		"booking": booking,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	userID := requesterID(c)

	var bookings []models.Booking
	database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings)

	return c.JSON(fiber.Map{
		"message": "Bookings fetched successfully",
		"data":    bookings,
	})
}

func GetOwnerBookings(c *fiber.Ctx) error {
	ownerID := requesterID(c)

	var bookings []models.Booking
	database.DB.
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.user_id = ?", ownerID).
		Order("bookings.created_at desc").
		Find(&bookings)

	return c.JSON(fiber.Map{
		"message": "Bookings fetched successfully",
		"data":    bookings,
	})
}
