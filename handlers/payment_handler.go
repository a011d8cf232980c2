package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rzkibhtrafnd/Booking-API/database"
	"github.com/rzkibhtrafnd/Booking-API/models"
	"github.com/rzkibhtrafnd/Booking-API/services"
	"gorm.io/gorm"
)

type CreatePaymentRequest struct {
	Method        string  `json:"method" validate:"required,oneof=cash transfer qris"`
	TransferProof *string `json:"transfer_proof,omitempty" validate:"omitempty,max=512"`
}

// CreatePayment records a payment against the requester's pending booking.
// One payment per booking; transfer and qris require a proof reference.
func CreatePayment(c *fiber.Ctx) error {
	userID := requesterID(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Booking does not belong to the requester"})
	}
	if booking.Status != models.BookingStatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Booking is not awaiting payment"})
	}

	if req.Method != models.PaymentMethodCash && (req.TransferProof == nil || *req.TransferProof == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "transfer_proof is required for transfer and qris payments"})
	}

	var existing models.Payment
	if err := database.DB.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A payment already exists for this booking"})
	}

	payment := models.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		Method:        req.Method,
		Status:        models.PaymentStatusPending,
		TransferProof: req.TransferProof,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Payment created successfully",
		"data":    payment,
	})
}

func GetMyPayments(c *fiber.Ctx) error {
	userID := requesterID(c)

	var payments []models.Payment
	database.DB.
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("bookings.user_id = ?", userID).
		Order("payments.created_at desc").
		Find(&payments)

	return c.JSON(fiber.Map{
		"message": "Payments fetched successfully",
		"data":    payments,
	})
}

func GetOwnerPayments(c *fiber.Ctx) error {
	ownerID := requesterID(c)

	var payments []models.Payment
	database.DB.
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.user_id = ?", ownerID).
		Order("payments.created_at desc").
		Find(&payments)

	return c.JSON(fiber.Map{
		"message": "Payments fetched successfully",
		"data":    payments,
	})
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending success failed"`
}

// UpdatePaymentStatus lets the property owner confirm or reject a payment.
// A successful payment confirms the booking in the same transaction; the
// availability engine treats that transition as its external trigger.
func UpdatePaymentStatus(c *fiber.Ctx) error {
	ownerID := requesterID(c)

	paymentID, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	var req UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var payment models.Payment
	if err := database.DB.Preload("Booking.Property").First(&payment, "id = ?", paymentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	if payment.Booking.Property.UserID != ownerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Payment is not for one of your properties"})
	}
	if payment.Status == models.PaymentStatusSuccess {
		return c.JSON(fiber.Map{"message": "Payment already confirmed", "data": payment})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		payment.Status = req.Status
		if req.Status == models.PaymentStatusSuccess {
			now := services.SystemClock().Now()
			payment.PaidAt = &now
			if err := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", payment.BookingID, models.BookingStatusPending).
				Update("status", models.BookingStatusConfirmed).Error; err != nil {
				return err
			}
		}
		return tx.Save(&payment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment status"})
	}

	return c.JSON(fiber.Map{
		"message": "Payment status updated successfully",
		"data":    payment,
	})
}
