package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rzkibhtrafnd/Booking-API/handlers"
	"github.com/rzkibhtrafnd/Booking-API/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/payments", handlers.CreatePayment)

	api.Get("/payments/me", middleware.Protected(), handlers.GetMyPayments)

	ownerBooking := api.Group("/owner", middleware.Protected(), middleware.OwnerRequired())
	ownerBooking.Get("/bookings", handlers.GetOwnerBookings)
	ownerBooking.Get("/payments", handlers.GetOwnerPayments)
	ownerBooking.Patch("/payments/:paymentId/status", handlers.UpdatePaymentStatus)
}
