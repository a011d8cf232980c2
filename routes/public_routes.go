package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rzkibhtrafnd/Booking-API/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/properties", handlers.ListProperties)
	api.Get("/properties/:propertyId", handlers.GetProperty)
	api.Get("/properties/:propertyId/rooms", handlers.GetPropertyRooms)
	api.Get("/rooms/:roomId", handlers.GetRoomDetail)
	api.Get("/rooms/:roomId/availability", handlers.CheckRoomAvailability)
}
