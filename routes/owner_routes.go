package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rzkibhtrafnd/Booking-API/handlers"
	"github.com/rzkibhtrafnd/Booking-API/middleware"
)

func OwnerRoutes(app *fiber.App) {
	owner := app.Group("/api/v1/owner", middleware.Protected(), middleware.OwnerRequired())

	owner.Post("/properties", handlers.CreateProperty)
	owner.Get("/properties", handlers.GetOwnerProperties)
	owner.Get("/properties/:propertyId", handlers.GetOwnerProperty)
	owner.Put("/properties/:propertyId", handlers.UpdateProperty)
	owner.Delete("/properties/:propertyId", handlers.DeleteProperty)

	owner.Post("/properties/:propertyId/rooms", handlers.CreateRoom)
	owner.Get("/rooms", handlers.GetOwnerRooms)
	owner.Get("/rooms/:roomId", handlers.GetOwnerRoom)
	owner.Put("/rooms/:roomId", handlers.UpdateRoom)
	owner.Put("/rooms/:roomId/availability", handlers.SetRoomPriceOverride)
	owner.Delete("/rooms/:roomId", handlers.DeleteRoom)
}
