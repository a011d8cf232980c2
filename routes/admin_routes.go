package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rzkibhtrafnd/Booking-API/handlers"
	"github.com/rzkibhtrafnd/Booking-API/middleware"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/v1/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/owners", handlers.GetOwners)
	admin.Patch("/owners/:ownerId/active", handlers.SetOwnerActive)
	admin.Post("/jobs/release", handlers.RunNightlyRelease)
}
