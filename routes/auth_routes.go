package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rzkibhtrafnd/Booking-API/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/register", handlers.RegisterUser)
	api.Post("/login", handlers.LoginUser)
}
