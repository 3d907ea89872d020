package routes

import (
	"github.com/gofiber/fiber/v2"

	"gantavya-backend/internal/handlers"
	"gantavya-backend/internal/middleware"
)

func SetupRoutesAdmin(app *fiber.App, d Deps) {
	admin := app.Group("/api/admin", middleware.RequireAdmin(d.JWTSecret))

	admin.Get("/events/:slug/registrations", handlers.ListRegistrations(d.Timeout))
	admin.Get("/registrations/stats", handlers.RegistrationStats(d.Timeout))
	admin.Patch("/registrations/:id/status", handlers.UpdateRegistrationStatus(d.Timeout))
}

func SetupAuth(app *fiber.App, d Deps) {
	app.Post("/auth/login", handlers.Login(d.JWTSecret, d.Timeout))
}
