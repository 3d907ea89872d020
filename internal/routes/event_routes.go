package routes

import (
	"github.com/gofiber/fiber/v2"

	"gantavya-backend/internal/handlers"
)

func SetupRoutesEvent(app *fiber.App, d Deps) {
	events := app.Group("/api/events")

	events.Get("/", handlers.ListEvents(d.Timeout))
	events.Get("/:slug/participant-count", handlers.GetParticipantCount(d.Timeout))
}
