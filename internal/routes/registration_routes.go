package routes

import (
	"github.com/gofiber/fiber/v2"

	"gantavya-backend/internal/handlers"
)

func SetupRoutesRegistration(app *fiber.App, d Deps) {
	app.Post("/api/register", handlers.SubmitRegistration(d.Pipeline, d.Timeout))

	reg := app.Group("/api/register")
	reg.Get("/check-email", handlers.CheckEmail(d.Timeout))
	reg.Post("/advance", handlers.AdvanceWizard(d.Timeout))
}

func SetupRoutesDraft(app *fiber.App, d Deps) {
	drafts := app.Group("/api/register/draft")

	drafts.Get("/:slug", handlers.GetDraft(d.Drafts, d.Timeout))
	drafts.Put("/:slug", handlers.SaveDraft(d.DraftSaver))
	drafts.Delete("/:slug", handlers.DeleteDraft(d.Drafts, d.DraftSaver, d.Timeout))
}
