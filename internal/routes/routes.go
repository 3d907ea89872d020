package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gantavya-backend/internal/draft"
	"gantavya-backend/internal/services"
	"gantavya-backend/internal/storage"
)

// Deps carries everything the route groups need. Built once in main.
type Deps struct {
	Timeout   time.Duration
	JWTSecret string

	Drafts     draft.Store
	DraftSaver *draft.Debouncer
	Uploads    storage.Uploader
	Mail       services.MailSender
	Pipeline   *services.SubmissionPipeline
}

func SetupRoutes(app *fiber.App, d Deps) {
	SetupAuth(app, d)
	SetupRoutesEvent(app, d)
	SetupRoutesRegistration(app, d)
	SetupRoutesDraft(app, d)
	SetupRoutesUpload(app, d)
	SetupRoutesEmail(app, d)
	SetupRoutesAdmin(app, d)
}
