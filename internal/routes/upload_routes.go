package routes

import (
	"github.com/gofiber/fiber/v2"

	"gantavya-backend/internal/handlers"
)

func SetupRoutesUpload(app *fiber.App, d Deps) {
	app.Post("/api/upload", handlers.UploadIDProof(d.Uploads, d.Timeout))
}

func SetupRoutesEmail(app *fiber.App, d Deps) {
	app.Post("/api/send-registration-email", handlers.SendRegistrationEmail(d.Mail))
	app.Post("/api/send-payment-email", handlers.SendPaymentEmail(d.Mail))
}
