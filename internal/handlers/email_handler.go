package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gantavya-backend/dto"
	"gantavya-backend/internal/services"
)

// SendRegistrationEmail godoc
// @Summary Send a registration confirmation email
// @Tags emails
// @Accept json
// @Produce json
// @Param body body dto.RegistrationEmailData true "Confirmation payload"
// @Success 200 {object} dto.EmailResponse
// @Failure 400 {object} dto.EmailResponse
// @Failure 500 {object} dto.EmailResponse
// @Router /api/send-registration-email [post]
func SendRegistrationEmail(mail services.MailSender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var data dto.RegistrationEmailData
		if err := c.BodyParser(&data); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.EmailResponse{Success: false, Error: "invalid request body"})
		}
		if data.TeamName == "" || data.LeaderName == "" || data.LeaderEmail == "" ||
			data.LeaderPhone == "" || data.College == "" || len(data.Events) == 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.EmailResponse{Success: false, Error: "Missing required fields for registration email"})
		}

		if err := mail.SendRegistrationConfirmation(data); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.EmailResponse{Success: false, Error: err.Error()})
		}
		return c.JSON(dto.EmailResponse{Success: true, Message: "Confirmation email sent"})
	}
}

// SendPaymentEmail godoc
// @Summary Send a payment receipt email
// @Tags emails
// @Accept json
// @Produce json
// @Param body body dto.PaymentEmailData true "Receipt payload"
// @Success 200 {object} dto.EmailResponse
// @Failure 400 {object} dto.EmailResponse
// @Failure 500 {object} dto.EmailResponse
// @Router /api/send-payment-email [post]
func SendPaymentEmail(mail services.MailSender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var data dto.PaymentEmailData
		if err := c.BodyParser(&data); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.EmailResponse{Success: false, Error: "invalid request body"})
		}
		if data.TeamName == "" || data.LeaderName == "" || data.RegistrationID == "" ||
			data.PaymentID == "" || data.OrderID == "" || data.Amount == 0 || len(data.Events) == 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.EmailResponse{Success: false, Error: "Missing required fields for payment email"})
		}

		if err := mail.SendPaymentConfirmation(data); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.EmailResponse{Success: false, Error: err.Error()})
		}
		return c.JSON(dto.EmailResponse{Success: true, Message: "Payment email sent"})
	}
}
