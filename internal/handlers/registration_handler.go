package handlers

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"gantavya-backend/dto"
	"gantavya-backend/internal/services"
	"gantavya-backend/internal/validation"
	"gantavya-backend/internal/wizard"
)

// SubmitRegistration godoc
// @Summary Submit a team registration
// @Description Validates the payload, runs the submission pipeline and returns the registration id. Accepts plain JSON, or multipart with a "payload" JSON field plus an optional "idProof" PDF.
// @Tags registration
// @Accept json,multipart/form-data
// @Produce json
// @Param body body dto.RegistrationRequest true "Registration payload"
// @Success 201 {object} dto.RegistrationResponse
// @Failure 400 {object} dto.RegistrationResponse
// @Failure 500 {object} dto.RegistrationResponse
// @Router /api/register [post]
func SubmitRegistration(pipeline *services.SubmissionPipeline, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.RegistrationRequest
		var staged *services.StagedFile

		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			if err := json.Unmarshal([]byte(c.FormValue("payload")), &req); err != nil {
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.RegistrationResponse{Success: false, Message: "Invalid registration payload", Error: err.Error()})
			}
			if fh, err := c.FormFile("idProof"); err == nil && fh != nil {
				f, err := fh.Open()
				if err != nil {
					return c.Status(fiber.StatusInternalServerError).
						JSON(dto.RegistrationResponse{Success: false, Message: "Failed to read ID proof", Error: err.Error()})
				}
				defer f.Close()
				staged = &services.StagedFile{
					Filename:    fh.Filename,
					ContentType: fh.Header.Get("Content-Type"),
					Size:        fh.Size,
					Reader:      f,
				}
			}
		} else if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.RegistrationResponse{Success: false, Message: "Invalid registration payload", Error: err.Error()})
		}

		form := dto.DraftFormValues{
			TeamName:       req.TeamName,
			TeamLeader:     req.TeamLeader,
			TeamMembers:    req.TeamMembers,
			AdditionalInfo: req.AdditionalInfo,
			TransactionID:  req.TransactionID,
		}
		if errs := validation.ValidateBasicDetails(form); len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.RegistrationResponse{Success: false, Message: errs[0].Message, Error: errs[0].Field})
		}
		if e := validation.UniqueEmails(form); e != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.RegistrationResponse{Success: false, Message: e.Message, Error: e.Field})
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp := pipeline.Submit(ctx, req, staged)
		if !resp.Success {
			return c.Status(fiber.StatusInternalServerError).JSON(resp)
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// CheckEmail godoc
// @Summary Check whether an email already registered for an event
// @Description Exists means the email belongs to some team of that event. Lookup errors come back in the error field with exists=false; callers treat those as non-blocking.
// @Tags registration
// @Produce json
// @Param email query string true "Email to check"
// @Param event query string true "Event slug"
// @Success 200 {object} dto.EmailCheckResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/register/check-email [get]
func CheckEmail(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(c.Query("email"))
		slug := strings.TrimSpace(c.Query("event"))
		if email == "" || slug == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "email and event are required"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return c.JSON(services.CheckEmailRegistration(ctx, slug, email))
	}
}

// AdvanceWizard godoc
// @Summary Advance or rewind the registration wizard
// @Description Re-runs the server-side gates for the requested transition and returns the resulting step
// @Tags registration
// @Accept json
// @Produce json
// @Param body body dto.AdvanceRequest true "Wizard snapshot and requested move"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/register/advance [post]
func AdvanceWizard(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.AdvanceRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "invalid request body"})
		}

		action, ok := wizard.ParseAction(req.Action)
		if !ok {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "action must be next or back"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		m := services.BuildWizard(req, services.CheckEmailRegistration)
		r := m.Advance(ctx, wizard.Step(req.Step), action)

		return c.JSON(dto.AdvanceResponse{Step: int(r.Step), Blocked: r.Blocked, Reason: r.Reason})
	}
}
