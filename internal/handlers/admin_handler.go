package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"gantavya-backend/dto"
	"gantavya-backend/internal/models"
	"gantavya-backend/internal/repository"
)

// ListRegistrations godoc
// @Summary List registrations for an event
// @Description Newest first. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 200 {array} models.Registration
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/events/{slug}/registrations [get]
func ListRegistrations(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		regs, err := repository.GetRegistrationsByEvent(ctx, c.Params("slug"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Failed to fetch registrations"})
		}
		return c.JSON(regs)
	}
}

// RegistrationStats godoc
// @Summary Per-event registration counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]dto.EventStats
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/registrations/stats [get]
func RegistrationStats(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		stats, err := repository.GetRegistrationStats(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Failed to compute stats"})
		}
		return c.JSON(stats)
	}
}

// UpdateRegistrationStatus godoc
// @Summary Change a registration's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param body body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/registrations/{id}/status [patch]
func UpdateRegistrationStatus(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "Invalid registration ID"})
		}

		var req dto.StatusUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		if !models.ValidStatus(req.Status) {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "status must be one of pending, confirmed, cancelled, waitlist"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := repository.UpdateRegistrationStatus(ctx, id, req.Status); err != nil {
			if err == mongo.ErrNoDocuments {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Error: "Registration not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Failed to update status"})
		}

		return c.JSON(fiber.Map{"message": "Status updated", "status": req.Status})
	}
}
