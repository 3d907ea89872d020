package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"gantavya-backend/dto"
	"gantavya-backend/internal/draft"
)

// GetDraft godoc
// @Summary Load a saved registration draft
// @Description Returns the draft for the event, or 204 when none survives. A corrupt stored draft reads as absent.
// @Tags drafts
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.RegistrationDraft
// @Success 204 "No draft"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/register/draft/{slug} [get]
func GetDraft(store draft.Store, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		d, err := store.Load(ctx, draft.Key(c.Params("slug")))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Failed to load draft"})
		}
		if d == nil {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(d)
	}
}

// SaveDraft godoc
// @Summary Save a registration draft
// @Description Queues the draft for a debounced write; rapid successive saves coalesce into one
// @Tags drafts
// @Accept json
// @Produce json
// @Param slug path string true "Event slug"
// @Param body body dto.RegistrationDraft true "Draft contents"
// @Success 202 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/register/draft/{slug} [put]
func SaveDraft(saver *draft.Debouncer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var d dto.RegistrationDraft
		if err := c.BodyParser(&d); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "invalid request body"})
		}

		saver.Save(draft.Key(c.Params("slug")), d)
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Draft queued"})
	}
}

// DeleteDraft godoc
// @Summary Discard a registration draft
// @Description Drops any pending debounced write and removes the stored draft
// @Tags drafts
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} map[string]string
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/register/draft/{slug} [delete]
func DeleteDraft(store draft.Store, saver *draft.Debouncer, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := draft.Key(c.Params("slug"))
		saver.Cancel(key)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := store.Delete(ctx, key); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Failed to delete draft"})
		}
		return c.JSON(fiber.Map{"message": "Draft deleted"})
	}
}
