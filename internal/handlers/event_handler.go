package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"gantavya-backend/dto"
	"gantavya-backend/internal/repository"
)

// ListEvents godoc
// @Summary List published events
// @Description Retrieve the event catalog, soonest event first
// @Tags events
// @Produce json
// @Success 200 {object} dto.EventListResponse
// @Failure 500 {object} dto.EventListResponse
// @Router /api/events [get]
func ListEvents(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		events, err := repository.GetPublishedEvents(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.EventListResponse{Success: false, Error: "Failed to fetch events"})
		}

		items := make([]dto.EventItem, 0, len(events))
		for _, ev := range events {
			items = append(items, dto.EventItem{
				Slug:            ev.Slug,
				Title:           ev.Title,
				RegistrationFee: ev.RegistrationFee,
				TeamSizeMin:     ev.TeamSizeMin,
				TeamSizeMax:     ev.TeamSizeMax,
				Description:     ev.Description,
				Category:        ev.Category,
			})
		}

		return c.JSON(dto.EventListResponse{Success: true, Data: items})
	}
}

// GetParticipantCount godoc
// @Summary Count participants for an event
// @Description Total team members across all registrations of one event
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.ParticipantCountResponse
// @Failure 500 {object} dto.ParticipantCountResponse
// @Router /api/events/{slug}/participant-count [get]
func GetParticipantCount(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		count, err := repository.CountEventParticipants(ctx, slug)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ParticipantCountResponse{Error: "Failed to count participants"})
		}

		return c.JSON(dto.ParticipantCountResponse{Count: int(count)})
	}
}
