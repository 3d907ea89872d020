package services

import (
	"context"
	"fmt"
	"log"

	"gantavya-backend/dto"
	"gantavya-backend/internal/repository"
)

// EmailChecker answers whether an address already registered for an event.
// Swappable so gates can be tested without Mongo.
type EmailChecker func(ctx context.Context, eventSlug, email string) dto.EmailCheckResult

// CheckEmailRegistration is the production checker. "Not found" is a normal
// exists=false; a transport or query error is reported in the result but the
// check stays best-effort.
func CheckEmailRegistration(ctx context.Context, eventSlug, email string) dto.EmailCheckResult {
	exists, err := repository.EmailRegisteredForEvent(ctx, eventSlug, email)
	if err != nil {
		return dto.EmailCheckResult{Exists: false, Error: err.Error()}
	}
	return dto.EmailCheckResult{Exists: exists}
}

// LeaderEmailGate runs the checker once per selected event, in order. An
// existing registration blocks with the first offending event's message; a
// checker error alone does not block.
func LeaderEmailGate(ctx context.Context, check EmailChecker, slugs []string, email string) string {
	for _, slug := range slugs {
		res := check(ctx, slug, email)
		if res.Exists {
			return fmt.Sprintf("Leader email already registered for event %s", slug)
		}
		if res.Error != "" {
			log.Printf("email check failed for %s: %s", slug, res.Error)
		}
	}
	return ""
}
