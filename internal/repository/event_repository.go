package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gantavya-backend/database"
	"gantavya-backend/internal/models"
)

// GetPublishedEvents returns the catalog the form works from, soonest first.
func GetPublishedEvents(ctx context.Context) ([]models.Event, error) {
	cursor, err := database.DB.Collection("events").Find(
		ctx,
		bson.M{"status": "published"},
		options.Find().SetSort(bson.D{{Key: "date_from", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func GetEventsBySlugs(ctx context.Context, slugs []string) ([]models.Event, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	cursor, err := database.DB.Collection("events").Find(ctx, bson.M{"slug": bson.M{"$in": slugs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CountEventParticipants counts every team member across the event's
// registrations, leaders included.
func CountEventParticipants(ctx context.Context, eventSlug string) (int64, error) {
	regCursor, err := database.DB.Collection("registrations").Find(
		ctx,
		bson.M{"event_slug": eventSlug},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return 0, err
	}
	defer regCursor.Close(ctx)

	var regs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := regCursor.All(ctx, &regs); err != nil {
		return 0, err
	}
	if len(regs) == 0 {
		return 0, nil
	}

	ids := make([]bson.ObjectID, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, r.ID)
	}
	return database.DB.Collection("team_members").CountDocuments(ctx, bson.M{"registration_id": bson.M{"$in": ids}})
}
