package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gantavya-backend/database"
	"gantavya-backend/dto"
	"gantavya-backend/internal/models"
)

func InsertRegistration(ctx context.Context, reg models.Registration) (bson.ObjectID, error) {
	res, err := database.DB.Collection("registrations").InsertOne(ctx, reg)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func DeleteRegistration(ctx context.Context, id bson.ObjectID) error {
	_, err := database.DB.Collection("registrations").DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func InsertTeamMember(ctx context.Context, member models.TeamMember) error {
	_, err := database.DB.Collection("team_members").InsertOne(ctx, member)
	return err
}

func InsertTeamMembers(ctx context.Context, members []models.TeamMember) error {
	if len(members) == 0 {
		return nil
	}
	var docs []interface{}
	for _, m := range members {
		docs = append(docs, m)
	}
	_, err := database.DB.Collection("team_members").InsertMany(ctx, docs)
	return err
}

// EmailRegisteredForEvent joins team_members against registrations to answer
// "has this address already registered for this event".
func EmailRegisteredForEvent(ctx context.Context, eventSlug, email string) (bool, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"email": email}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "registrations",
			"localField":   "registration_id",
			"foreignField": "_id",
			"as":           "registration",
		}}},
		{{Key: "$unwind", Value: "$registration"}},
		{{Key: "$match", Value: bson.M{"registration.event_slug": eventSlug}}},
		{{Key: "$limit", Value: 1}},
	}

	cursor, err := database.DB.Collection("team_members").Aggregate(ctx, pipeline)
	if err != nil {
		return false, err
	}
	defer cursor.Close(ctx)

	exists := cursor.Next(ctx)
	if err := cursor.Err(); err != nil {
		return false, err
	}
	return exists, nil
}

func GetRegistrationsByEvent(ctx context.Context, eventSlug string) ([]models.Registration, error) {
	cursor, err := database.DB.Collection("registrations").Find(
		ctx,
		bson.M{"event_slug": eventSlug},
		options.Find().SetSort(bson.D{{Key: "registration_date", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var regs []models.Registration
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func UpdateRegistrationStatus(ctx context.Context, id bson.ObjectID, status string) error {
	res, err := database.DB.Collection("registrations").UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetRegistrationStats folds registrations into per-event counters, the
// same shape the dashboard's manual aggregation produced.
func GetRegistrationStats(ctx context.Context) (map[string]*dto.EventStats, error) {
	cursor, err := database.DB.Collection("registrations").Find(
		ctx,
		bson.M{},
		options.Find().SetProjection(bson.M{"event_slug": 1, "status": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		EventSlug string `bson:"event_slug"`
		Status    string `bson:"status"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := make(map[string]*dto.EventStats)
	for _, row := range rows {
		s, ok := stats[row.EventSlug]
		if !ok {
			s = &dto.EventStats{}
			stats[row.EventSlug] = s
		}
		s.Total++
		switch row.Status {
		case models.StatusConfirmed:
			s.Confirmed++
		case models.StatusPending:
			s.Pending++
		case models.StatusCancelled:
			s.Cancelled++
		case models.StatusWaitlist:
			s.Waitlist++
		}
	}
	return stats, nil
}
