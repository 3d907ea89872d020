package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Drafts older than 30 days are reaped by Mongo itself.
const draftTTLSeconds = 30 * 24 * 60 * 60

func EnsureRegistrationIndexes(db *mongo.Database) error {
	// One catalog entry per slug
	_, err := db.Collection("events").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_event_slug"),
		},
	)
	if err != nil {
		return err
	}

	// An email appears at most once inside one registration
	_, err = db.Collection("team_members").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "registration_id", Value: 1},
				{Key: "email", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_registration_email"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("drafts").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(draftTTLSeconds).SetName("ttl_draft_updated_at"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("admins").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_admin_email"),
		},
	)
	return err
}
