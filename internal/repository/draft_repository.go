package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gantavya-backend/database"
	"gantavya-backend/internal/models"
)

func GetDraft(ctx context.Context, key string) (*models.Draft, error) {
	var doc models.Draft
	err := database.DB.Collection("drafts").FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func UpsertDraft(ctx context.Context, doc models.Draft) error {
	_, err := database.DB.Collection("drafts").ReplaceOne(
		ctx,
		bson.M{"_id": doc.Key},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

func DeleteDraft(ctx context.Context, key string) error {
	_, err := database.DB.Collection("drafts").DeleteOne(ctx, bson.M{"_id": key})
	return err
}
