package draft

import (
	"context"
	"encoding/json"
	"time"

	"gantavya-backend/dto"
	"gantavya-backend/internal/models"
	"gantavya-backend/internal/repository"
)

// MongoStore keeps drafts in the drafts collection; a TTL index set up in
// bootstrap reaps stale ones.
type MongoStore struct{}

func NewMongoStore() *MongoStore { return &MongoStore{} }

func (s *MongoStore) Load(ctx context.Context, key string) (*dto.RegistrationDraft, error) {
	doc, err := repository.GetDraft(ctx, key)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return decode(doc.Payload), nil
}

func (s *MongoStore) Save(ctx context.Context, key string, d dto.RegistrationDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return repository.UpsertDraft(ctx, models.Draft{
		Key:       key,
		Payload:   string(raw),
		UpdatedAt: time.Now().UTC(),
	})
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	return repository.DeleteDraft(ctx, key)
}
