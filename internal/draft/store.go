package draft

import (
	"context"
	"encoding/json"
	"sync"

	"gantavya-backend/dto"
)

const keyPrefix = "registration_draft_"

// Key is the storage key for one event's draft.
func Key(eventSlug string) string { return keyPrefix + eventSlug }

// Store persists in-progress registration drafts. Load returns (nil, nil)
// when there is no draft or the stored payload is malformed; a corrupt draft
// is never an error the user sees.
type Store interface {
	Load(ctx context.Context, key string) (*dto.RegistrationDraft, error)
	Save(ctx context.Context, key string, d dto.RegistrationDraft) error
	Delete(ctx context.Context, key string) error
}

// decode turns a stored payload back into a draft, treating malformed data
// as "no draft".
func decode(payload string) *dto.RegistrationDraft {
	var d dto.RegistrationDraft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil
	}
	return &d
}

// MemoryStore backs tests and local runs without Mongo.
type MemoryStore struct {
	mu       sync.Mutex
	payloads map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{payloads: make(map[string]string)}
}

func (s *MemoryStore) Load(_ context.Context, key string) (*dto.RegistrationDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.payloads[key]
	if !ok {
		return nil, nil
	}
	return decode(payload), nil
}

func (s *MemoryStore) Save(_ context.Context, key string, d dto.RegistrationDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[key] = string(raw)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.payloads, key)
	return nil
}
