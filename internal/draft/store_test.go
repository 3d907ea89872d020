package draft

import (
	"context"
	"sync"
	"testing"
	"time"

	"gantavya-backend/dto"
)

func sampleDraft(team string) dto.RegistrationDraft {
	return dto.RegistrationDraft{
		FormValues: dto.DraftFormValues{
			TeamName: team,
			TeamLeader: dto.Participant{
				Name:    "John Doe",
				Email:   "john@example.com",
				Phone:   "9876543210",
				College: "IIT Delhi",
			},
		},
		SelectedEvents: []string{"hackathon-2026"},
	}
}

func TestKey(t *testing.T) {
	if got := Key("hackathon-2026"); got != "registration_draft_hackathon-2026" {
		t.Errorf("Key = %q", got)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	key := Key("hackathon-2026")

	got, err := s.Load(ctx, key)
	if err != nil || got != nil {
		t.Fatalf("empty load: got %v, %v", got, err)
	}

	want := sampleDraft("Null Pointers")
	if err := s.Save(ctx, key, want); err != nil {
		t.Fatal(err)
	}
	got, err = s.Load(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.FormValues.TeamName != "Null Pointers" {
		t.Fatalf("loaded draft = %+v", got)
	}
	if len(got.SelectedEvents) != 1 || got.SelectedEvents[0] != "hackathon-2026" {
		t.Errorf("selected events = %v", got.SelectedEvents)
	}

	if err := s.Delete(ctx, key); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Load(ctx, key)
	if got != nil {
		t.Error("draft survived delete")
	}
}

func TestDecodeFailsOpenOnMalformedPayload(t *testing.T) {
	if d := decode("{not json"); d != nil {
		t.Errorf("malformed payload decoded to %+v, want nil", d)
	}
	if d := decode(`{"formValues":{"teamName":"ok"}}`); d == nil || d.FormValues.TeamName != "ok" {
		t.Errorf("valid payload decoded to %+v", d)
	}
}

// countingStore records every write that reaches the backing store.
type countingStore struct {
	mu    sync.Mutex
	saves []dto.RegistrationDraft
}

func (s *countingStore) Load(context.Context, string) (*dto.RegistrationDraft, error) {
	return nil, nil
}

func (s *countingStore) Save(_ context.Context, _ string, d dto.RegistrationDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, d)
	return nil
}

func (s *countingStore) Delete(context.Context, string) error { return nil }

func (s *countingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	backing := &countingStore{}
	d := NewDebouncer(backing, 30*time.Millisecond, time.Second)
	key := Key("hackathon-2026")

	for i := 0; i < 5; i++ {
		d.Save(key, sampleDraft("team-v"+string(rune('0'+i))))
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if got := backing.count(); got != 1 {
		t.Fatalf("store saw %d writes, want 1", got)
	}
	backing.mu.Lock()
	last := backing.saves[0].FormValues.TeamName
	backing.mu.Unlock()
	if last != "team-v4" {
		t.Errorf("flushed draft = %q, want the last one", last)
	}
}

func TestDebouncerCancelDropsPendingWrite(t *testing.T) {
	backing := &countingStore{}
	d := NewDebouncer(backing, 30*time.Millisecond, time.Second)
	key := Key("hackathon-2026")

	d.Save(key, sampleDraft("doomed"))
	d.Cancel(key)

	time.Sleep(80 * time.Millisecond)
	if got := backing.count(); got != 0 {
		t.Errorf("store saw %d writes after cancel, want 0", got)
	}
}

func TestDebouncerFlushAll(t *testing.T) {
	backing := &countingStore{}
	d := NewDebouncer(backing, time.Hour, time.Second)

	d.Save(Key("a"), sampleDraft("a"))
	d.Save(Key("b"), sampleDraft("b"))
	d.FlushAll()

	if got := backing.count(); got != 2 {
		t.Errorf("store saw %d writes, want 2", got)
	}
}
