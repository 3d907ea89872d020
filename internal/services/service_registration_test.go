package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"gantavya-backend/dto"
	"gantavya-backend/internal/draft"
	"gantavya-backend/internal/models"
)

// fakeStore lets each saga step be failed independently.
type fakeStore struct {
	failRegistration bool
	failLeader       bool
	failMembers      bool

	registrationID bson.ObjectID
	regs           []models.Registration
	deleted        []bson.ObjectID
	leaders        []models.TeamMember
	members        []models.TeamMember
	catalog        []models.Event
}

func (s *fakeStore) InsertRegistration(_ context.Context, reg models.Registration) (bson.ObjectID, error) {
	if s.failRegistration {
		return bson.NilObjectID, errors.New("insert failed")
	}
	s.regs = append(s.regs, reg)
	s.registrationID = bson.NewObjectID()
	return s.registrationID, nil
}

func (s *fakeStore) DeleteRegistration(_ context.Context, id bson.ObjectID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeStore) InsertTeamMember(_ context.Context, m models.TeamMember) error {
	if s.failLeader {
		return errors.New("leader insert failed")
	}
	s.leaders = append(s.leaders, m)
	return nil
}

func (s *fakeStore) InsertTeamMembers(_ context.Context, ms []models.TeamMember) error {
	if s.failMembers {
		return errors.New("members insert failed")
	}
	s.members = append(s.members, ms...)
	return nil
}

func (s *fakeStore) GetEventsBySlugs(_ context.Context, _ []string) ([]models.Event, error) {
	return s.catalog, nil
}

type fakeUploader struct {
	fail  bool
	paths []string
}

func (u *fakeUploader) Upload(_ context.Context, bucket, path string, _ io.Reader) (string, error) {
	if u.fail {
		return "", errors.New("bucket not found: " + bucket)
	}
	u.paths = append(u.paths, path)
	return "http://localhost:3000/uploads/" + bucket + "/" + path, nil
}

type fakeMailer struct {
	fail bool
	sent []dto.RegistrationEmailData
}

func (m *fakeMailer) SendRegistrationConfirmation(data dto.RegistrationEmailData) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, data)
	return nil
}

func (m *fakeMailer) SendPaymentConfirmation(dto.PaymentEmailData) error { return nil }

func sampleRequest() dto.RegistrationRequest {
	return dto.RegistrationRequest{
		EventSlug: "hackathon-2026",
		TeamName:  "Null Pointers",
		TeamLeader: dto.Participant{
			Name: "John Doe", Email: "john@example.com", Phone: "9876543210", College: "IIT Delhi",
		},
		TeamMembers: []dto.Participant{
			{Name: "Jane Roe", Email: "jane@example.com", Phone: "9876543211", College: "IIT Delhi"},
		},
		SelectedEvents:   []string{"hackathon-2026"},
		PaymentMethod:    "Razorpay",
		LeaderIDProofURL: "http://localhost:3000/uploads/registrations/id-proofs/leaders/x.pdf",
	}
}

func newPipeline(store *fakeStore, mail *fakeMailer) (*SubmissionPipeline, *draft.MemoryStore) {
	drafts := draft.NewMemoryStore()
	store.catalog = []models.Event{
		{Slug: "hackathon-2026", Title: "Gantavya Hackathon", RegistrationFee: 1000},
	}
	return &SubmissionPipeline{Store: store, Mail: mail, Drafts: drafts}, drafts
}

func TestSubmitSuccessClearsDraft(t *testing.T) {
	store := &fakeStore{}
	mail := &fakeMailer{}
	p, drafts := newPipeline(store, mail)
	ctx := context.Background()

	key := draft.Key("hackathon-2026")
	drafts.Save(ctx, key, dto.RegistrationDraft{FormValues: dto.DraftFormValues{TeamName: "Null Pointers"}})

	resp := p.Submit(ctx, sampleRequest(), nil)

	if !resp.Success {
		t.Fatalf("submit failed: %+v", resp)
	}
	if resp.RegistrationID != store.registrationID.Hex() {
		t.Errorf("registrationId = %q", resp.RegistrationID)
	}
	if len(store.leaders) != 1 || !store.leaders[0].IsLeader {
		t.Errorf("leaders = %+v", store.leaders)
	}
	if len(store.members) != 1 || store.members[0].IsLeader {
		t.Errorf("members = %+v", store.members)
	}
	if d, _ := drafts.Load(ctx, key); d != nil {
		t.Error("draft survived a successful submission")
	}
}

func TestSubmitEmailFailureStillSucceeds(t *testing.T) {
	store := &fakeStore{}
	mail := &fakeMailer{fail: true}
	p, _ := newPipeline(store, mail)

	resp := p.Submit(context.Background(), sampleRequest(), nil)

	if !resp.Success {
		t.Fatalf("email failure flipped the outcome: %+v", resp)
	}
	if len(store.deleted) != 0 {
		t.Error("email failure triggered a rollback")
	}
}

func TestSubmitLeaderFailureRollsBackRegistration(t *testing.T) {
	store := &fakeStore{failLeader: true}
	mail := &fakeMailer{}
	p, drafts := newPipeline(store, mail)
	ctx := context.Background()

	key := draft.Key("hackathon-2026")
	drafts.Save(ctx, key, dto.RegistrationDraft{})

	resp := p.Submit(ctx, sampleRequest(), nil)

	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Message != "Failed to add team leader" {
		t.Errorf("message = %q", resp.Message)
	}
	if len(store.deleted) != 1 || store.deleted[0] != store.registrationID {
		t.Errorf("registration not rolled back: %v", store.deleted)
	}
	if len(mail.sent) != 0 {
		t.Error("confirmation sent despite failure")
	}
	if d, _ := drafts.Load(ctx, key); d == nil {
		t.Error("draft cleared on a failed submission")
	}
}

func TestSubmitMemberFailureIsSoft(t *testing.T) {
	store := &fakeStore{failMembers: true}
	mail := &fakeMailer{}
	p, _ := newPipeline(store, mail)

	resp := p.Submit(context.Background(), sampleRequest(), nil)

	if !resp.Success {
		t.Fatalf("member failure flipped the outcome: %+v", resp)
	}
	if len(store.deleted) != 0 {
		t.Error("member failure rolled back the registration")
	}
	if len(mail.sent) != 1 {
		t.Error("confirmation not sent")
	}
}

func TestSubmitRegistrationFailureCreatesNothing(t *testing.T) {
	store := &fakeStore{failRegistration: true}
	mail := &fakeMailer{}
	p, _ := newPipeline(store, mail)

	resp := p.Submit(context.Background(), sampleRequest(), nil)

	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Message != "Failed to create registration" {
		t.Errorf("message = %q", resp.Message)
	}
	if len(store.leaders) != 0 || len(mail.sent) != 0 {
		t.Error("later steps ran after an abort")
	}
}

func TestSubmitStagedFileRejectedBeforeAnyWrite(t *testing.T) {
	store := &fakeStore{}
	mail := &fakeMailer{}
	p, _ := newPipeline(store, mail)

	req := sampleRequest()
	req.LeaderIDProofURL = ""
	staged := &StagedFile{
		Filename:    "proof.png",
		ContentType: "image/png",
		Size:        1024,
		Reader:      strings.NewReader("not a pdf"),
	}

	resp := p.Submit(context.Background(), req, staged)

	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Message != "Failed to upload ID proof" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Error != "Only PDF files are allowed" {
		t.Errorf("error = %q", resp.Error)
	}
	if store.registrationID != bson.NilObjectID {
		t.Error("registration created despite upload failure")
	}
}

func TestSubmitUploadsStagedPDF(t *testing.T) {
	store := &fakeStore{}
	mail := &fakeMailer{}
	p, _ := newPipeline(store, mail)
	uploads := &fakeUploader{}
	p.Uploads = uploads

	req := sampleRequest()
	req.LeaderIDProofURL = ""
	staged := &StagedFile{
		Filename:    "proof.pdf",
		ContentType: "application/pdf",
		Size:        1 << 20,
		Reader:      strings.NewReader("%PDF-1.4"),
	}

	resp := p.Submit(context.Background(), req, staged)
	if !resp.Success {
		t.Fatalf("submit failed: %+v", resp)
	}
	if len(uploads.paths) != 1 {
		t.Fatalf("uploads = %v", uploads.paths)
	}
	if len(store.regs) != 1 || store.regs[0].LeaderIDProofURL == nil {
		t.Fatal("uploaded URL missing from registration")
	}
	if !strings.Contains(*store.regs[0].LeaderIDProofURL, "id-proofs/leaders/") {
		t.Errorf("leader_id_proof_url = %q", *store.regs[0].LeaderIDProofURL)
	}
}

func TestSubmitUploadFailureAborts(t *testing.T) {
	store := &fakeStore{}
	mail := &fakeMailer{}
	p, _ := newPipeline(store, mail)
	p.Uploads = &fakeUploader{fail: true}

	req := sampleRequest()
	req.LeaderIDProofURL = ""
	staged := &StagedFile{
		Filename:    "proof.pdf",
		ContentType: "application/pdf",
		Size:        1 << 20,
		Reader:      strings.NewReader("%PDF-1.4"),
	}

	resp := p.Submit(context.Background(), req, staged)
	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Message != "Failed to upload ID proof" {
		t.Errorf("message = %q", resp.Message)
	}
	if len(store.regs) != 0 {
		t.Error("registration created after upload failure")
	}
}

func TestSubmitEmailCarriesFeeBreakdown(t *testing.T) {
	store := &fakeStore{}
	mail := &fakeMailer{}
	p, _ := newPipeline(store, mail)

	resp := p.Submit(context.Background(), sampleRequest(), nil)
	if !resp.Success {
		t.Fatalf("submit failed: %+v", resp)
	}
	if len(mail.sent) != 1 {
		t.Fatal("no confirmation sent")
	}
	sent := mail.sent[0]
	if sent.TotalAmount != 1000 || sent.PlatformFee != 20 {
		t.Errorf("breakdown = %+v", sent)
	}
	if sent.FinalAmount < 1203.59 || sent.FinalAmount > 1203.61 {
		t.Errorf("finalAmount = %v, want ~1203.60", sent.FinalAmount)
	}
	if sent.RegistrationID != store.registrationID.Hex() {
		t.Errorf("registrationId = %q", sent.RegistrationID)
	}
}
