package services

import (
	"context"
	"io"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"gantavya-backend/dto"
	"gantavya-backend/internal/draft"
	"gantavya-backend/internal/fees"
	"gantavya-backend/internal/models"
	"gantavya-backend/internal/repository"
	"gantavya-backend/internal/storage"
)

// RegistrationStore is the slice of persistence the saga touches.
type RegistrationStore interface {
	InsertRegistration(ctx context.Context, reg models.Registration) (bson.ObjectID, error)
	DeleteRegistration(ctx context.Context, id bson.ObjectID) error
	InsertTeamMember(ctx context.Context, member models.TeamMember) error
	InsertTeamMembers(ctx context.Context, members []models.TeamMember) error
	GetEventsBySlugs(ctx context.Context, slugs []string) ([]models.Event, error)
}

// MongoRegistrationStore is the production store over the repository funcs.
type MongoRegistrationStore struct{}

func (MongoRegistrationStore) InsertRegistration(ctx context.Context, reg models.Registration) (bson.ObjectID, error) {
	return repository.InsertRegistration(ctx, reg)
}

func (MongoRegistrationStore) DeleteRegistration(ctx context.Context, id bson.ObjectID) error {
	return repository.DeleteRegistration(ctx, id)
}

func (MongoRegistrationStore) InsertTeamMember(ctx context.Context, member models.TeamMember) error {
	return repository.InsertTeamMember(ctx, member)
}

func (MongoRegistrationStore) InsertTeamMembers(ctx context.Context, members []models.TeamMember) error {
	return repository.InsertTeamMembers(ctx, members)
}

func (MongoRegistrationStore) GetEventsBySlugs(ctx context.Context, slugs []string) ([]models.Event, error) {
	return repository.GetEventsBySlugs(ctx, slugs)
}

// StagedFile is an identity proof held client-side until submission.
type StagedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SubmissionPipeline sequences one registration attempt: upload, record
// creation, member insertion, confirmation mail. Nothing here is
// transactional; each step's failure handling comes from the step table.
type SubmissionPipeline struct {
	Store   RegistrationStore
	Uploads storage.Uploader
	Mail    MailSender
	Drafts  draft.Store
}

// submission is the mutable state threaded through the steps.
type submission struct {
	req         dto.RegistrationRequest
	staged      *StagedFile
	uploadedURL string
	regID       bson.ObjectID
}

type failurePolicy int

const (
	abortOnFailure failurePolicy = iota
	warnOnFailure
)

type sagaStep struct {
	name        string
	policy      failurePolicy
	failMessage string // user-facing, abort steps only
	run         func(p *SubmissionPipeline, ctx context.Context, s *submission) error
	// compensate undoes earlier work when this step aborts.
	compensate func(p *SubmissionPipeline, ctx context.Context, s *submission)
}

// The step table is the whole orchestration policy: which steps abort,
// which merely warn, and what gets compensated.
var submissionSteps = []sagaStep{
	{
		name:        "upload-id-proof",
		policy:      abortOnFailure,
		failMessage: "Failed to upload ID proof",
		run:         (*SubmissionPipeline).uploadIDProof,
	},
	{
		name:        "create-registration",
		policy:      abortOnFailure,
		failMessage: "Failed to create registration",
		run:         (*SubmissionPipeline).createRegistration,
	},
	{
		name:        "insert-leader",
		policy:      abortOnFailure,
		failMessage: "Failed to add team leader",
		run:         (*SubmissionPipeline).insertLeader,
		compensate:  (*SubmissionPipeline).deleteRegistration,
	},
	{
		name:   "insert-members",
		policy: warnOnFailure,
		run:    (*SubmissionPipeline).insertMembers,
	},
	{
		name:   "send-confirmation",
		policy: warnOnFailure,
		run:    (*SubmissionPipeline).sendConfirmation,
	},
}

// Submit runs the saga once. The response carries either the registration id
// or the failing step's message; warn-policy failures never flip the outcome.
func (p *SubmissionPipeline) Submit(ctx context.Context, req dto.RegistrationRequest, staged *StagedFile) dto.RegistrationResponse {
	s := &submission{req: req, staged: staged}

	for _, step := range submissionSteps {
		err := step.run(p, ctx, s)
		if err == nil {
			continue
		}
		if step.policy == warnOnFailure {
			log.Printf("%s failed (non-fatal): %v", step.name, err)
			continue
		}
		if step.compensate != nil {
			step.compensate(p, ctx, s)
		}
		return dto.RegistrationResponse{
			Success: false,
			Message: step.failMessage,
			Error:   err.Error(),
		}
	}

	if p.Drafts != nil {
		if err := p.Drafts.Delete(ctx, draft.Key(req.EventSlug)); err != nil {
			log.Printf("draft cleanup failed for %s: %v", req.EventSlug, err)
		}
	}

	return dto.RegistrationResponse{
		Success:        true,
		Message:        "Registration submitted successfully! You will receive a confirmation email shortly.",
		RegistrationID: s.regID.Hex(),
	}
}

func (p *SubmissionPipeline) uploadIDProof(ctx context.Context, s *submission) error {
	if s.req.LeaderIDProofURL != "" {
		// Client already uploaded through /api/upload.
		s.uploadedURL = s.req.LeaderIDProofURL
		return nil
	}
	if s.staged == nil {
		return nil
	}
	if err := storage.ValidateIDProof(s.staged.ContentType, s.staged.Size); err != nil {
		return err
	}
	url, err := p.Uploads.Upload(ctx, storage.DefaultBucket, storage.IDProofPath(s.staged.Filename), s.staged.Reader)
	if err != nil {
		return err
	}
	s.uploadedURL = url
	return nil
}

func (p *SubmissionPipeline) createRegistration(ctx context.Context, s *submission) error {
	now := time.Now().UTC()
	reg := models.Registration{
		EventSlug:        s.req.EventSlug,
		TeamName:         s.req.TeamName,
		TeamSize:         1 + len(s.req.TeamMembers),
		PaymentMethod:    optional(s.req.PaymentMethod),
		TransactionID:    optional(s.req.TransactionID),
		AdditionalInfo:   optional(s.req.AdditionalInfo),
		LeaderIDProofURL: optional(s.uploadedURL),
		Status:           models.StatusPending,
		RegistrationDate: &now,
	}
	id, err := p.Store.InsertRegistration(ctx, reg)
	if err != nil {
		return err
	}
	s.regID = id
	return nil
}

func (p *SubmissionPipeline) insertLeader(ctx context.Context, s *submission) error {
	return p.Store.InsertTeamMember(ctx, models.TeamMember{
		RegistrationID: s.regID,
		Name:           s.req.TeamLeader.Name,
		Email:          s.req.TeamLeader.Email,
		Phone:          s.req.TeamLeader.Phone,
		College:        s.req.TeamLeader.College,
		IsLeader:       true,
	})
}

func (p *SubmissionPipeline) deleteRegistration(ctx context.Context, s *submission) {
	if err := p.Store.DeleteRegistration(ctx, s.regID); err != nil {
		log.Printf("rollback of registration %s failed: %v", s.regID.Hex(), err)
	}
}

// Member insertion after a committed leader is deliberately not rolled back;
// operators reconcile stragglers by hand.
func (p *SubmissionPipeline) insertMembers(ctx context.Context, s *submission) error {
	if len(s.req.TeamMembers) == 0 {
		return nil
	}
	members := make([]models.TeamMember, 0, len(s.req.TeamMembers))
	for _, m := range s.req.TeamMembers {
		members = append(members, models.TeamMember{
			RegistrationID: s.regID,
			Name:           m.Name,
			Email:          m.Email,
			Phone:          m.Phone,
			College:        m.College,
			IsLeader:       false,
		})
	}
	return p.Store.InsertTeamMembers(ctx, members)
}

func (p *SubmissionPipeline) sendConfirmation(ctx context.Context, s *submission) error {
	slugs := s.req.SelectedEvents
	if len(slugs) == 0 {
		slugs = []string{s.req.EventSlug}
	}
	events, err := p.Store.GetEventsBySlugs(ctx, slugs)
	if err != nil {
		return err
	}

	priced := make([]fees.PricedEvent, 0, len(events))
	emailEvents := make([]dto.EmailEvent, 0, len(events))
	for _, ev := range events {
		priced = append(priced, fees.PricedEvent{Slug: ev.Slug, RegistrationFee: ev.RegistrationFee})
		emailEvents = append(emailEvents, dto.EmailEvent{Name: ev.Title, Price: ev.RegistrationFee})
	}
	breakdown := fees.Calculate(priced, slugs)

	members := make([]dto.EmailMember, 0, len(s.req.TeamMembers))
	for _, m := range s.req.TeamMembers {
		members = append(members, dto.EmailMember{Name: m.Name, Email: m.Email, Phone: m.Phone})
	}

	return p.Mail.SendRegistrationConfirmation(dto.RegistrationEmailData{
		TeamName:       s.req.TeamName,
		LeaderName:     s.req.TeamLeader.Name,
		LeaderEmail:    s.req.TeamLeader.Email,
		LeaderPhone:    s.req.TeamLeader.Phone,
		College:        s.req.TeamLeader.College,
		Members:        members,
		Events:         emailEvents,
		TotalAmount:    breakdown.BaseTotal,
		PlatformFee:    breakdown.PlatformFee,
		GST:            breakdown.Tax,
		FinalAmount:    breakdown.Final,
		RegistrationID: s.regID.Hex(),
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
