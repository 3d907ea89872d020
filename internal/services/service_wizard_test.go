package services

import (
	"context"
	"testing"

	"gantavya-backend/dto"
	"gantavya-backend/internal/wizard"
)

func advanceReq() dto.AdvanceRequest {
	return dto.AdvanceRequest{
		EventSlug: "hackathon-2026",
		Step:      1,
		Action:    "next",
		Form: dto.DraftFormValues{
			TeamName: "Null Pointers",
			TeamLeader: dto.Participant{
				Name: "John Doe", Email: "john@example.com", Phone: "9876543210", College: "IIT Delhi",
			},
		},
		SelectedEvents: []string{"hackathon-2026"},
		HasIDProof:     true,
	}
}

func noDupes(context.Context, string, string) dto.EmailCheckResult {
	return dto.EmailCheckResult{Exists: false}
}

func TestBasicDetailsGatePasses(t *testing.T) {
	m := BuildWizard(advanceReq(), noDupes)

	r := m.Advance(context.Background(), wizard.StepBasicDetails, wizard.ActionNext)
	if r.Blocked {
		t.Fatalf("blocked: %q", r.Reason)
	}
	if r.Step != wizard.StepEventSelection {
		t.Errorf("step = %v", r.Step)
	}
}

func TestBasicDetailsGateBlocksDuplicateEmails(t *testing.T) {
	req := advanceReq()
	req.Form.TeamMembers = []dto.Participant{
		{Name: "Jane", Email: "john@example.com", Phone: "9876543211", College: "IIT Delhi"},
	}
	m := BuildWizard(req, noDupes)

	r := m.Advance(context.Background(), wizard.StepBasicDetails, wizard.ActionNext)
	if !r.Blocked || r.Reason != "Participant emails must be unique" {
		t.Fatalf("got %+v", r)
	}
}

func TestBasicDetailsGateRequiresIDProof(t *testing.T) {
	req := advanceReq()
	req.HasIDProof = false
	m := BuildWizard(req, noDupes)

	r := m.Advance(context.Background(), wizard.StepBasicDetails, wizard.ActionNext)
	if !r.Blocked || r.Reason != "Upload leader ID proof (PDF, ≤2MB) to continue" {
		t.Fatalf("got %+v", r)
	}
}

func TestBasicDetailsGateBlocksExistingRegistration(t *testing.T) {
	var checked []string
	checker := func(_ context.Context, slug, email string) dto.EmailCheckResult {
		checked = append(checked, slug)
		return dto.EmailCheckResult{Exists: slug == "robo-wars"}
	}
	req := advanceReq()
	req.SelectedEvents = []string{"hackathon-2026", "robo-wars"}
	m := BuildWizard(req, checker)

	r := m.Advance(context.Background(), wizard.StepBasicDetails, wizard.ActionNext)
	if !r.Blocked {
		t.Fatal("expected block")
	}
	if r.Reason != "Leader email already registered for event robo-wars" {
		t.Errorf("reason = %q", r.Reason)
	}
	if len(checked) != 2 {
		t.Errorf("checked %v, want both events in order", checked)
	}
}

func TestCheckerErrorDoesNotBlock(t *testing.T) {
	checker := func(context.Context, string, string) dto.EmailCheckResult {
		return dto.EmailCheckResult{Error: "connection reset"}
	}
	m := BuildWizard(advanceReq(), checker)

	r := m.Advance(context.Background(), wizard.StepBasicDetails, wizard.ActionNext)
	if r.Blocked {
		t.Fatalf("transport error blocked the gate: %q", r.Reason)
	}
}

func TestEventSelectionGateRequiresEvents(t *testing.T) {
	req := advanceReq()
	req.SelectedEvents = nil
	m := BuildWizard(req, noDupes)

	r := m.Advance(context.Background(), wizard.StepEventSelection, wizard.ActionNext)
	if !r.Blocked || r.Reason != "Please select at least one event" {
		t.Fatalf("got %+v", r)
	}
}
