package services

import (
	"context"

	"gantavya-backend/dto"
	"gantavya-backend/internal/validation"
	"gantavya-backend/internal/wizard"
)

// BuildWizard wires the step machine's gates against one advance request.
// The Basic Details gate layers its checks in the order the form does:
// field rules, email uniqueness, the staged ID proof, then the per-event
// duplicate checks against the backend.
func BuildWizard(req dto.AdvanceRequest, check EmailChecker) *wizard.Machine {
	gates := map[string]wizard.Gate{
		wizard.GateBasicDetails: func(ctx context.Context) string {
			if errs := validation.ValidateBasicDetails(req.Form); len(errs) > 0 {
				return errs[0].Message
			}
			if e := validation.UniqueEmails(req.Form); e != nil {
				return e.Message
			}
			if !req.HasIDProof {
				return "Upload leader ID proof (PDF, ≤2MB) to continue"
			}
			return LeaderEmailGate(ctx, check, req.SelectedEvents, req.Form.TeamLeader.Email)
		},
		wizard.GateEventSelection: func(ctx context.Context) string {
			if len(req.SelectedEvents) == 0 {
				return "Please select at least one event"
			}
			return ""
		},
	}
	return wizard.New(gates)
}
