package dto

// ===== Request =====
// Snapshot of the wizard the client asks to move; the server re-runs the
// gates instead of trusting the client's own validation.
type AdvanceRequest struct {
	EventSlug      string          `json:"eventSlug" example:"hackathon-2026"`
	Step           int             `json:"step"      example:"1"`
	Action         string          `json:"action"    example:"next"` // next | back
	Form           DraftFormValues `json:"form"`
	SelectedEvents []string        `json:"selectedEvents,omitempty"`
	HasIDProof     bool            `json:"hasIdProof"`
}

// ===== Response =====
type AdvanceResponse struct {
	Step    int    `json:"step"`
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason,omitempty"`
}
