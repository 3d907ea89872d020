package dto

// Field values the browser keeps while the form is being filled.
type DraftFormValues struct {
	TeamName       string        `json:"teamName"`
	TeamLeader     Participant   `json:"teamLeader"`
	TeamMembers    []Participant `json:"teamMembers,omitempty"`
	PaymentMethod  string        `json:"paymentMethod,omitempty"`
	TransactionID  string        `json:"transactionId,omitempty"`
	AdditionalInfo string        `json:"additionalInfo,omitempty"`
}

// A not-yet-submitted registration. The wizard position is deliberately not
// part of the draft: restoring one always lands on Basic Details.
type RegistrationDraft struct {
	FormValues     DraftFormValues `json:"formValues"`
	SelectedEvents []string        `json:"selectedEvents,omitempty"`
}
