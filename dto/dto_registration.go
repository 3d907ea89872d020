package dto

// One person on a team, leader or member.
type Participant struct {
	Name    string `json:"name"    example:"John Doe"`
	Email   string `json:"email"   example:"john@example.com"`
	Phone   string `json:"phone"   example:"9876543210"`
	College string `json:"college" example:"IIT Delhi"`
}

// ===== Request =====
type RegistrationRequest struct {
	EventSlug        string        `json:"eventSlug" example:"hackathon-2026"`
	TeamName         string        `json:"teamName"  example:"Null Pointers"`
	TeamLeader       Participant   `json:"teamLeader"`
	TeamMembers      []Participant `json:"teamMembers,omitempty"`
	SelectedEvents   []string      `json:"selectedEvents,omitempty"`
	PaymentMethod    string        `json:"paymentMethod,omitempty"  example:"Razorpay"`
	TransactionID    string        `json:"transactionId,omitempty"`
	AdditionalInfo   string        `json:"additionalInfo,omitempty"`
	LeaderIDProofURL string        `json:"leaderIdProofUrl,omitempty"`
}

// ===== Success / Failure Response =====
type RegistrationResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID string `json:"registrationId,omitempty"`
	Error          string `json:"error,omitempty"`
}

type EmailCheckResult struct {
	Exists bool   `json:"exists"`
	Error  string `json:"error,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" example:"confirmed"`
}

// Per-event registration counters for the admin dashboard.
type EventStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
	Waitlist  int `json:"waitlist"`
}
