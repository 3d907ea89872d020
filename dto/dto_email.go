package dto

type EmailMember struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type EmailEvent struct {
	Name  string  `json:"name"  example:"Robo Wars"`
	Price float64 `json:"price" example:"500"`
}

// Payload for the registration confirmation mail. Amounts are the four
// fee-breakdown figures, unrounded; templates round at render time.
type RegistrationEmailData struct {
	TeamName       string        `json:"teamName"`
	LeaderName     string        `json:"leaderName"`
	LeaderEmail    string        `json:"leaderEmail"`
	LeaderPhone    string        `json:"leaderPhone"`
	College        string        `json:"college"`
	Members        []EmailMember `json:"members"`
	Events         []EmailEvent  `json:"events"`
	TotalAmount    float64       `json:"totalAmount"`
	PlatformFee    float64       `json:"platformFee"`
	GST            float64       `json:"gst"`
	FinalAmount    float64       `json:"finalAmount"`
	RegistrationID string        `json:"registrationId,omitempty"`
}

type PaymentEmailData struct {
	TeamName       string       `json:"teamName"`
	LeaderName     string       `json:"leaderName"`
	LeaderEmail    string       `json:"leaderEmail"`
	RegistrationID string       `json:"registrationId"`
	PaymentID      string       `json:"paymentId"`
	OrderID        string       `json:"orderId"`
	Amount         float64      `json:"amount"`
	PaymentDate    string       `json:"paymentDate"`
	Events         []EmailEvent `json:"events"`
}

type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
