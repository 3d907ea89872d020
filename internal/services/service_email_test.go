package services

import (
	"strings"
	"testing"

	"gantavya-backend/dto"
)

func TestRenderRegistrationTextCarriesBreakdown(t *testing.T) {
	text, err := RenderRegistrationText(dto.RegistrationEmailData{
		TeamName:    "Null Pointers",
		LeaderName:  "John Doe",
		LeaderEmail: "john@example.com",
		Members: []dto.EmailMember{
			{Name: "Jane", Email: "jane@example.com", Phone: "9876543211"},
		},
		Events:         []dto.EmailEvent{{Name: "Hackathon", Price: 1000}},
		TotalAmount:    1000,
		PlatformFee:    20,
		GST:            183.60,
		FinalAmount:    1203.60,
		RegistrationID: "abc123",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Null Pointers",
		"Hackathon: ₹1000.00",
		"₹20.00",
		"₹183.60",
		"₹1203.60",
		"Total Members: 2",
		"abc123",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendering lacks %q", want)
		}
	}
}

func TestUnconfiguredMailerReturnsSupportMessage(t *testing.T) {
	m := &Mailer{}
	err := m.SendRegistrationConfirmation(dto.RegistrationEmailData{
		TeamName:    "Null Pointers",
		LeaderEmail: "john@example.com",
	})
	if err == nil || err.Error() != "Email service not configured. Please contact support." {
		t.Fatalf("err = %v", err)
	}
}
