package validation

import (
	"strings"
	"testing"

	"gantavya-backend/dto"
)

func validLeader() dto.Participant {
	return dto.Participant{
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   "9876543210",
		College: "IIT Delhi",
	}
}

func TestValidateTeamNameBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		length int
		ok     bool
	}{
		{"too short", 2, false},
		{"min boundary", 3, true},
		{"max boundary", 50, true},
		{"too long", 51, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTeamName(strings.Repeat("x", tc.length))
			if tc.ok && err != nil {
				t.Errorf("length %d: unexpected error %q", tc.length, err.Message)
			}
			if !tc.ok && err == nil {
				t.Errorf("length %d: expected error, got none", tc.length)
			}
		})
	}
}

func TestLengthRulesCountRunes(t *testing.T) {
	// 50 multi-byte characters sit inside the limit even at 100 bytes.
	if err := ValidateTeamName(strings.Repeat("é", 50)); err != nil {
		t.Errorf("50-rune name should pass, got %q", err.Message)
	}
	if err := ValidateTeamName("éé"); err == nil {
		t.Error("2-rune name should fail the 3-character minimum")
	}

	p := validLeader()
	p.Name = "é"
	if errs := ValidateParticipant("teamLeader", p); len(errs) != 1 {
		t.Errorf("1-rune name should fail, got %v", errs)
	}
	p.Name = "éé"
	if errs := ValidateParticipant("teamLeader", p); len(errs) != 0 {
		t.Errorf("2-rune name should pass, got %v", errs)
	}

	if err := ValidateAdditionalInfo(strings.Repeat("é", 500)); err != nil {
		t.Errorf("500-rune info should pass, got %q", err.Message)
	}
	if err := ValidateTransactionID("ééééé"); err != nil {
		t.Errorf("5-rune transaction id should pass, got %q", err.Message)
	}
}

func TestValidateParticipant(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.Participant)
		field   string
	}{
		{"short name", func(p *dto.Participant) { p.Name = "J" }, "teamLeader.name"},
		{"bad email", func(p *dto.Participant) { p.Email = "not-an-email" }, "teamLeader.email"},
		{"email missing domain", func(p *dto.Participant) { p.Email = "john@" }, "teamLeader.email"},
		{"short phone", func(p *dto.Participant) { p.Phone = "12345" }, "teamLeader.phone"},
		{"phone with letters", func(p *dto.Participant) { p.Phone = "987654321a" }, "teamLeader.phone"},
		{"empty college", func(p *dto.Participant) { p.College = "" }, "teamLeader.college"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validLeader()
			tc.mutate(&p)
			errs := ValidateParticipant("teamLeader", p)
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tc.field {
				t.Errorf("field = %q, want %q", errs[0].Field, tc.field)
			}
			if errs[0].Message == "" {
				t.Error("error has no message")
			}
		})
	}

	if errs := ValidateParticipant("teamLeader", validLeader()); len(errs) != 0 {
		t.Errorf("valid participant produced errors: %v", errs)
	}
}

func TestValidateOptionalFields(t *testing.T) {
	if err := ValidateAdditionalInfo(strings.Repeat("a", 500)); err != nil {
		t.Errorf("500 chars should pass, got %q", err.Message)
	}
	if err := ValidateAdditionalInfo(strings.Repeat("a", 501)); err == nil {
		t.Error("501 chars should fail")
	}
	if err := ValidateTransactionID(""); err != nil {
		t.Error("absent transaction id should pass")
	}
	if err := ValidateTransactionID("1234"); err == nil {
		t.Error("4-char transaction id should fail")
	}
	if err := ValidateTransactionID("12345"); err != nil {
		t.Errorf("5-char transaction id should pass, got %q", err.Message)
	}
}

func TestUniqueEmails(t *testing.T) {
	form := dto.DraftFormValues{
		TeamName:   "Null Pointers",
		TeamLeader: validLeader(),
		TeamMembers: []dto.Participant{
			{Name: "Jane", Email: "jane@example.com", Phone: "9876543211", College: "IIT Delhi"},
		},
	}
	if err := UniqueEmails(form); err != nil {
		t.Errorf("distinct emails should pass, got %q", err.Message)
	}

	form.TeamMembers[0].Email = "John@Example.com" // same as leader modulo case
	err := UniqueEmails(form)
	if err == nil {
		t.Fatal("duplicate emails should fail")
	}
	if err.Message != "Participant emails must be unique" {
		t.Errorf("message = %q", err.Message)
	}
}

func TestValidateBasicDetailsAggregates(t *testing.T) {
	form := dto.DraftFormValues{
		TeamName:   "ab", // too short
		TeamLeader: validLeader(),
		TeamMembers: []dto.Participant{
			{Name: "J", Email: "bad", Phone: "123", College: ""},
		},
	}
	errs := ValidateBasicDetails(form)
	if len(errs) != 5 {
		t.Fatalf("got %d errors, want 5: %v", len(errs), errs)
	}
	if errs[1].Field != "teamMembers.0.name" {
		t.Errorf("member errors should be indexed, got %q", errs[1].Field)
	}
}
