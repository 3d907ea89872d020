package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"gantavya-backend/dto"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// FieldError points at one field with one user-facing message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Length rules count characters, not bytes, so multi-byte names measure
// the way users see them.
func ValidateTeamName(name string) *FieldError {
	if utf8.RuneCountInString(name) < 3 {
		return &FieldError{Field: "teamName", Message: "Team name must be at least 3 characters."}
	}
	if utf8.RuneCountInString(name) > 50 {
		return &FieldError{Field: "teamName", Message: "Team name must be at most 50 characters."}
	}
	return nil
}

// ValidateParticipant checks one person's block. prefix is the field path in
// the form, e.g. "teamLeader" or "teamMembers.0".
func ValidateParticipant(prefix string, p dto.Participant) []FieldError {
	var errs []FieldError
	if utf8.RuneCountInString(p.Name) < 2 {
		errs = append(errs, FieldError{Field: prefix + ".name", Message: "Name must be at least 2 characters."})
	}
	if !emailRe.MatchString(p.Email) {
		errs = append(errs, FieldError{Field: prefix + ".email", Message: "Enter a valid email address."})
	}
	if !phoneRe.MatchString(p.Phone) {
		errs = append(errs, FieldError{Field: prefix + ".phone", Message: "Enter a valid 10-digit phone number."})
	}
	if len(p.College) < 1 {
		errs = append(errs, FieldError{Field: prefix + ".college", Message: "College name is required."})
	}
	return errs
}

func ValidateAdditionalInfo(info string) *FieldError {
	if utf8.RuneCountInString(info) > 500 {
		return &FieldError{Field: "additionalInfo", Message: "Additional info must be at most 500 characters."}
	}
	return nil
}

// Transaction IDs are optional; the rule only applies once one is entered.
func ValidateTransactionID(id string) *FieldError {
	if id != "" && utf8.RuneCountInString(id) < 5 {
		return &FieldError{Field: "transactionId", Message: "Transaction ID must be at least 5 characters."}
	}
	return nil
}

// ValidateBasicDetails runs every field rule the Basic Details step owns.
func ValidateBasicDetails(form dto.DraftFormValues) []FieldError {
	var errs []FieldError
	if e := ValidateTeamName(form.TeamName); e != nil {
		errs = append(errs, *e)
	}
	errs = append(errs, ValidateParticipant("teamLeader", form.TeamLeader)...)
	for i, m := range form.TeamMembers {
		errs = append(errs, ValidateParticipant(fmt.Sprintf("teamMembers.%d", i), m)...)
	}
	if e := ValidateAdditionalInfo(form.AdditionalInfo); e != nil {
		errs = append(errs, *e)
	}
	if e := ValidateTransactionID(form.TransactionID); e != nil {
		errs = append(errs, *e)
	}
	return errs
}

// UniqueEmails is the cross-field rule for the Step-1 gate: the leader and
// every member must use distinct addresses. Comparison is case-insensitive.
func UniqueEmails(form dto.DraftFormValues) *FieldError {
	seen := make(map[string]bool, 1+len(form.TeamMembers))
	emails := []string{form.TeamLeader.Email}
	for _, m := range form.TeamMembers {
		emails = append(emails, m.Email)
	}
	for _, e := range emails {
		key := strings.ToLower(e)
		if seen[key] {
			return &FieldError{Field: "teamMembers", Message: "Participant emails must be unique"}
		}
		seen[key] = true
	}
	return nil
}
