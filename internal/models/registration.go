package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Registration status lifecycle. A row starts pending and is only moved by
// payment/admin flows.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusWaitlist  = "waitlist"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusWaitlist:
		return true
	}
	return false
}

type Registration struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventSlug        string        `bson:"event_slug" json:"event_slug"`
	TeamName         string        `bson:"team_name" json:"team_name"`
	TeamSize         int           `bson:"team_size" json:"team_size"`
	PaymentMethod    *string       `bson:"payment_method" json:"payment_method,omitempty"`
	TransactionID    *string       `bson:"transaction_id" json:"transaction_id,omitempty"`
	AdditionalInfo   *string       `bson:"additional_info" json:"additional_info,omitempty"`
	LeaderIDProofURL *string       `bson:"leader_id_proof_url" json:"leader_id_proof_url,omitempty"`
	Status           string        `bson:"status" json:"status"`

	RegistrationDate *time.Time `bson:"registration_date,omitempty" json:"registration_date,omitempty"`
}

// Exactly one member per registration carries IsLeader=true.
type TeamMember struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	RegistrationID bson.ObjectID `bson:"registration_id" json:"registration_id"`
	Name           string        `bson:"name" json:"name"`
	Email          string        `bson:"email" json:"email"`
	Phone          string        `bson:"phone" json:"phone"`
	College        string        `bson:"college" json:"college"`
	IsLeader       bool          `bson:"is_leader" json:"is_leader"`
}
