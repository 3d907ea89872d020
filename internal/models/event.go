package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Event struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug            string        `bson:"slug" json:"slug"`
	Title           string        `bson:"title" json:"title"`
	RegistrationFee float64       `bson:"registration_fee" json:"registration_fee"`
	TeamSizeMin     int           `bson:"team_size_min" json:"team_size_min"`
	TeamSizeMax     int           `bson:"team_size_max" json:"team_size_max"`
	Description     string        `bson:"description" json:"description"`
	Category        string        `bson:"category" json:"category"`
	Status          string        `bson:"status,omitempty" json:"status,omitempty"` // published, draft, archived
	DateFrom        *time.Time    `bson:"date_from,omitempty" json:"date_from,omitempty"`

	CreatedAt *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
