package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Admin struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	CreatedAt    *time.Time    `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
