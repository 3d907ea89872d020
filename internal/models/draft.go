package models

import "time"

// Draft is the persisted form of an in-progress registration. Payload is the
// raw JSON the client last saved; decoding happens on load and fails open.
type Draft struct {
	Key       string    `bson:"_id" json:"key"`
	Payload   string    `bson:"payload" json:"payload"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
