package models

import "time"

// Notification recipient roles.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
)

// Notification is a persisted message for one party describing a change to a
// booking they are involved in. One is created for the counterparty on every
// lifecycle transition.
type Notification struct {
	ID            string            `bson:"id" json:"id"`
	RecipientID   string            `bson:"recipient_id" json:"recipientId"`
	RecipientRole string            `bson:"recipient_role" json:"recipientRole"`
	Type          string            `bson:"type" json:"type"`
	Title         string            `bson:"title" json:"title"`
	Body          string            `bson:"body" json:"body"`
	Data          map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read          bool              `bson:"read" json:"read"`
	CreatedAt     time.Time         `bson:"created_at" json:"createdAt"`
}
