package models

import "time"

// User represents a platform customer.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	Location     GeoPoint  `bson:"location,omitempty" json:"location,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Snapshot returns the party record embedded into bookings at creation time.
func (u *User) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
