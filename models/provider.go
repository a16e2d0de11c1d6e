package models

import "time"

// ServiceProvider represents a vendor offering a service on the platform.
type ServiceProvider struct {
	ID                  string    `bson:"id" json:"id"`
	Name                string    `bson:"name" json:"name"`
	Email               string    `bson:"email" json:"email"`
	PasswordHash        string    `bson:"password_hash" json:"-"`
	Phone               string    `bson:"phone" json:"phone"`
	ServiceType         string    `bson:"service_type" json:"serviceType"`
	City                string    `bson:"city" json:"city"`
	HourlyRate          float64   `bson:"hourly_rate" json:"hourlyRate"`
	Bio                 string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Location            GeoPoint  `bson:"location,omitempty" json:"location,omitempty"`
	AIAutoAcceptEnabled bool      `bson:"ai_auto_accept_enabled" json:"aiAutoAcceptEnabled"`
	Rating              float64   `bson:"rating" json:"rating"`
	RatingCount         int       `bson:"rating_count" json:"ratingCount"`
	FCMToken            string    `bson:"fcm_token,omitempty" json:"-"`
	TokenHash           string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updatedAt"`
}

// Snapshot returns the party record embedded into bookings at creation time.
func (p *ServiceProvider) Snapshot() ProviderSnapshot {
	return ProviderSnapshot{
		ID:          p.ID,
		Name:        p.Name,
		ServiceType: p.ServiceType,
		City:        p.City,
		HourlyRate:  p.HourlyRate,
	}
}

// ProviderMatch annotates a provider search result with its distance from the
// search origin. DistanceKm is nil when either side lacks coordinates;
// distance-less entries sort last under ascending-distance ordering.
type ProviderMatch struct {
	Provider   ServiceProvider `json:"provider"`
	DistanceKm *float64        `json:"distanceKm,omitempty"`
}
