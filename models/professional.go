package models

import "time"

// Professional account statuses. Only active and pending professionals are bookable.
const (
	ProfessionalActive    = "active"
	ProfessionalPending   = "pending"
	ProfessionalSuspended = "suspended"
)

// Professional represents a practitioner profile as stored in the profile collection.
type Professional struct {
	ID           string                      `bson:"id" json:"id"`
	FirstName    string                      `bson:"firstName" json:"firstName"`
	LastName     string                      `bson:"lastName" json:"lastName"`
	Email        string                      `bson:"email" json:"email"`
	Specialty    string                      `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Status       string                      `bson:"status" json:"status"`
	Availability *WeeklyAvailabilityTemplate `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt    time.Time                   `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time                   `bson:"updatedAt" json:"updatedAt"`
}

// Bookable reports whether the professional may receive bookings.
func (p *Professional) Bookable() bool {
	return p.Status == ProfessionalActive || p.Status == ProfessionalPending
}
