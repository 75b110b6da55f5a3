package models

import "time"

// Appointment statuses. Everything except cancelled occupies its slot.
const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Appointment session types. Orthogonal to scheduling, carried through.
const (
	TypeVideo    = "video"
	TypeInPerson = "in-person"
	TypePhone    = "phone"
)

// GuestInfo carries contact details for bookings made without an account.
type GuestInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Appointment is a booked slot. Appointments are never hard-deleted; the
// lifecycle is status transitions only. SlotHeld mirrors the status: true for
// every non-cancelled appointment, and it scopes the partial unique index
// that guarantees at most one active booking per (professionalId, date, time).
type Appointment struct {
	ID             string     `bson:"id" json:"id"`
	ProfessionalID string     `bson:"professionalId" json:"professionalId"`
	ClientID       string     `bson:"clientId" json:"clientId"`
	Guest          *GuestInfo `bson:"guest,omitempty" json:"guest,omitempty"`
	Date           string     `bson:"date" json:"date"` // "YYYY-MM-DD", midnight-normalized
	Time           string     `bson:"time" json:"time"` // "HH:MM"
	Duration       int        `bson:"duration" json:"duration"`
	Status         string     `bson:"status" json:"status"`
	Type           string     `bson:"type" json:"type"`
	Notes          string     `bson:"notes,omitempty" json:"notes,omitempty"`
	SlotHeld       bool       `bson:"slotHeld" json:"-"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// OccupiesSlot reports whether an appointment in the given status blocks its slot.
func OccupiesSlot(status string) bool {
	return status != StatusCancelled
}

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ValidType reports whether t is a known session type.
func ValidType(t string) bool {
	switch t {
	case TypeVideo, TypeInPerson, TypePhone:
		return true
	}
	return false
}
