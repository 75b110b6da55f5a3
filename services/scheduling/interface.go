package scheduling

import (
	"context"
	"time"

	appointmentRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/appointment"
	professionalRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/professional"
	"github.com/DigitariaWebs/cheminement-sub002/models"

	"github.com/go-redis/redis/v8"
)

// BookingRequest is a commit-path request for one slot. Either ClientID or
// Guest must be set; guest bookings get a minted client id.
type BookingRequest struct {
	ProfessionalID string            `json:"professionalId"`
	ClientID       string            `json:"clientId"`
	Guest          *models.GuestInfo `json:"guest,omitempty"`
	Date           string            `json:"date"` // "YYYY-MM-DD"
	Time           string            `json:"time"` // "HH:MM"
	Type           string            `json:"type"`
	Notes          string            `json:"notes,omitempty"`
	// Pending marks intake-flow bookings that still need confirmation.
	// They hold their slot immediately.
	Pending bool `json:"pending,omitempty"`
}

// ReminderQueue enqueues appointment reminders for background delivery.
// Enqueue failures never fail a booking.
type ReminderQueue interface {
	EnqueueAppointmentReminder(ctx context.Context, appt *models.Appointment) error
}

// Service is the availability and booking engine.
type Service interface {
	// GetAvailableSlots resolves the bookable slots for a professional on a
	// calendar date, with already-booked and past slots removed. The caller
	// supplies "now" so the past-slot cutoff is deterministic.
	GetAvailableSlots(ctx context.Context, professionalID, date string, now time.Time) (*models.AvailabilityResult, error)
	// BookAppointment re-validates and commits one booking. Exactly one of
	// two concurrent commits for the same slot succeeds.
	BookAppointment(ctx context.Context, req BookingRequest, now time.Time) (*models.Appointment, error)
	// ConfirmAppointment promotes a pending appointment to scheduled.
	ConfirmAppointment(ctx context.Context, id string) (*models.Appointment, error)
	// TransitionAppointment applies a lifecycle transition (cancel, complete,
	// no-show). Cancelling frees the slot.
	TransitionAppointment(ctx context.Context, id, target string) (*models.Appointment, error)
	// ListProfessionalDay returns a professional's active appointments for a date.
	ListProfessionalDay(ctx context.Context, professionalID, date string) ([]models.Appointment, error)
	// ListClientAppointments returns a client's appointment history.
	ListClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error)
	// SetWeeklyTemplate validates and stores a professional's weekly availability.
	SetWeeklyTemplate(ctx context.Context, professionalID string, tmpl models.WeeklyAvailabilityTemplate) (*models.WeeklyAvailabilityTemplate, error)
	// GetWeeklyTemplate returns the stored template.
	GetWeeklyTemplate(ctx context.Context, professionalID string) (*models.WeeklyAvailabilityTemplate, error)
}

// DefaultSchedulingService is the production engine backed by the Mongo
// repositories, with an optional Redis cache on the read path and an optional
// reminder queue on the commit path.
type DefaultSchedulingService struct {
	Professionals professionalRepo.ProfessionalRepository
	Appointments  appointmentRepo.AppointmentRepository
	Cache         *redis.Client
	CacheTTL      time.Duration
	Reminders     ReminderQueue
}
