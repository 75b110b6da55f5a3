package appointmentRepo

import (
	"context"
	"errors"

	"github.com/DigitariaWebs/cheminement-sub002/models"
)

// ErrDuplicateSlot is returned by InsertIfAbsent when another non-cancelled
// appointment already holds the same (professionalId, date, time).
var ErrDuplicateSlot = errors.New("slot already held by another appointment")

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines data access for appointment records.
type AppointmentRepository interface {
	// InsertIfAbsent persists a new appointment. The storage layer enforces
	// uniqueness of (professionalId, date, time) across slot-holding
	// appointments; a losing concurrent insert gets ErrDuplicateSlot.
	InsertIfAbsent(ctx context.Context, appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// FindActiveByProfessionalAndDate returns all non-cancelled appointments
	// for a professional on a calendar date, ordered by time.
	FindActiveByProfessionalAndDate(ctx context.Context, professionalID, date string) ([]models.Appointment, error)
	// UpdateStatus transitions an appointment's status, releasing the slot
	// when the new status no longer occupies it.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	// ListByClient returns all appointments booked by a client, newest first.
	ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	// EnsureIndexes creates the indexes backing conflict checks and queries.
	EnsureIndexes() error
}
