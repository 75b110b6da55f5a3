package professionalRepo

import (
	"context"
	"errors"

	"github.com/DigitariaWebs/cheminement-sub002/models"
)

// ErrNotFound is returned when no professional matches the given ID.
var ErrNotFound = errors.New("professional not found")

// ProfessionalRepository defines data access for professional profiles.
type ProfessionalRepository interface {
	// Create inserts a new professional profile.
	Create(ctx context.Context, professional *models.Professional) error
	// GetByID retrieves a professional by its unique ID. Returns ErrNotFound
	// when no document matches.
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	// UpdateAvailability replaces the professional's weekly availability template.
	UpdateAvailability(ctx context.Context, id string, tmpl *models.WeeklyAvailabilityTemplate) error
	// EnsureIndexes creates the indexes backing the profile queries.
	EnsureIndexes() error
}
