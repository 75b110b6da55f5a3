package scheduling

import (
	"context"

	"github.com/DigitariaWebs/cheminement-sub002/models"
)

// Template defaults applied when a professional omits the spacing settings.
const (
	DefaultSessionMinutes = 60
	DefaultBreakMinutes   = 15
)

// ValidateTemplate checks a weekly availability template: exactly one entry
// per weekday, well-formed HH:MM bounds, and start strictly before end on
// working days. A working day whose window is shorter than one session is
// allowed; it simply yields zero slots.
func ValidateTemplate(tmpl *models.WeeklyAvailabilityTemplate) error {
	if tmpl.SessionDurationMinutes <= 0 {
		return newError(CodeInvalidInput, "session duration must be positive")
	}
	if tmpl.BreakDurationMinutes < 0 {
		return newError(CodeInvalidInput, "break duration must not be negative")
	}
	if len(tmpl.Days) != len(models.Weekdays) {
		return newError(CodeInvalidInput, "template must configure all seven weekdays")
	}

	seen := make(map[string]bool, len(models.Weekdays))
	known := make(map[string]bool, len(models.Weekdays))
	for _, d := range models.Weekdays {
		known[d] = true
	}
	for _, day := range tmpl.Days {
		if !known[day.Day] {
			return newError(CodeInvalidInput, "unknown weekday "+day.Day)
		}
		if seen[day.Day] {
			return newError(CodeInvalidInput, "duplicate weekday "+day.Day)
		}
		seen[day.Day] = true

		if !day.IsWorkDay {
			continue
		}
		start, err := parseClock(day.StartTime)
		if err != nil {
			return err
		}
		end, err := parseClock(day.EndTime)
		if err != nil {
			return err
		}
		if start >= end {
			return newError(CodeInvalidInput, day.Day+": start time must be before end time")
		}
	}
	return nil
}

// SetWeeklyTemplate applies defaults, validates and stores the template.
// Edits never rewrite existing appointments; durations were copied at booking
// time.
func (s *DefaultSchedulingService) SetWeeklyTemplate(ctx context.Context, professionalID string, tmpl models.WeeklyAvailabilityTemplate) (*models.WeeklyAvailabilityTemplate, error) {
	if tmpl.SessionDurationMinutes == 0 {
		tmpl.SessionDurationMinutes = DefaultSessionMinutes
	}
	if err := ValidateTemplate(&tmpl); err != nil {
		return nil, err
	}

	if _, err := s.loadBookableProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	if err := s.Professionals.UpdateAvailability(ctx, professionalID, &tmpl); err != nil {
		return nil, wrapUpstream(err)
	}

	// Cached day views may now be stale; they expire within the TTL, and the
	// commit path re-validates against the stored template anyway.
	return &tmpl, nil
}

// GetWeeklyTemplate returns the stored template for a professional.
func (s *DefaultSchedulingService) GetWeeklyTemplate(ctx context.Context, professionalID string) (*models.WeeklyAvailabilityTemplate, error) {
	professional, err := s.loadBookableProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional.Availability == nil || len(professional.Availability.Days) == 0 {
		return nil, newError(CodeAvailabilityNotConfigured, "professional has not configured availability")
	}
	return professional.Availability, nil
}
