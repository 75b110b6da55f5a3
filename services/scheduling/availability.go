package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	professionalRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/professional"
	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/utils"

	"go.uber.org/zap"
)

const defaultCacheTTL = 30 * time.Second

// GetAvailableSlots resolves the day window from the professional's weekly
// template, cuts it into candidate slots and strips booked and past slots.
// A non-working day is a valid closed result, not an error.
func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, professionalID, date string, now time.Time) (*models.AvailabilityResult, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	if cached := s.cachedAvailability(ctx, professionalID, date); cached != nil {
		return cached, nil
	}

	professional, err := s.loadBookableProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	tmpl := professional.Availability
	if tmpl == nil || len(tmpl.Days) == 0 {
		return nil, newError(CodeAvailabilityNotConfigured, "professional has not configured availability")
	}

	dayOfWeek, err := weekdayName(date)
	if err != nil {
		return nil, err
	}

	result := &models.AvailabilityResult{
		ProfessionalID: professionalID,
		Date:           date,
		DayOfWeek:      dayOfWeek,
		Slots:          []models.CandidateSlot{},
	}

	day := tmpl.DayFor(dayOfWeek)
	if day == nil || !day.IsWorkDay {
		result.Reason = "professional does not work on " + dayOfWeek
		return result, nil
	}
	result.WorkingHours = &models.WorkingHours{Start: day.StartTime, End: day.EndTime}

	times, err := GenerateSlots(day.StartTime, day.EndTime, tmpl.SessionDurationMinutes, tmpl.BreakDurationMinutes)
	if err != nil {
		return nil, err
	}
	candidates := make([]models.CandidateSlot, 0, len(times))
	for _, t := range times {
		candidates = append(candidates, models.CandidateSlot{
			Time:            t,
			DurationMinutes: tmpl.SessionDurationMinutes,
			Available:       true,
		})
	}

	booked, err := s.Appointments.FindActiveByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		return nil, wrapUpstream(err)
	}

	result.Available = true
	result.Slots = FilterSlots(candidates, booked, date, now)

	s.storeAvailability(ctx, result)
	return result, nil
}

// loadBookableProfessional fetches the professional and rejects profiles that
// cannot receive bookings. Suspended professionals are indistinguishable from
// missing ones to callers.
func (s *DefaultSchedulingService) loadBookableProfessional(ctx context.Context, professionalID string) (*models.Professional, error) {
	professional, err := s.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrNotFound) {
			return nil, newError(CodeProfessionalNotFound, "professional not found")
		}
		return nil, wrapUpstream(err)
	}
	if !professional.Bookable() {
		return nil, newError(CodeProfessionalNotFound, "professional not found")
	}
	return professional, nil
}

func (s *DefaultSchedulingService) cacheKey(professionalID, date string) string {
	return utils.AvailabilityCachePrefix + professionalID + ":" + date
}

// cachedAvailability serves the advisory read path from Redis when possible.
// Staleness within the TTL is acceptable; the commit path re-validates.
func (s *DefaultSchedulingService) cachedAvailability(ctx context.Context, professionalID, date string) *models.AvailabilityResult {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, s.cacheKey(professionalID, date)).Result()
	if err != nil {
		return nil
	}
	var result models.AvailabilityResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil
	}
	return &result
}

func (s *DefaultSchedulingService) storeAvailability(ctx context.Context, result *models.AvailabilityResult) {
	if s.Cache == nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, s.cacheKey(result.ProfessionalID, result.Date), data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability",
			zap.String("professionalID", result.ProfessionalID), zap.Error(err))
	}
}

// invalidateAvailability drops the cached day after any write touching it.
func (s *DefaultSchedulingService) invalidateAvailability(ctx context.Context, professionalID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, s.cacheKey(professionalID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("professionalID", professionalID), zap.Error(err))
	}
}

// ListProfessionalDay returns the active appointments for one professional day.
func (s *DefaultSchedulingService) ListProfessionalDay(ctx context.Context, professionalID, date string) ([]models.Appointment, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadBookableProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	appts, err := s.Appointments.FindActiveByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return appts, nil
}

// ListClientAppointments returns a client's appointment history.
func (s *DefaultSchedulingService) ListClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListByClient(ctx, clientID)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	return appts, nil
}
