package scheduling

import (
	"context"
	"errors"
	"time"

	appointmentRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/appointment"
	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FilterSlots applies the read-path conflict rules to a candidate list:
// slots matching a booked appointment's time are dropped, past dates yield an
// empty list, and on the current day only slots strictly after "now" survive.
// Output order matches the generator's ascending order. Zero-padded HH:MM
// strings compare correctly lexicographically, so no time objects are needed.
func FilterSlots(candidates []models.CandidateSlot, booked []models.Appointment, date string, now time.Time) []models.CandidateSlot {
	today := now.Format(utils.DateLayout)
	filtered := make([]models.CandidateSlot, 0, len(candidates))

	if date < today {
		return filtered
	}

	taken := make(map[string]bool, len(booked))
	for _, appt := range booked {
		taken[appt.Time] = true
	}

	cutoff := ""
	if date == today {
		cutoff = now.Format(utils.TimeLayout)
	}

	for _, slot := range candidates {
		if taken[slot.Time] {
			continue
		}
		if cutoff != "" && slot.Time <= cutoff {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

// BookAppointment is the commit path. It re-runs every validation the read
// path performed, because the slot list shown to the client may be stale by
// the time the request arrives, and then lets the storage layer's uniqueness
// constraint decide the race. A duplicate-slot insert is the authoritative
// SlotAlreadyBooked signal, never just the pre-check.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, req BookingRequest, now time.Time) (*models.Appointment, error) {
	logger := utils.GetLogger()

	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := parseClock(req.Time); err != nil {
		return nil, err
	}
	if !models.ValidType(req.Type) {
		return nil, newError(CodeInvalidInput, "unknown appointment type "+req.Type)
	}

	clientID := req.ClientID
	var guest *models.GuestInfo
	if clientID == "" {
		if req.Guest == nil || req.Guest.Email == "" {
			return nil, newError(CodeInvalidInput, "either clientId or guest contact details are required")
		}
		guest = req.Guest
		clientID = "guest-" + uuid.New().String()
	}

	professional, err := s.loadBookableProfessional(ctx, req.ProfessionalID)
	if err != nil {
		return nil, err
	}
	tmpl := professional.Availability
	if tmpl == nil || len(tmpl.Days) == 0 {
		return nil, newError(CodeAvailabilityNotConfigured, "professional has not configured availability")
	}

	if err := s.validateSlotTiming(tmpl, date, req.Time, now); err != nil {
		return nil, err
	}

	// Advisory pre-check; gives a friendly conflict before attempting the write.
	booked, err := s.Appointments.FindActiveByProfessionalAndDate(ctx, req.ProfessionalID, date)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	for _, existing := range booked {
		if existing.Time == req.Time {
			return nil, newError(CodeSlotAlreadyBooked, "this slot has already been booked")
		}
	}

	status := models.StatusScheduled
	if req.Pending {
		status = models.StatusPending
	}
	appt := &models.Appointment{
		ID:             uuid.New().String(),
		ProfessionalID: req.ProfessionalID,
		ClientID:       clientID,
		Guest:          guest,
		Date:           date,
		Time:           req.Time,
		Duration:       tmpl.SessionDurationMinutes,
		Status:         status,
		Type:           req.Type,
		Notes:          req.Notes,
		SlotHeld:       true,
		CreatedAt:      now.UTC(),
		UpdatedAt:      now.UTC(),
	}

	if err := s.Appointments.InsertIfAbsent(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			// Lost the race; expected under concurrent booking, not a defect.
			return nil, newError(CodeSlotAlreadyBooked, "this slot has already been booked")
		}
		return nil, wrapUpstream(err)
	}

	s.invalidateAvailability(ctx, req.ProfessionalID, date)

	if s.Reminders != nil {
		if err := s.Reminders.EnqueueAppointmentReminder(ctx, appt); err != nil {
			logger.Warn("failed to enqueue appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("professionalID", appt.ProfessionalID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	return appt, nil
}

// validateSlotTiming enforces the temporal business rules: no past dates or
// times, the weekday must be a working day, and the requested time must fall
// inside [startTime, endTime) of that day's window.
func (s *DefaultSchedulingService) validateSlotTiming(tmpl *models.WeeklyAvailabilityTemplate, date, slotTime string, now time.Time) error {
	today := now.Format(utils.DateLayout)
	if date < today {
		return newError(CodeDateInPast, "cannot book an appointment in the past")
	}
	if date == today && slotTime <= now.Format(utils.TimeLayout) {
		return newError(CodeDateInPast, "cannot book a time that has already passed")
	}

	dayOfWeek, err := weekdayName(date)
	if err != nil {
		return err
	}
	day := tmpl.DayFor(dayOfWeek)
	if day == nil || !day.IsWorkDay {
		return newError(CodeOutsideWorkingHours, "professional does not work on "+dayOfWeek)
	}
	if slotTime < day.StartTime || slotTime >= day.EndTime {
		return newError(CodeOutsideWorkingHours, "requested time is outside working hours")
	}
	return nil
}
