package scheduling

import (
	"context"
	"errors"

	appointmentRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/appointment"
	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/utils"

	"go.uber.org/zap"
)

// transitions maps each status to the statuses it may move to. Completed,
// cancelled and no-show are terminal; appointments are never hard-deleted.
var transitions = map[string][]string{
	models.StatusPending:   {models.StatusScheduled, models.StatusCancelled},
	models.StatusScheduled: {models.StatusCompleted, models.StatusCancelled, models.StatusNoShow},
}

func canTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ConfirmAppointment promotes a pending intake booking to a scheduled
// appointment. The pending record already holds its slot, so confirmation
// can never collide with another booking.
func (s *DefaultSchedulingService) ConfirmAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.TransitionAppointment(ctx, id, models.StatusScheduled)
}

// TransitionAppointment applies one lifecycle transition. A transition to
// cancelled drops the slot hold, which immediately frees the slot for a new
// booking of the same (professional, date, time).
func (s *DefaultSchedulingService) TransitionAppointment(ctx context.Context, id, target string) (*models.Appointment, error) {
	if !models.ValidStatus(target) {
		return nil, newError(CodeInvalidInput, "unknown appointment status "+target)
	}

	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, newError(CodeAppointmentNotFound, "appointment not found")
		}
		return nil, wrapUpstream(err)
	}
	if !canTransition(appt.Status, target) {
		return nil, newError(CodeInvalidTransition, "cannot move appointment from "+appt.Status+" to "+target)
	}

	updated, err := s.Appointments.UpdateStatus(ctx, id, target)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, newError(CodeAppointmentNotFound, "appointment not found")
		}
		return nil, wrapUpstream(err)
	}

	s.invalidateAvailability(ctx, updated.ProfessionalID, updated.Date)

	utils.GetLogger().Info("appointment transitioned",
		zap.String("appointmentID", id),
		zap.String("from", appt.Status),
		zap.String("to", target))
	return updated, nil
}
