package notification

import (
	"context"

	"github.com/DigitariaWebs/cheminement-sub002/models"
)

// NotificationService dispatches appointment messages to clients and
// professionals. Delivery transports (email, push) are external collaborators;
// callers treat every send as fire-and-forget.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}
