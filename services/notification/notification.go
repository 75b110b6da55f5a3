package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/utils"

	"go.uber.org/zap"
)

// DefaultNotificationService hands messages to the external delivery gateway.
// The gateway address comes from configuration; when unset, dispatches are
// logged only, which keeps local development and tests quiet.
type DefaultNotificationService struct {
	GatewayURL string
	HTTPClient *http.Client
}

type message struct {
	Kind           string `json:"kind"`
	Recipient      string `json:"recipient"`
	AppointmentID  string `json:"appointmentId"`
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

func (n *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error {
	recipient := appt.ClientID
	if appt.Guest != nil {
		recipient = appt.Guest.Email
	}
	return n.dispatch(ctx, message{
		Kind:           "booking_confirmation",
		Recipient:      recipient,
		AppointmentID:  appt.ID,
		ProfessionalID: appt.ProfessionalID,
		Date:           appt.Date,
		Time:           appt.Time,
	})
}

func (n *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	return n.dispatch(ctx, message{
		Kind:           "appointment_reminder",
		Recipient:      payload.ClientID,
		AppointmentID:  payload.AppointmentID,
		ProfessionalID: payload.ProfessionalID,
		Date:           payload.Date,
		Time:           payload.Time,
	})
}

func (n *DefaultNotificationService) dispatch(ctx context.Context, msg message) error {
	logger := utils.GetLogger()
	if n.GatewayURL == "" {
		logger.Info("notification gateway not configured, logging dispatch only",
			zap.String("kind", msg.Kind),
			zap.String("appointmentID", msg.AppointmentID),
			zap.String("recipient", msg.Recipient))
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.GatewayURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := n.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification gateway returned status %d", resp.StatusCode)
	}

	logger.Info("notification dispatched",
		zap.String("kind", msg.Kind),
		zap.String("appointmentID", msg.AppointmentID))
	return nil
}
