package models

// ReminderPayload is the task payload carried through the reminder queue.
type ReminderPayload struct {
	AppointmentID  string `json:"appointmentId"`
	ProfessionalID string `json:"professionalId"`
	ClientID       string `json:"clientId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Type           string `json:"type"`
}
