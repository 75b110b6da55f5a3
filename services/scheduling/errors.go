package scheduling

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for the availability and booking engine. Each maps to a
// user-visible message and an HTTP status in the handlers.
const (
	CodeInvalidInput              = "INVALID_INPUT"
	CodeInvalidTimeFormat         = "INVALID_TIME_FORMAT"
	CodeProfessionalNotFound      = "PROFESSIONAL_NOT_FOUND"
	CodeAvailabilityNotConfigured = "AVAILABILITY_NOT_CONFIGURED"
	CodeAppointmentNotFound       = "APPOINTMENT_NOT_FOUND"
	CodeDateInPast                = "DATE_IN_PAST"
	CodeOutsideWorkingHours       = "OUTSIDE_WORKING_HOURS"
	CodeSlotAlreadyBooked         = "SLOT_ALREADY_BOOKED"
	CodeInvalidTransition         = "INVALID_TRANSITION"
	CodeUpstreamUnavailable       = "UPSTREAM_UNAVAILABLE"
)

// Error is a typed scheduling failure carrying a stable code.
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func wrapUpstream(err error) *Error {
	return &Error{
		Code:    CodeUpstreamUnavailable,
		Message: "a required collaborator is unavailable",
		cause:   err,
	}
}

// CodeOf returns the scheduling error code, or "" for foreign errors.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// HTTPStatus maps a scheduling error to its response status.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidInput, CodeDateInPast, CodeOutsideWorkingHours, CodeInvalidTransition:
		return http.StatusBadRequest
	case CodeProfessionalNotFound, CodeAvailabilityNotConfigured, CodeAppointmentNotFound:
		return http.StatusNotFound
	case CodeSlotAlreadyBooked:
		return http.StatusConflict
	case CodeInvalidTimeFormat:
		return http.StatusUnprocessableEntity
	case CodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
