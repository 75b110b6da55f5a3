package scheduling

import (
	"fmt"
	"time"

	"github.com/DigitariaWebs/cheminement-sub002/models"
	"github.com/DigitariaWebs/cheminement-sub002/utils"
)

// parseClock converts a zero-padded 24h "HH:MM" string to minutes since
// midnight. Anything else is a template/configuration defect.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, newError(CodeInvalidTimeFormat, fmt.Sprintf("invalid time %q, expected HH:MM", s))
	}
	t, err := time.Parse(utils.TimeLayout, s)
	if err != nil {
		return 0, newError(CodeInvalidTimeFormat, fmt.Sprintf("invalid time %q, expected HH:MM", s))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock renders minutes since midnight as zero-padded "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// normalizeDate parses a calendar date and re-renders it, discarding any
// time-of-day component so stored dates always compare equal per day.
func normalizeDate(s string) (string, error) {
	t, err := time.Parse(utils.DateLayout, s)
	if err != nil {
		return "", newError(CodeInvalidInput, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return t.Format(utils.DateLayout), nil
}

// weekdayName returns the fixed English weekday for a calendar date. The
// lookup goes through time.Weekday, never through a display locale.
func weekdayName(date string) (string, error) {
	t, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return "", newError(CodeInvalidInput, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}
	return models.Weekdays[int(t.Weekday())], nil
}
