package models

// Weekday names used by availability templates. Fixed English names, never
// derived from a display locale.
var Weekdays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DayAvailability configures one weekday of a professional's recurring schedule.
type DayAvailability struct {
	Day       string `bson:"day" json:"day"`
	IsWorkDay bool   `bson:"isWorkDay" json:"isWorkDay"`
	StartTime string `bson:"startTime,omitempty" json:"startTime,omitempty"` // "HH:MM", 24h
	EndTime   string `bson:"endTime,omitempty" json:"endTime,omitempty"`     // "HH:MM", 24h
}

// WeeklyAvailabilityTemplate is a professional's recurring weekly schedule
// plus the session/break spacing used to cut it into bookable slots.
type WeeklyAvailabilityTemplate struct {
	SessionDurationMinutes int               `bson:"sessionDurationMinutes" json:"sessionDurationMinutes"`
	BreakDurationMinutes   int               `bson:"breakDurationMinutes" json:"breakDurationMinutes"`
	Days                   []DayAvailability `bson:"days" json:"days"`
}

// DayFor returns the entry for the named weekday, or nil if the template has none.
func (t *WeeklyAvailabilityTemplate) DayFor(weekday string) *DayAvailability {
	for i := range t.Days {
		if t.Days[i].Day == weekday {
			return &t.Days[i]
		}
	}
	return nil
}

// CandidateSlot is a bookable start time computed from a template. Never persisted;
// absence from a slot list means "unavailable".
type CandidateSlot struct {
	Time            string `json:"time"` // "HH:MM"
	DurationMinutes int    `json:"duration"`
	Available       bool   `json:"available"`
}

// WorkingHours is the day window echoed back on availability responses.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityResult is the read-path response for one professional + date.
type AvailabilityResult struct {
	ProfessionalID string          `json:"professionalId"`
	Date           string          `json:"date"`
	DayOfWeek      string          `json:"dayOfWeek"`
	Available      bool            `json:"available"`
	Reason         string          `json:"reason,omitempty"`
	WorkingHours   *WorkingHours   `json:"workingHours,omitempty"`
	Slots          []CandidateSlot `json:"slots"`
}
