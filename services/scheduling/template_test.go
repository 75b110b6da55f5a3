package scheduling

import (
	"context"
	"testing"

	"github.com/DigitariaWebs/cheminement-sub002/models"
)

func TestValidateTemplate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.WeeklyAvailabilityTemplate)
		want   string
	}{
		{
			"zero session duration",
			func(tmpl *models.WeeklyAvailabilityTemplate) { tmpl.SessionDurationMinutes = 0 },
			CodeInvalidInput,
		},
		{
			"negative break",
			func(tmpl *models.WeeklyAvailabilityTemplate) { tmpl.BreakDurationMinutes = -5 },
			CodeInvalidInput,
		},
		{
			"missing weekday",
			func(tmpl *models.WeeklyAvailabilityTemplate) { tmpl.Days = tmpl.Days[:6] },
			CodeInvalidInput,
		},
		{
			"duplicate weekday",
			func(tmpl *models.WeeklyAvailabilityTemplate) { tmpl.Days[6] = tmpl.Days[0] },
			CodeInvalidInput,
		},
		{
			"unknown weekday",
			func(tmpl *models.WeeklyAvailabilityTemplate) { tmpl.Days[0].Day = "Funday" },
			CodeInvalidInput,
		},
		{
			"unpadded start time",
			func(tmpl *models.WeeklyAvailabilityTemplate) { tmpl.Days[1].StartTime = "9:00" },
			CodeInvalidTimeFormat,
		},
		{
			"garbage end time",
			func(tmpl *models.WeeklyAvailabilityTemplate) { tmpl.Days[1].EndTime = "late" },
			CodeInvalidTimeFormat,
		},
		{
			"start equals end",
			func(tmpl *models.WeeklyAvailabilityTemplate) {
				tmpl.Days[1].StartTime = "09:00"
				tmpl.Days[1].EndTime = "09:00"
			},
			CodeInvalidInput,
		},
		{
			"start after end",
			func(tmpl *models.WeeklyAvailabilityTemplate) {
				tmpl.Days[1].StartTime = "17:00"
				tmpl.Days[1].EndTime = "09:00"
			},
			CodeInvalidInput,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl := weekdayTemplate(60, 15)
			tc.mutate(tmpl)
			err := ValidateTemplate(tmpl)
			if CodeOf(err) != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateTemplate_IgnoresHoursOnClosedDays(t *testing.T) {
	tmpl := weekdayTemplate(60, 15)
	// Closed days may carry empty or stale bounds without failing validation.
	for i := range tmpl.Days {
		if tmpl.Days[i].Day == "Sunday" {
			tmpl.Days[i].StartTime = "bogus"
		}
	}
	if err := ValidateTemplate(tmpl); err != nil {
		t.Fatalf("closed day bounds must not be validated: %v", err)
	}
}

func TestSetWeeklyTemplate_RoundTrip(t *testing.T) {
	svc := newTestService(newFakeProfessionalRepo(activeProfessional("pro-1", nil)), newFakeAppointmentRepo())

	stored, err := svc.SetWeeklyTemplate(context.Background(), "pro-1", *weekdayTemplate(45, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.SessionDurationMinutes != 45 || stored.BreakDurationMinutes != 10 {
		t.Fatalf("durations not preserved: %+v", stored)
	}

	fetched, err := svc.GetWeeklyTemplate(context.Background(), "pro-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.SessionDurationMinutes != 45 || len(fetched.Days) != 7 {
		t.Fatalf("stored template not returned: %+v", fetched)
	}
}

func TestSetWeeklyTemplate_DefaultsSessionDuration(t *testing.T) {
	svc := newTestService(newFakeProfessionalRepo(activeProfessional("pro-1", nil)), newFakeAppointmentRepo())

	tmpl := weekdayTemplate(0, 0)
	stored, err := svc.SetWeeklyTemplate(context.Background(), "pro-1", *tmpl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.SessionDurationMinutes != DefaultSessionMinutes {
		t.Fatalf("expected default session of %d, got %d", DefaultSessionMinutes, stored.SessionDurationMinutes)
	}
	if stored.BreakDurationMinutes != 0 {
		t.Fatalf("explicit zero break must be kept, got %d", stored.BreakDurationMinutes)
	}
}

func TestSetWeeklyTemplate_UnknownProfessional(t *testing.T) {
	svc := newTestService(newFakeProfessionalRepo(), newFakeAppointmentRepo())

	_, err := svc.SetWeeklyTemplate(context.Background(), "pro-missing", *weekdayTemplate(60, 15))
	if CodeOf(err) != CodeProfessionalNotFound {
		t.Fatalf("expected %s, got %v", CodeProfessionalNotFound, err)
	}
}

func TestSetWeeklyTemplate_DoesNotTouchExistingBookings(t *testing.T) {
	appts := newFakeAppointmentRepo()
	svc := newTestService(newFakeProfessionalRepo(activeProfessional("pro-1", weekdayTemplate(60, 15))), appts)
	appt := seedAppointment(t, svc, false)

	// Shrink sessions; the booked appointment keeps the duration it was sold at.
	if _, err := svc.SetWeeklyTemplate(context.Background(), "pro-1", *weekdayTemplate(30, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, err := appts.GetByID(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Duration != 60 {
		t.Fatalf("booked duration must stay 60, got %d", stored.Duration)
	}
}

func TestGetWeeklyTemplate_NotConfigured(t *testing.T) {
	svc := newTestService(newFakeProfessionalRepo(activeProfessional("pro-1", nil)), newFakeAppointmentRepo())

	_, err := svc.GetWeeklyTemplate(context.Background(), "pro-1")
	if CodeOf(err) != CodeAvailabilityNotConfigured {
		t.Fatalf("expected %s, got %v", CodeAvailabilityNotConfigured, err)
	}
}
