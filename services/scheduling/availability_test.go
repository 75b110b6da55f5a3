package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/DigitariaWebs/cheminement-sub002/models"
)

func TestGetAvailableSlots_FullOpenDay(t *testing.T) {
	profs := newFakeProfessionalRepo(activeProfessional("pro-1", weekdayTemplate(60, 15)))
	svc := newTestService(profs, newFakeAppointmentRepo())

	result, err := svc.GetAvailableSlots(context.Background(), "pro-1", monday, priorWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Available {
		t.Fatalf("expected an open day")
	}
	if result.DayOfWeek != "Monday" {
		t.Fatalf("expected Monday, got %s", result.DayOfWeek)
	}
	if result.WorkingHours == nil || result.WorkingHours.Start != "09:00" || result.WorkingHours.End != "17:00" {
		t.Fatalf("working hours not echoed: %+v", result.WorkingHours)
	}
	if len(result.Slots) != 7 {
		t.Fatalf("expected 7 slots for 09:00-17:00 at 60+15, got %d", len(result.Slots))
	}
	if result.Slots[0].Time != "09:00" || result.Slots[6].Time != "16:30" {
		t.Fatalf("unexpected slot bounds: %v", slotTimes(result.Slots))
	}
	for _, slot := range result.Slots {
		if slot.DurationMinutes != 60 || !slot.Available {
			t.Fatalf("slot metadata wrong: %+v", slot)
		}
	}
}

func TestGetAvailableSlots_ClosedDayIsNotAnError(t *testing.T) {
	profs := newFakeProfessionalRepo(activeProfessional("pro-1", weekdayTemplate(60, 15)))
	svc := newTestService(profs, newFakeAppointmentRepo())

	sunday := "2030-05-05"
	result, err := svc.GetAvailableSlots(context.Background(), "pro-1", sunday, priorWeek)
	if err != nil {
		t.Fatalf("closed day must not be an error: %v", err)
	}
	if result.Available {
		t.Fatalf("expected a closed day")
	}
	if len(result.Slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %v", slotTimes(result.Slots))
	}
	if result.Reason == "" {
		t.Fatalf("expected an explanatory reason for the closed day")
	}
}

func TestGetAvailableSlots_UnknownProfessional(t *testing.T) {
	svc := newTestService(newFakeProfessionalRepo(), newFakeAppointmentRepo())

	_, err := svc.GetAvailableSlots(context.Background(), "pro-missing", monday, priorWeek)
	if CodeOf(err) != CodeProfessionalNotFound {
		t.Fatalf("expected %s, got %v", CodeProfessionalNotFound, err)
	}
}

func TestGetAvailableSlots_SuspendedProfessional(t *testing.T) {
	suspended := activeProfessional("pro-1", weekdayTemplate(60, 15))
	suspended.Status = models.ProfessionalSuspended
	svc := newTestService(newFakeProfessionalRepo(suspended), newFakeAppointmentRepo())

	_, err := svc.GetAvailableSlots(context.Background(), "pro-1", monday, priorWeek)
	if CodeOf(err) != CodeProfessionalNotFound {
		t.Fatalf("expected %s for a suspended professional, got %v", CodeProfessionalNotFound, err)
	}
}

func TestGetAvailableSlots_TemplateNotConfigured(t *testing.T) {
	svc := newTestService(newFakeProfessionalRepo(activeProfessional("pro-1", nil)), newFakeAppointmentRepo())

	_, err := svc.GetAvailableSlots(context.Background(), "pro-1", monday, priorWeek)
	if CodeOf(err) != CodeAvailabilityNotConfigured {
		t.Fatalf("expected %s, got %v", CodeAvailabilityNotConfigured, err)
	}
}

func TestGetAvailableSlots_BookedSlotsRemoved(t *testing.T) {
	profs := newFakeProfessionalRepo(activeProfessional("pro-1", weekdayTemplate(60, 15)))
	appts := newFakeAppointmentRepo()
	svc := newTestService(profs, appts)

	if _, err := svc.BookAppointment(context.Background(), bookingReq("pro-1", "client-1", monday, "10:15"), priorWeek); err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	result, err := svc.GetAvailableSlots(context.Background(), "pro-1", monday, priorWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Slots) != 6 {
		t.Fatalf("expected 6 slots after one booking, got %d", len(result.Slots))
	}
	for _, slot := range result.Slots {
		if slot.Time == "10:15" {
			t.Fatalf("booked slot still present: %v", slotTimes(result.Slots))
		}
	}
}

func TestGetAvailableSlots_YesterdayIsEmpty(t *testing.T) {
	profs := newFakeProfessionalRepo(activeProfessional("pro-1", weekdayTemplate(60, 15)))
	svc := newTestService(profs, newFakeAppointmentRepo())

	tuesdayAfter := time.Date(2030, 5, 7, 9, 0, 0, 0, time.UTC)
	result, err := svc.GetAvailableSlots(context.Background(), "pro-1", monday, tuesdayAfter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Slots) != 0 {
		t.Fatalf("expected no slots for yesterday, got %v", slotTimes(result.Slots))
	}
}

func TestGetAvailableSlots_TodayDropsElapsedSlots(t *testing.T) {
	profs := newFakeProfessionalRepo(activeProfessional("pro-1", weekdayTemplate(60, 15)))
	svc := newTestService(profs, newFakeAppointmentRepo())

	result, err := svc.GetAvailableSlots(context.Background(), "pro-1", monday, mondayNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Generator yields 09:00..16:30; at 10:30 only strictly later starts remain.
	want := []string{"11:30", "12:45", "14:00", "15:15", "16:30"}
	got := slotTimes(result.Slots)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestGetAvailableSlots_ShortWindowYieldsEmptyOpenDay(t *testing.T) {
	tmpl := weekdayTemplate(60, 15)
	for i := range tmpl.Days {
		if tmpl.Days[i].Day == "Monday" {
			tmpl.Days[i].EndTime = "09:30"
		}
	}
	svc := newTestService(newFakeProfessionalRepo(activeProfessional("pro-1", tmpl)), newFakeAppointmentRepo())

	result, err := svc.GetAvailableSlots(context.Background(), "pro-1", monday, priorWeek)
	if err != nil {
		t.Fatalf("a too-short window is valid, not an error: %v", err)
	}
	if !result.Available {
		t.Fatalf("day is open even when no session fits")
	}
	if len(result.Slots) != 0 {
		t.Fatalf("expected zero slots, got %v", slotTimes(result.Slots))
	}
}

func TestWeekdayName_FixedTable(t *testing.T) {
	cases := map[string]string{
		"2030-05-05": "Sunday",
		"2030-05-06": "Monday",
		"2030-05-07": "Tuesday",
		"2030-05-08": "Wednesday",
		"2030-05-09": "Thursday",
		"2030-05-10": "Friday",
		"2030-05-11": "Saturday",
	}
	for date, want := range cases {
		got, err := weekdayName(date)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", date, err)
		}
		if got != want {
			t.Fatalf("weekday of %s: expected %s, got %s", date, want, got)
		}
	}
}
