package scheduling

import (
	"context"
	"sync"

	appointmentRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/appointment"
	professionalRepo "github.com/DigitariaWebs/cheminement-sub002/database/repository/professional"
	"github.com/DigitariaWebs/cheminement-sub002/models"
)

// fakeProfessionalRepo is an in-memory stand-in for the Mongo profile store.
type fakeProfessionalRepo struct {
	mu            sync.Mutex
	professionals map[string]models.Professional
}

func newFakeProfessionalRepo(professionals ...models.Professional) *fakeProfessionalRepo {
	repo := &fakeProfessionalRepo{professionals: make(map[string]models.Professional)}
	for _, p := range professionals {
		repo.professionals[p.ID] = p
	}
	return repo
}

func (r *fakeProfessionalRepo) Create(ctx context.Context, p *models.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.professionals[p.ID] = *p
	return nil
}

func (r *fakeProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.professionals[id]
	if !ok {
		return nil, professionalRepo.ErrNotFound
	}
	copied := p
	return &copied, nil
}

func (r *fakeProfessionalRepo) UpdateAvailability(ctx context.Context, id string, tmpl *models.WeeklyAvailabilityTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.professionals[id]
	if !ok {
		return professionalRepo.ErrNotFound
	}
	p.Availability = tmpl
	r.professionals[id] = p
	return nil
}

func (r *fakeProfessionalRepo) EnsureIndexes() error { return nil }

// fakeAppointmentRepo mimics the Mongo repo, including the partial unique
// slot constraint: the duplicate check and the insert happen under one lock,
// the in-memory analogue of the index rejecting the losing write.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (r *fakeAppointmentRepo) InsertIfAbsent(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.appts {
		if existing.SlotHeld &&
			existing.ProfessionalID == appt.ProfessionalID &&
			existing.Date == appt.Date &&
			existing.Time == appt.Time {
			return appointmentRepo.ErrDuplicateSlot
		}
	}
	appt.SlotHeld = models.OccupiesSlot(appt.Status)
	r.appts[appt.ID] = *appt
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	copied := appt
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindActiveByProfessionalAndDate(ctx context.Context, professionalID, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Appointment
	for _, appt := range r.appts {
		if appt.SlotHeld && appt.ProfessionalID == professionalID && appt.Date == date {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	appt.Status = status
	appt.SlotHeld = models.OccupiesSlot(status)
	r.appts[id] = appt
	copied := appt
	return &copied, nil
}

func (r *fakeAppointmentRepo) ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Appointment
	for _, appt := range r.appts {
		if appt.ClientID == clientID {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) EnsureIndexes() error { return nil }

func (r *fakeAppointmentRepo) activeCount(professionalID, date, slotTime string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, appt := range r.appts {
		if appt.SlotHeld && appt.ProfessionalID == professionalID && appt.Date == date && appt.Time == slotTime {
			count++
		}
	}
	return count
}

// fakeReminderQueue records enqueued reminders and can be told to fail.
type fakeReminderQueue struct {
	mu       sync.Mutex
	enqueued []string
	fail     error
}

func (q *fakeReminderQueue) EnqueueAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.fail != nil {
		return q.fail
	}
	q.enqueued = append(q.enqueued, appt.ID)
	return nil
}

// weekdayTemplate builds a template working Monday through Friday 09:00-17:00.
func weekdayTemplate(sessionMinutes, breakMinutes int) *models.WeeklyAvailabilityTemplate {
	tmpl := &models.WeeklyAvailabilityTemplate{
		SessionDurationMinutes: sessionMinutes,
		BreakDurationMinutes:   breakMinutes,
	}
	for _, day := range models.Weekdays {
		entry := models.DayAvailability{Day: day}
		if day != "Saturday" && day != "Sunday" {
			entry.IsWorkDay = true
			entry.StartTime = "09:00"
			entry.EndTime = "17:00"
		}
		tmpl.Days = append(tmpl.Days, entry)
	}
	return tmpl
}

func activeProfessional(id string, tmpl *models.WeeklyAvailabilityTemplate) models.Professional {
	return models.Professional{
		ID:           id,
		FirstName:    "Marie",
		LastName:     "Tremblay",
		Email:        id + "@example.com",
		Status:       models.ProfessionalActive,
		Availability: tmpl,
	}
}

func newTestService(profRepo *fakeProfessionalRepo, apptRepo *fakeAppointmentRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Professionals: profRepo,
		Appointments:  apptRepo,
	}
}
