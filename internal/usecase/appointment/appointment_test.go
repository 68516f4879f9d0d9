package appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	domain "github.com/cisnebranco/grooming-os/internal/domain/appointment"
	availdomain "github.com/cisnebranco/grooming-os/internal/domain/availability"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/usecase/availability"
	"github.com/cisnebranco/grooming-os/internal/usecase/order"
)

type fakeApptRepo struct {
	clients      map[uint]*models.Client
	pets         map[uint]*models.Pet
	groomers     map[uint]*models.Groomer
	serviceTypes map[uint]*models.ServiceType
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{
		clients:      map[uint]*models.Client{},
		pets:         map[uint]*models.Pet{},
		groomers:     map[uint]*models.Groomer{},
		serviceTypes: map[uint]*models.ServiceType{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeApptRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.NotFoundErr("Client", id)
	}
	return c, nil
}

func (f *fakeApptRepo) GetPet(_ context.Context, id uint) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, httperr.NotFoundErr("Pet", id)
	}
	return p, nil
}

func (f *fakeApptRepo) GetGroomer(_ context.Context, id uint) (*models.Groomer, error) {
	g, ok := f.groomers[id]
	if !ok {
		return nil, httperr.NotFoundErr("Groomer", id)
	}
	return g, nil
}

func (f *fakeApptRepo) GetServiceType(_ context.Context, id uint) (*models.ServiceType, error) {
	st, ok := f.serviceTypes[id]
	if !ok {
		return nil, httperr.NotFoundErr("Service type", id)
	}
	return st, nil
}

func (f *fakeApptRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	for _, existing := range f.appointments {
		if existing.GroomerID == ap.GroomerID &&
			domain.Blocking(domain.Status(existing.Status)) &&
			ap.ScheduledStart.Before(existing.ScheduledEnd) &&
			ap.ScheduledEnd.After(existing.ScheduledStart) {
			return httperr.SchedulingConflict("Groomer #%d is already booked in this time range", ap.GroomerID)
		}
	}
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeApptRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.NotFoundErr("Appointment", id)
	}
	return ap, nil
}

func (f *fakeApptRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return httperr.NotFoundErr("Appointment", ap.ID)
	}
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeApptRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ScheduledStart.Before(end) && ap.ScheduledEnd.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListByClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeApptRepo)(nil)

// fakeAvailRepo feeds the availability engine: one Monday 08:00-18:00
// window for groomer #1 and no bookings.
type fakeAvailRepo struct {
	windows []models.AvailabilityWindow
}

func (f *fakeAvailRepo) GetGroomer(_ context.Context, id uint) (*models.Groomer, error) {
	return &models.Groomer{ID: id, Active: true}, nil
}

func (f *fakeAvailRepo) ListActiveWindows(_ context.Context, groomerID uint, dayOfWeek int) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.GroomerID == groomerID && w.DayOfWeek == dayOfWeek && w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeAvailRepo) ListWindows(_ context.Context, groomerID uint) ([]models.AvailabilityWindow, error) {
	return f.windows, nil
}

func (f *fakeAvailRepo) GetWindow(_ context.Context, id uint) (*models.AvailabilityWindow, error) {
	return nil, httperr.NotFoundErr("Availability window", id)
}

func (f *fakeAvailRepo) CreateWindow(_ context.Context, w *models.AvailabilityWindow) error {
	return nil
}
func (f *fakeAvailRepo) SaveWindow(_ context.Context, w *models.AvailabilityWindow) error { return nil }

func (f *fakeAvailRepo) ListBookedAppointments(_ context.Context, groomerID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	return nil, nil
}

var _ availdomain.Repository = (*fakeAvailRepo)(nil)

func seedBooking(repo *fakeApptRepo) {
	repo.clients[1] = &models.Client{ID: 1, Name: "Maria", Phone: "11999990000"}
	repo.pets[1] = &models.Pet{ID: 1, ClientID: 1, Name: "Thor", Active: true}
	repo.pets[2] = &models.Pet{ID: 2, ClientID: 2, Name: "Luna", Active: true}
	repo.groomers[1] = &models.Groomer{ID: 1, Name: "Paula", Active: true}
	repo.serviceTypes[1] = &models.ServiceType{ID: 1, Name: "BANHO", DurationMin: 60}
}

func testEngine() *availability.Engine {
	return availability.NewEngine(&fakeAvailRepo{
		windows: []models.AvailabilityWindow{
			{ID: 1, GroomerID: 1, DayOfWeek: 1, StartTime: "08:00", EndTime: "18:00", Active: true},
		},
	})
}

// 2026-03-09 is a Monday.
func monday(h, m int) time.Time {
	return time.Date(2026, 3, 9, h, m, 0, 0, time.UTC)
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeApptRepo()
	seedBooking(repo)
	uc := NewCreateAppointment(repo, testEngine(), nil)

	ap, err := uc.Execute(context.Background(), CreateInput{
		ClientID: 1, PetID: 1, GroomerID: 1, ServiceTypeID: 1,
		Start: monday(10, 0), Notes: "primeira visita",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Errorf("status = %s, want SCHEDULED", ap.Status)
	}
	if !ap.ScheduledEnd.Equal(monday(11, 0)) {
		t.Errorf("end = %v, want start plus the service duration", ap.ScheduledEnd)
	}
}

func TestCreateAppointmentPetOwnership(t *testing.T) {
	repo := newFakeApptRepo()
	seedBooking(repo)
	uc := NewCreateAppointment(repo, testEngine(), nil)

	_, err := uc.Execute(context.Background(), CreateInput{
		ClientID: 1, PetID: 2, GroomerID: 1, ServiceTypeID: 1, Start: monday(10, 0),
	})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error, got %v", err)
	}
	if !strings.Contains(err.Error(), "does not belong") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCreateAppointmentOutsideWindow(t *testing.T) {
	repo := newFakeApptRepo()
	seedBooking(repo)
	uc := NewCreateAppointment(repo, testEngine(), nil)

	// 17:30 + 60min spills past the 18:00 close.
	_, err := uc.Execute(context.Background(), CreateInput{
		ClientID: 1, PetID: 1, GroomerID: 1, ServiceTypeID: 1, Start: monday(17, 30),
	})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error, got %v", err)
	}
}

func TestCreateAppointmentDoubleBooking(t *testing.T) {
	repo := newFakeApptRepo()
	seedBooking(repo)
	uc := NewCreateAppointment(repo, testEngine(), nil)

	if _, err := uc.Execute(context.Background(), CreateInput{
		ClientID: 1, PetID: 1, GroomerID: 1, ServiceTypeID: 1, Start: monday(10, 0),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateInput{
		ClientID: 1, PetID: 1, GroomerID: 1, ServiceTypeID: 1, Start: monday(10, 30),
	})
	if !httperr.IsKind(err, httperr.KindSchedulingConflict) {
		t.Errorf("expected scheduling conflict, got %v", err)
	}
}

func TestUpdateAppointmentReschedule(t *testing.T) {
	repo := newFakeApptRepo()
	seedBooking(repo)
	create := NewCreateAppointment(repo, testEngine(), nil)
	update := NewUpdateAppointment(repo, testEngine(), nil)

	ap, err := create.Execute(context.Background(), CreateInput{
		ClientID: 1, PetID: 1, GroomerID: 1, ServiceTypeID: 1, Start: monday(10, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newStart := monday(14, 0)
	updated, err := update.Execute(context.Background(), ap.ID, UpdateInput{NewStart: &newStart})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if !updated.ScheduledStart.Equal(newStart) || !updated.ScheduledEnd.Equal(monday(15, 0)) {
		t.Errorf("rescheduled to %v-%v", updated.ScheduledStart, updated.ScheduledEnd)
	}
}

func TestUpdateAppointmentCancellation(t *testing.T) {
	repo := newFakeApptRepo()
	seedBooking(repo)
	create := NewCreateAppointment(repo, testEngine(), nil)
	update := NewUpdateAppointment(repo, testEngine(), nil)

	ap, err := create.Execute(context.Background(), CreateInput{
		ClientID: 1, PetID: 1, GroomerID: 1, ServiceTypeID: 1, Start: monday(10, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled := domain.StatusCancelled
	updated, err := update.Execute(context.Background(), ap.ID, UpdateInput{
		Status: &cancelled, CancellationReason: "cliente desmarcou",
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if updated.CancelledAt == nil || updated.CancellationReason != "cliente desmarcou" {
		t.Errorf("cancellation metadata missing: %+v", updated)
	}

	// Terminal: nothing moves out of CANCELLED.
	confirmed := domain.StatusConfirmed
	if _, err := update.Execute(context.Background(), ap.ID, UpdateInput{Status: &confirmed}); !httperr.IsBusiness(err) {
		t.Errorf("expected business error, got %v", err)
	}
}

func TestConvertRejectsSecondConversion(t *testing.T) {
	repo := newFakeApptRepo()
	seedBooking(repo)
	orderID := uint(10)
	repo.appointments[1] = &models.Appointment{
		ID: 1, ClientID: 1, PetID: 1, GroomerID: 1, ServiceTypeID: 1,
		Status:         string(domain.StatusConfirmed),
		ServiceOrderID: &orderID,
	}
	uc := NewConvertToOrder(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, order.CheckInInput{})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error, got %v", err)
	}
	if !strings.Contains(err.Error(), "already converted") {
		t.Errorf("message = %q", err.Error())
	}
}
