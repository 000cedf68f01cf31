package appointment

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barberia-reservas/internal/audit"
	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type fakeRepo struct {
	barbers  map[uint]*models.Barber
	services map[uint]*models.Service
	clients  map[uint]*models.User
	hours    map[[2]uint]*models.WorkingHours
	apps     []*models.Appointment
	nextID   uint

	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers: map[uint]*models.Barber{
			1: {ID: 1, UserID: 100, BarbershopID: 10, Active: true},
			2: {ID: 2, UserID: 200, BarbershopID: 20, Active: true},
		},
		services: map[uint]*models.Service{
			5: {ID: 5, BarbershopID: 10, Name: "Corte", Price: 25000, DurationMinutes: 30, Active: true},
			6: {ID: 6, BarbershopID: 10, Name: "Combo", Price: 40000, DurationMinutes: 60, Active: true},
		},
		clients: map[uint]*models.User{
			50: {ID: 50, FirstName: "Ana", Role: "client", Active: true},
		},
		hours:  map[[2]uint]*models.WorkingHours{},
		nextID: 1,
	}
}

func (f *fakeRepo) setHours(barberID uint, weekday int, start, end string, active bool) {
	f.hours[[2]uint{barberID, uint(weekday)}] = &models.WorkingHours{
		BarberID: barberID, Weekday: weekday, StartTime: start, EndTime: end, Active: active,
	}
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetBarberByUserID(_ context.Context, userID uint) (*models.Barber, error) {
	for _, b := range f.barbers {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetClient(_ context.Context, id uint) (*models.User, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, barberID uint, weekday int) (*models.WorkingHours, error) {
	if wh, ok := f.hours[[2]uint{barberID, uint(weekday)}]; ok {
		return wh, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) ListActiveAppointmentsForDay(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if ap.BarberID == barberID && ap.Date.Equal(date) && domain.Status(ap.StatusID).IsActive() {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.apps = append(f.apps, &cp)
	return nil
}

func (f *fakeRepo) CreateAppointmentNoOverlap(ctx context.Context, ap *models.Appointment) error {
	wanted, err := domain.ParseInterval(ap.StartTime, ap.EndTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	existing, _ := f.ListActiveAppointmentsForDay(ctx, ap.BarberID, ap.Date)
	for _, other := range existing {
		iv, _ := domain.ParseInterval(other.StartTime, other.EndTime)
		if iv.Overlaps(wanted) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return f.CreateAppointment(ctx, ap)
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	for _, ap := range f.apps {
		if ap.ID == appointmentID && ap.BarberID == barberID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment) error {
	for _, stored := range f.apps {
		if stored.ID == ap.ID {
			stored.StatusID = ap.StatusID
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForBarberDay(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if ap.BarberID == barberID && ap.Date.Equal(date) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeRepo) GetBarberStats(_ context.Context, barberID uint) (*domain.BarberStats, error) {
	var stats domain.BarberStats
	var sum float64
	for _, ap := range f.apps {
		if ap.BarberID != barberID {
			continue
		}
		stats.TotalAppointments++
		if domain.Status(ap.StatusID) == domain.StatusCompleted {
			stats.Completed++
			sum += ap.PriceFinal
		}
	}
	if stats.Completed > 0 {
		stats.AverageIncome = sum / float64(stats.Completed)
	}
	return &stats, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// 2026-10-19 is a Monday, stored weekday 2.
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
