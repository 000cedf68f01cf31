package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type BarberStats struct {
	TotalAppointments int64   `json:"total_appointments"`
	Completed         int64   `json:"completed"`
	AverageIncome     float64 `json:"average_income"`
}

type Repository interface {
	// -------- Lookups --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.Barber, error)

	GetBarberByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	GetClient(
		ctx context.Context,
		clientID uint,
	) (*models.User, error)

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListActiveAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CreateAppointmentNoOverlap inserts ap inside a transaction that first
	// rejects any active appointment overlapping it.
	CreateAppointmentNoOverlap(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForBarberDay(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	GetBarberStats(
		ctx context.Context,
		barberID uint,
	) (*BarberStats, error)
}

type WorkingHoursRepository interface {
	ListWorkingHours(
		ctx context.Context,
		barberID uint,
	) ([]models.WorkingHours, error)

	UpsertWorkingHours(
		ctx context.Context,
		wh *models.WorkingHours,
	) error

	DeactivateWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) error
}
