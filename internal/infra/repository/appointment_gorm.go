package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

const dateLayout = "2006-01-02"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func activeStatusIDs() []uint {
	ids := make([]uint, 0, 2)
	for _, st := range domain.ActiveStatuses() {
		ids = append(ids, uint(st))
	}
	return ids
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, barberID).Error; err != nil {
		return nil, notFound(err)
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetBarberByUserID(
	ctx context.Context,
	userID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&barber).Error; err != nil {
		return nil, notFound(err)
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	clientID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, clientID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error; err != nil {
		return nil, notFound(err)
	}
	return &wh, nil
}

func (r *AppointmentGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	return listActiveForDay(r.db.WithContext(ctx), barberID, date)
}

func listActiveForDay(db *gorm.DB, barberID uint, date time.Time) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := db.
		Select("id", "start_time", "end_time", "status_id").
		Where(
			"barber_id = ? AND date = ? AND status_id IN ?",
			barberID, date.Format(dateLayout), activeStatusIDs(),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Client", "Barber", "Service", "Status").Create(ap).Error
}

func (r *AppointmentGormRepository) CreateAppointmentNoOverlap(
	ctx context.Context,
	ap *models.Appointment,
) error {

	wanted, err := domain.ParseInterval(ap.StartTime, ap.EndTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// serialises bookings of one barber until commit
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(ap.BarberID)).Error; err != nil {
			return err
		}

		existing, err := listActiveForDay(tx, ap.BarberID, ap.Date)
		if err != nil {
			return err
		}

		for _, other := range existing {
			iv, err := domain.ParseInterval(other.StartTime, other.EndTime)
			if err != nil {
				continue
			}
			if iv.Overlaps(wanted) {
				return httperr.ErrBusiness("time_conflict")
			}
		}

		return tx.Omit("Client", "Barber", "Service", "Status").Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status_id":  ap.StatusID,
			"updated_at": time.Now(),
		}).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber.User").
		Preload("Service").
		Preload("Status").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForBarberDay(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Status").
		Where("barber_id = ? AND date = ?", barberID, date.Format(dateLayout)).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) GetBarberStats(
	ctx context.Context,
	barberID uint,
) (*domain.BarberStats, error) {

	query, args, err := barberStatsQuery(barberID).ToSql()
	if err != nil {
		return nil, err
	}

	var stats domain.BarberStats
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func barberStatsQuery(barberID uint) sq.SelectBuilder {
	completed := uint(domain.StatusCompleted)

	return sq.
		Select("COUNT(*) AS total_appointments").
		Column(sq.Expr("COALESCE(SUM(CASE WHEN status_id = ? THEN 1 ELSE 0 END), 0) AS completed", completed)).
		Column(sq.Expr("COALESCE(AVG(CASE WHEN status_id = ? THEN price_final END), 0) AS average_income", completed)).
		From("appointments").
		Where(sq.Eq{"barber_id": barberID})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
