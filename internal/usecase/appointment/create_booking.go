package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberia-reservas/internal/audit"
	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/metrics"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	// BarbershopID, when set, must own both the barber and the service.
	BarbershopID uint

	Date      time.Time
	StartTime string
	Notes     string
}

type BookingOptions struct {
	// GuardOverlap rejects a booking whose interval overlaps an active one.
	GuardOverlap bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	audit   audit.Recorder
	log     *slog.Logger
	metrics *metrics.Metrics
	opts    BookingOptions
}

func NewCreateBooking(
	repo domain.Repository,
	rec audit.Recorder,
	log *slog.Logger,
	m *metrics.Metrics,
	opts BookingOptions,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		audit:   rec,
		log:     log,
		metrics: m,
		opts:    opts,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	ap, err := uc.execute(ctx, in)
	if err != nil {
		outcome := "failed"
		if code, ok := httperr.BusinessCode(err); ok {
			outcome = code
		}
		uc.metrics.BookingOutcome(outcome)
		return nil, err
	}

	uc.metrics.BookingOutcome("created")
	return ap, nil
}

func (uc *CreateBooking) execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Start time
	// --------------------------------------------------
	start, err := domain.ParseClock(strings.TrimSpace(in.StartTime))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// Service, barber, client
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, lookupErr(err, "service_not_found")
	}
	if !svc.Active || (in.BarbershopID != 0 && svc.BarbershopID != in.BarbershopID) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, lookupErr(err, "barber_not_found")
	}
	if !barber.Active || (in.BarbershopID != 0 && barber.BarbershopID != in.BarbershopID) {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, lookupErr(err, "client_not_found")
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:   in.ClientID,
		BarberID:   barber.ID,
		ServiceID:  svc.ID,
		Date:       domain.DateOnly(in.Date),
		StartTime:  start.String(),
		EndTime:    start.Add(svc.DurationMinutes).String(),
		StatusID:   uint(domain.InitialStatus()),
		PriceFinal: svc.Price,
		Notes:      strings.TrimSpace(in.Notes),
	}

	if uc.opts.GuardOverlap {
		err = uc.repo.CreateAppointmentNoOverlap(ctx, ap)
	} else {
		err = uc.repo.CreateAppointment(ctx, ap)
	}
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	uc.log.Info("appointment created",
		slog.Uint64("appointment_id", uint64(ap.ID)),
		slog.Uint64("barber_id", uint64(ap.BarberID)),
		slog.String("date", ap.Date.Format("2006-01-02")),
		slog.String("start_time", ap.StartTime),
	)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id":  ap.BarberID,
			"service_id": ap.ServiceID,
			"date":       ap.Date.Format("2006-01-02"),
			"start_time": ap.StartTime,
			"end_time":   ap.EndTime,
		},
	})

	return ap, nil
}

func lookupErr(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
