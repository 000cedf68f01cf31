package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/metrics"
)

type GetAvailability struct {
	repo    domain.Repository
	step    int
	log     *slog.Logger
	metrics *metrics.Metrics
}

func NewGetAvailability(
	repo domain.Repository,
	step int,
	log *slog.Logger,
	m *metrics.Metrics,
) *GetAvailability {
	if step <= 0 {
		step = domain.DefaultSlotStepMinutes
	}
	return &GetAvailability{
		repo:    repo,
		step:    step,
		log:     log,
		metrics: m,
	}
}

// Execute lists the free slot starts of a barber on a date. A day without an
// active schedule yields an empty list.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	// inactive barbers cannot be booked, so they have nothing to offer
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	uc.metrics.SlotQuery()

	weekday := domain.StoreWeekday(in.Date)

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	if !wh.Active {
		return []string{}, nil
	}

	open, err := domain.ParseClock(wh.StartTime)
	if err != nil {
		return nil, fmt.Errorf("working hours %d: %w", wh.ID, err)
	}
	closing, err := domain.ParseClock(wh.EndTime)
	if err != nil {
		return nil, fmt.Errorf("working hours %d: %w", wh.ID, err)
	}

	apps, err := uc.repo.ListActiveAppointmentsForDay(ctx, in.BarberID, domain.DateOnly(in.Date))
	if err != nil {
		return nil, err
	}

	booked := make([]domain.Interval, 0, len(apps))
	for _, ap := range apps {
		iv, err := domain.ParseInterval(ap.StartTime, ap.EndTime)
		if err != nil {
			uc.log.Warn("skipping appointment with malformed times",
				slog.Uint64("appointment_id", uint64(ap.ID)),
				slog.String("start_time", ap.StartTime),
				slog.String("end_time", ap.EndTime),
			)
			continue
		}
		booked = append(booked, iv)
	}

	return domain.FreeSlots(open, closing, uc.step, booked), nil
}
