package workinghours

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type BarberLookup interface {
	GetBarberByUserID(ctx context.Context, userID uint) (*models.Barber, error)
}

type UpsertInput struct {
	Weekday   int
	StartTime string
	EndTime   string
}

// Manage lets a barber maintain their weekly schedule. Rows are deactivated,
// never removed.
type Manage struct {
	barbers BarberLookup
	repo    domain.WorkingHoursRepository
}

func NewManage(barbers BarberLookup, repo domain.WorkingHoursRepository) *Manage {
	return &Manage{barbers: barbers, repo: repo}
}

func (uc *Manage) barberID(ctx context.Context, userID uint) (uint, error) {
	b, err := uc.barbers.GetBarberByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, httperr.ErrBusiness("barber_not_found")
		}
		return 0, err
	}
	return b.ID, nil
}

func (uc *Manage) List(ctx context.Context, userID uint) ([]models.WorkingHours, error) {
	id, err := uc.barberID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListWorkingHours(ctx, id)
}

func (uc *Manage) Upsert(ctx context.Context, userID uint, in UpsertInput) (*models.WorkingHours, error) {
	if !domain.IsValidWeekday(in.Weekday) {
		return nil, httperr.ErrBusiness("invalid_weekday")
	}

	start, err := domain.ParseClock(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	end, err := domain.ParseClock(in.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if end <= start {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	id, err := uc.barberID(ctx, userID)
	if err != nil {
		return nil, err
	}

	wh := &models.WorkingHours{
		BarberID:  id,
		Weekday:   in.Weekday,
		StartTime: start.String(),
		EndTime:   end.String(),
		Active:    true,
	}
	if err := uc.repo.UpsertWorkingHours(ctx, wh); err != nil {
		return nil, err
	}
	return wh, nil
}

func (uc *Manage) Deactivate(ctx context.Context, userID uint, weekday int) error {
	if !domain.IsValidWeekday(weekday) {
		return httperr.ErrBusiness("invalid_weekday")
	}

	id, err := uc.barberID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeactivateWorkingHours(ctx, id, weekday); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("working_hours_not_found")
		}
		return err
	}
	return nil
}
