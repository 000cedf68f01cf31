package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/dto"
)

type ListBarberAgenda struct {
	repo domain.Repository
}

func NewListBarberAgenda(repo domain.Repository) *ListBarberAgenda {
	return &ListBarberAgenda{repo: repo}
}

func (uc *ListBarberAgenda) Execute(
	ctx context.Context,
	userID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	barber, err := uc.repo.GetBarberByUserID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "barber_not_found")
	}

	apps, err := uc.repo.ListAppointmentsForBarberDay(ctx, barber.ID, domain.DateOnly(date))
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentList(apps), nil
}

type GetBarberStats struct {
	repo domain.Repository
}

func NewGetBarberStats(repo domain.Repository) *GetBarberStats {
	return &GetBarberStats{repo: repo}
}

func (uc *GetBarberStats) Execute(
	ctx context.Context,
	userID uint,
) (*domain.BarberStats, error) {

	barber, err := uc.repo.GetBarberByUserID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "barber_not_found")
	}

	return uc.repo.GetBarberStats(ctx, barber.ID)
}
