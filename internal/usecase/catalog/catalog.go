package catalog

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/domain/catalog"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type BarbershopDetail struct {
	Barbershop models.Barbershop `json:"barbershop"`
	Services   []models.Service  `json:"services"`
	Barbers    []models.Barber   `json:"barbers"`
}

type Browse struct {
	repo catalog.Repository
}

func NewBrowse(repo catalog.Repository) *Browse {
	return &Browse{repo: repo}
}

func (uc *Browse) List(ctx context.Context, f catalog.Filter) ([]models.Barbershop, error) {
	shops, err := uc.repo.ListBarbershops(ctx, f)
	if err != nil {
		return nil, err
	}
	if shops == nil {
		shops = []models.Barbershop{}
	}
	return shops, nil
}

func (uc *Browse) Detail(ctx context.Context, id uint) (*BarbershopDetail, error) {
	shop, err := uc.repo.GetBarbershop(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("barbershop_not_found")
		}
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx, id)
	if err != nil {
		return nil, err
	}

	barbers, err := uc.repo.ListBarbers(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &BarbershopDetail{
		Barbershop: *shop,
		Services:   services,
		Barbers:    barbers,
	}
	if out.Services == nil {
		out.Services = []models.Service{}
	}
	if out.Barbers == nil {
		out.Barbers = []models.Barber{}
	}
	return out, nil
}
