package catalog

import (
	"context"

	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type Filter struct {
	City  string
	Query string
}

type Repository interface {
	ListBarbershops(ctx context.Context, f Filter) ([]models.Barbershop, error)
	GetBarbershop(ctx context.Context, id uint) (*models.Barbershop, error)
	ListServices(ctx context.Context, barbershopID uint) ([]models.Service, error)
	ListBarbers(ctx context.Context, barbershopID uint) ([]models.Barber, error)
}
