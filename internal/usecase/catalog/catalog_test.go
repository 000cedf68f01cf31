package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/domain/catalog"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type fakeCatalog struct {
	shops map[uint]models.Barbershop
}

func (f fakeCatalog) ListBarbershops(_ context.Context, _ catalog.Filter) ([]models.Barbershop, error) {
	return nil, nil
}

func (f fakeCatalog) GetBarbershop(_ context.Context, id uint) (*models.Barbershop, error) {
	if s, ok := f.shops[id]; ok {
		return &s, nil
	}
	return nil, domain.ErrNotFound
}

func (f fakeCatalog) ListServices(_ context.Context, id uint) ([]models.Service, error) {
	return []models.Service{{ID: 1, BarbershopID: id, Name: "Corte"}}, nil
}

func (f fakeCatalog) ListBarbers(_ context.Context, _ uint) ([]models.Barber, error) {
	return nil, nil
}

func TestListNeverNil(t *testing.T) {
	shops, err := NewBrowse(fakeCatalog{}).List(context.Background(), catalog.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, shops)
}

func TestDetail(t *testing.T) {
	uc := NewBrowse(fakeCatalog{shops: map[uint]models.Barbershop{3: {ID: 3, Name: "Navaja"}}})

	d, err := uc.Detail(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Navaja", d.Barbershop.Name)
	assert.Len(t, d.Services, 1)
	assert.NotNil(t, d.Barbers)

	_, err = uc.Detail(context.Background(), 4)
	assert.True(t, httperr.IsBusiness(err, "barbershop_not_found"))
}
