package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberia-reservas/internal/domain/catalog"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/logs"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
	ucCatalog "github.com/BruksfildServices01/barberia-reservas/internal/usecase/catalog"
)

type stubCatalog struct {
	filter catalog.Filter
}

func (s *stubCatalog) List(_ context.Context, f catalog.Filter) ([]models.Barbershop, error) {
	s.filter = f
	return nil, nil
}

func (s *stubCatalog) Detail(_ context.Context, id uint) (*ucCatalog.BarbershopDetail, error) {
	if id != 10 {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}
	return &ucCatalog.BarbershopDetail{
		Barbershop: models.Barbershop{ID: 10, Name: "Barbería Central"},
		Services:   []models.Service{},
		Barbers:    []models.Barber{},
	}, nil
}

func catalogRouter(s *stubCatalog) *gin.Engine {
	h := NewCatalogHandler(s, logs.Discard())

	r := gin.New()
	r.GET("/api/barbershops", h.List)
	r.GET("/api/barbershops/:id", h.Detail)
	r.GET("/client/book/:barbershopId", h.Detail)
	return r
}

func TestCatalogList(t *testing.T) {
	s := &stubCatalog{}
	rec := get(catalogRouter(s), "/api/barbershops?city=Bogot%C3%A1&q=fade")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, rec.Body.String())
	assert.Equal(t, catalog.Filter{City: "Bogotá", Query: "fade"}, s.filter)
}

func TestCatalogDetail(t *testing.T) {
	r := catalogRouter(&stubCatalog{})

	rec := get(r, "/api/barbershops/10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Barbería Central"`)

	rec = get(r, "/client/book/10?error=time_conflict")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"time_conflict"`)

	assert.Equal(t, http.StatusNotFound, get(r, "/api/barbershops/11").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/api/barbershops/abc").Code)
}
