package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberia-reservas/internal/authz"
	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/dto"
	"github.com/BruksfildServices01/barberia-reservas/internal/logs"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
	ucAppointment "github.com/BruksfildServices01/barberia-reservas/internal/usecase/appointment"
)

type stubAgenda struct{ date time.Time }

func (s *stubAgenda) Execute(_ context.Context, _ uint, date time.Time) ([]dto.AppointmentListDTO, error) {
	s.date = date
	return []dto.AppointmentListDTO{}, nil
}

type stubStatus struct{}

func (stubStatus) Execute(_ context.Context, in ucAppointment.UpdateStatusInput) (*models.Appointment, error) {
	st, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	return &models.Appointment{ID: in.AppointmentID, StatusID: uint(st)}, nil
}

type stubStats struct{}

func (stubStats) Execute(context.Context, uint) (*domain.BarberStats, error) {
	return &domain.BarberStats{TotalAppointments: 4, Completed: 2, AverageIncome: 25000}, nil
}

func barberRouter(agenda *stubAgenda) *gin.Engine {
	h := NewBarberHandler(agenda, stubStatus{}, stubStats{}, "America/Bogota", logs.Discard())

	r := gin.New()
	g := r.Group("/barber", withPrincipal(100, authz.RoleBarber))
	g.GET("/agenda", h.Agenda)
	g.PATCH("/appointments/:id/status", h.UpdateStatus)
	g.GET("/stats", h.Stats)
	return r
}

func patchJSON(r http.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpdateStatusHandler(t *testing.T) {
	r := barberRouter(&stubAgenda{})

	rec := patchJSON(r, "/barber/appointments/7/status", `{"status":"No Show"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"status":"no_show","color":"secondary"}`, rec.Body.String())

	rec = patchJSON(r, "/barber/appointments/7/status", `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_status")

	rec = patchJSON(r, "/barber/appointments/abc/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgendaDate(t *testing.T) {
	agenda := &stubAgenda{}
	r := barberRouter(agenda)

	rec := get(r, "/barber/agenda?date=2026-10-20")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), agenda.date)
	assert.Contains(t, rec.Body.String(), `"appointments":[]`)

	rec = get(r, "/barber/agenda?date=tomorrow")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsHandler(t *testing.T) {
	rec := get(barberRouter(&stubAgenda{}), "/barber/stats")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_appointments":4,"completed":2,"average_income":25000}`, rec.Body.String())
}
