package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/dto"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
	ucAppointment "github.com/BruksfildServices01/barberia-reservas/internal/usecase/appointment"
)

type AgendaLister interface {
	Execute(ctx context.Context, userID uint, date time.Time) ([]dto.AppointmentListDTO, error)
}

type StatusUpdater interface {
	Execute(ctx context.Context, in ucAppointment.UpdateStatusInput) (*models.Appointment, error)
}

type StatsReader interface {
	Execute(ctx context.Context, userID uint) (*domain.BarberStats, error)
}

type BarberHandler struct {
	agenda AgendaLister
	status StatusUpdater
	stats  StatsReader
	tz     string
	log    *slog.Logger
}

func NewBarberHandler(
	agenda AgendaLister,
	status StatusUpdater,
	stats StatsReader,
	tz string,
	log *slog.Logger,
) *BarberHandler {
	return &BarberHandler{
		agenda: agenda,
		status: status,
		stats:  stats,
		tz:     tz,
		log:    log,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

func (h *BarberHandler) Agenda(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	date, ok := dateOrToday(c.Query("date"), h.tz)
	if !ok {
		httperr.BadRequest(c, "invalid_date", "expected YYYY-MM-DD")
		return
	}

	items, err := h.agenda.Execute(c.Request.Context(), p.UserID, date)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date.Format("2006-01-02"),
		"appointments": items,
	})
}

func (h *BarberHandler) UpdateStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_status", "")
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		UserID:        p.UserID,
		AppointmentID: id,
		Status:        req.Status,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	st := domain.Status(ap.StatusID)
	c.JSON(http.StatusOK, gin.H{
		"id":     ap.ID,
		"status": st.String(),
		"color":  st.Color(),
	})
}

func (h *BarberHandler) Stats(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// parseWeekday reads the :weekday path parameter.
func parseWeekday(c *gin.Context) (int, bool) {
	d, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		return 0, false
	}
	return d, true
}
