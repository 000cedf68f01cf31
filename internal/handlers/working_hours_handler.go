package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
	"github.com/BruksfildServices01/barberia-reservas/internal/usecase/workinghours"
)

type ScheduleManager interface {
	List(ctx context.Context, userID uint) ([]models.WorkingHours, error)
	Upsert(ctx context.Context, userID uint, in workinghours.UpsertInput) (*models.WorkingHours, error)
	Deactivate(ctx context.Context, userID uint, weekday int) error
}

type WorkingHoursHandler struct {
	schedule ScheduleManager
	log      *slog.Logger
}

func NewWorkingHoursHandler(schedule ScheduleManager, log *slog.Logger) *WorkingHoursHandler {
	return &WorkingHoursHandler{schedule: schedule, log: log}
}

// WorkingDayConfig uses weekday 1 (Sunday) to 7 (Saturday).
type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	hours, err := h.schedule.List(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if hours == nil {
		hours = []models.WorkingHours{}
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Upsert(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req WorkingDayConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	wh, err := h.schedule.Upsert(c.Request.Context(), p.UserID, workinghours.UpsertInput{
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, wh)
}

func (h *WorkingHoursHandler) Deactivate(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	weekday, ok := parseWeekday(c)
	if !ok {
		httperr.BadRequest(c, "invalid_weekday", "")
		return
	}

	if err := h.schedule.Deactivate(c.Request.Context(), p.UserID, weekday); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
