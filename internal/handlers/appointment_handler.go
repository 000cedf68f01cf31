package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/dto"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
	"github.com/BruksfildServices01/barberia-reservas/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barberia-reservas/internal/usecase/appointment"
)

// ======================================================
// DEPENDENCIES
// ======================================================

type SlotFinder interface {
	Execute(ctx context.Context, in domain.AvailabilityInput) ([]string, error)
}

type BookingCreator interface {
	Execute(ctx context.Context, in ucAppointment.CreateBookingInput) (*models.Appointment, error)
}

type ClientAppointmentsLister interface {
	Execute(ctx context.Context, clientID uint, today time.Time) (*ucAppointment.ClientDashboard, error)
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	slots     SlotFinder
	bookings  BookingCreator
	dashboard ClientAppointmentsLister
	tz        string
	log       *slog.Logger
}

func NewAppointmentHandler(
	slots SlotFinder,
	bookings BookingCreator,
	dashboard ClientAppointmentsLister,
	tz string,
	log *slog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		slots:     slots,
		bookings:  bookings,
		dashboard: dashboard,
		tz:        tz,
		log:       log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingForm struct {
	BarberID  uint   `form:"barber_id" binding:"required"`
	ServiceID uint   `form:"service_id" binding:"required"`
	Date      string `form:"date" binding:"required"`
	Time      string `form:"time" binding:"required"`
	Notes     string `form:"notes"`
}

type CreateAppointmentRequest struct {
	BarbershopID uint   `json:"barbershop_id"`
	BarberID     uint   `json:"barber_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	Notes        string `json:"notes"`
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	barberRaw := c.Query("barber_id")
	dateRaw := c.Query("date")
	if barberRaw == "" || dateRaw == "" {
		httperr.BadRequest(c, "missing_params", "barber_id and date are required")
		return
	}

	barberID, ok := parseID(barberRaw)
	if !ok {
		httperr.BadRequest(c, "invalid_barber_id", "")
		return
	}

	date, err := timezone.ParseDate(dateRaw)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "expected YYYY-MM-DD")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"disponibles": slots})
}

// ======================================================
// BOOKING (FORM)
// ======================================================

func bookingFormURL(barbershopID, code string) string {
	return fmt.Sprintf("/client/book/%s?error=%s", url.PathEscape(barbershopID), url.QueryEscape(code))
}

// BookForm handles the browser booking form and always answers with a
// redirect: to the dashboard on success, back to the form otherwise.
func (h *AppointmentHandler) BookForm(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	rawShop := c.Param("barbershopId")
	shopID, ok := parseID(rawShop)
	if !ok {
		httperr.NotFound(c, "barbershop_not_found", "")
		return
	}

	var form BookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, bookingFormURL(rawShop, "invalid_request"))
		return
	}

	date, err := timezone.ParseDate(form.Date)
	if err != nil {
		c.Redirect(http.StatusSeeOther, bookingFormURL(rawShop, "invalid_date"))
		return
	}

	_, err = h.bookings.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		ClientID:     p.UserID,
		BarberID:     form.BarberID,
		ServiceID:    form.ServiceID,
		BarbershopID: shopID,
		Date:         date,
		StartTime:    form.Time,
		Notes:        form.Notes,
	})
	if err != nil {
		code, isBusiness := httperr.BusinessCode(err)
		if !isBusiness {
			code = "booking_failed"
			h.log.Error("booking failed",
				slog.Uint64("client_id", uint64(p.UserID)),
				slog.Any("error", err),
			)
		}
		c.Redirect(http.StatusSeeOther, bookingFormURL(rawShop, code))
		return
	}

	c.Redirect(http.StatusSeeOther, "/client/dashboard?notice=booking_created")
}

// ======================================================
// BOOKING (JSON)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "expected YYYY-MM-DD")
		return
	}

	ap, err := h.bookings.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		ClientID:     p.UserID,
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,
		BarbershopID: req.BarbershopID,
		Date:         date,
		StartTime:    req.StartTime,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentListDTO(*ap))
}

// ======================================================
// CLIENT DASHBOARD
// ======================================================

func (h *AppointmentHandler) Dashboard(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	out, err := h.dashboard.Execute(c.Request.Context(), p.UserID, timezone.TodayIn(h.tz))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := gin.H{
		"upcoming": out.Upcoming,
		"past":     out.Past,
	}
	if notice := c.Query("notice"); notice != "" {
		resp["notice"] = notice
	}
	c.JSON(http.StatusOK, resp)
}
