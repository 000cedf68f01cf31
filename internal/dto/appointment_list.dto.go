package dto

import (
	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type AppointmentListDTO struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	StatusColor string  `json:"status_color"`
	ClientName  string  `json:"client_name,omitempty"`
	BarberName  string  `json:"barber_name,omitempty"`
	ServiceName string  `json:"service_name"`
	PriceFinal  float64 `json:"price_final"`
	Notes       string  `json:"notes,omitempty"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	st := domain.Status(ap.StatusID)
	return AppointmentListDTO{
		ID:          ap.ID,
		Date:        ap.Date.Format("2006-01-02"),
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		Status:      st.String(),
		StatusColor: st.Color(),
		ClientName:  ap.Client.FullName(),
		BarberName:  ap.Barber.User.FullName(),
		ServiceName: ap.Service.Name,
		PriceFinal:  ap.PriceFinal,
		Notes:       ap.Notes,
	}
}

func NewAppointmentList(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, NewAppointmentListDTO(ap))
	}
	return out
}
