package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/dto"
)

type ClientDashboard struct {
	Upcoming []dto.AppointmentListDTO `json:"upcoming"`
	Past     []dto.AppointmentListDTO `json:"past"`
}

type ListClientAppointments struct {
	repo domain.Repository
}

func NewListClientAppointments(repo domain.Repository) *ListClientAppointments {
	return &ListClientAppointments{repo: repo}
}

// Execute splits the client's appointments around today: upcoming holds the
// still-active ones from today on, past holds the rest.
func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	clientID uint,
	today time.Time,
) (*ClientDashboard, error) {

	apps, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	today = domain.DateOnly(today)

	out := &ClientDashboard{
		Upcoming: []dto.AppointmentListDTO{},
		Past:     []dto.AppointmentListDTO{},
	}

	for _, ap := range apps {
		item := dto.NewAppointmentListDTO(ap)
		day := domain.DateOnly(ap.Date)
		if !day.Before(today) && domain.Status(ap.StatusID).IsActive() {
			out.Upcoming = append(out.Upcoming, item)
		} else {
			out.Past = append(out.Past, item)
		}
	}

	return out, nil
}
