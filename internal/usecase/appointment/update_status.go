package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/barberia-reservas/internal/audit"
	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/metrics"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type UpdateStatusInput struct {
	// UserID is the barber's user account.
	UserID        uint
	AppointmentID uint
	Status        string
}

type UpdateAppointmentStatus struct {
	repo    domain.Repository
	audit   audit.Recorder
	log     *slog.Logger
	metrics *metrics.Metrics
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	rec audit.Recorder,
	log *slog.Logger,
	m *metrics.Metrics,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:    repo,
		audit:   rec,
		log:     log,
		metrics: m,
	}
}

// Execute overwrites the status of one of the barber's appointments. Any known
// status is accepted; moves outside the usual lifecycle are only logged.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarberByUserID(ctx, in.UserID)
	if err != nil {
		return nil, lookupErr(err, "barber_not_found")
	}

	ap, err := uc.repo.GetAppointmentForBarber(ctx, in.AppointmentID, barber.ID)
	if err != nil {
		return nil, lookupErr(err, "appointment_not_found")
	}

	prev := domain.Status(ap.StatusID)
	if prev != next && !prev.Follows(next) {
		uc.log.Warn("status change outside usual lifecycle",
			slog.Uint64("appointment_id", uint64(ap.ID)),
			slog.String("from", prev.String()),
			slog.String("to", next.String()),
		)
	}

	ap.StatusID = uint(next)
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap); err != nil {
		return nil, err
	}

	uc.metrics.StatusChanged(next.String())

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.UserID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"from": prev.String(),
			"to":   next.String(),
		},
	})

	return ap, nil
}
