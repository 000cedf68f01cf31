package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

func seededStatusRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.apps = append(repo.apps, &models.Appointment{
		ID: 7, BarberID: 1, ClientID: 50, Date: monday, StartTime: "09:00", EndTime: "09:30",
		StatusID: uint(domain.StatusPending),
	})
	return repo
}

func TestUpdateStatusOverwrites(t *testing.T) {
	repo := seededStatusRepo()
	rec := &recordingAudit{}
	uc := NewUpdateAppointmentStatus(repo, rec, discardLogger(), nil)

	ap, err := uc.Execute(context.Background(), UpdateStatusInput{UserID: 100, AppointmentID: 7, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, uint(domain.StatusConfirmed), ap.StatusID)
	assert.Equal(t, uint(domain.StatusConfirmed), repo.apps[0].StatusID)

	// outside the usual lifecycle, still written
	_, err = uc.Execute(context.Background(), UpdateStatusInput{UserID: 100, AppointmentID: 7, Status: "Pending"})
	require.NoError(t, err)
	assert.Equal(t, uint(domain.StatusPending), repo.apps[0].StatusID)

	assert.Len(t, rec.events, 2)
}

func TestUpdateStatusUnknownName(t *testing.T) {
	repo := seededStatusRepo()

	_, err := NewUpdateAppointmentStatus(repo, &recordingAudit{}, discardLogger(), nil).
		Execute(context.Background(), UpdateStatusInput{UserID: 100, AppointmentID: 7, Status: "teleported"})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	assert.Equal(t, uint(domain.StatusPending), repo.apps[0].StatusID)
}

func TestUpdateStatusOtherBarber(t *testing.T) {
	repo := seededStatusRepo()
	uc := NewUpdateAppointmentStatus(repo, &recordingAudit{}, discardLogger(), nil)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{UserID: 200, AppointmentID: 7, Status: "cancelled"})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	_, err = uc.Execute(context.Background(), UpdateStatusInput{UserID: 999, AppointmentID: 7, Status: "cancelled"})
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}
