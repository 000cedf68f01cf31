package workinghours

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type fakeBarbers map[uint]*models.Barber

func (f fakeBarbers) GetBarberByUserID(_ context.Context, userID uint) (*models.Barber, error) {
	if b, ok := f[userID]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

type fakeHours struct {
	rows map[[2]int]models.WorkingHours
}

func (f *fakeHours) ListWorkingHours(_ context.Context, barberID uint) ([]models.WorkingHours, error) {
	var out []models.WorkingHours
	for _, wh := range f.rows {
		if wh.BarberID == barberID {
			out = append(out, wh)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weekday < out[j].Weekday })
	return out, nil
}

func (f *fakeHours) UpsertWorkingHours(_ context.Context, wh *models.WorkingHours) error {
	f.rows[[2]int{int(wh.BarberID), wh.Weekday}] = *wh
	return nil
}

func (f *fakeHours) DeactivateWorkingHours(_ context.Context, barberID uint, weekday int) error {
	key := [2]int{int(barberID), weekday}
	wh, ok := f.rows[key]
	if !ok {
		return domain.ErrNotFound
	}
	wh.Active = false
	f.rows[key] = wh
	return nil
}

func newManage() (*Manage, *fakeHours) {
	hours := &fakeHours{rows: map[[2]int]models.WorkingHours{}}
	return NewManage(fakeBarbers{100: {ID: 1, UserID: 100}}, hours), hours
}

func TestUpsertAndDeactivate(t *testing.T) {
	uc, hours := newManage()
	ctx := context.Background()

	wh, err := uc.Upsert(ctx, 100, UpsertInput{Weekday: 2, StartTime: "9:00", EndTime: "18:00"})
	require.NoError(t, err)
	assert.Equal(t, "09:00", wh.StartTime)
	assert.True(t, wh.Active)

	_, err = uc.Upsert(ctx, 100, UpsertInput{Weekday: 2, StartTime: "10:00", EndTime: "14:00"})
	require.NoError(t, err)

	rows, err := uc.List(ctx, 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10:00", rows[0].StartTime)

	require.NoError(t, uc.Deactivate(ctx, 100, 2))
	assert.False(t, hours.rows[[2]int{1, 2}].Active)
	assert.Len(t, hours.rows, 1)
}

func TestUpsertValidation(t *testing.T) {
	uc, _ := newManage()
	ctx := context.Background()

	tests := []struct {
		in   UpsertInput
		code string
	}{
		{UpsertInput{Weekday: 0, StartTime: "09:00", EndTime: "10:00"}, "invalid_weekday"},
		{UpsertInput{Weekday: 8, StartTime: "09:00", EndTime: "10:00"}, "invalid_weekday"},
		{UpsertInput{Weekday: 1, StartTime: "nine", EndTime: "10:00"}, "invalid_time"},
		{UpsertInput{Weekday: 1, StartTime: "10:00", EndTime: "10:00"}, "invalid_time_range"},
	}

	for _, tt := range tests {
		_, err := uc.Upsert(ctx, 100, tt.in)
		assert.True(t, httperr.IsBusiness(err, tt.code), "%+v: %v", tt.in, err)
	}
}

func TestNotABarber(t *testing.T) {
	uc, _ := newManage()

	_, err := uc.List(context.Background(), 7)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestDeactivateMissingDay(t *testing.T) {
	uc, _ := newManage()

	err := uc.Deactivate(context.Background(), 100, 5)
	assert.True(t, httperr.IsBusiness(err, "working_hours_not_found"))
}
