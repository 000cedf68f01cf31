package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := ParseInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestFreeSlots(t *testing.T) {
	tests := []struct {
		name   string
		open   string
		close  string
		booked []Interval
		want   []string
	}{
		{
			name:   "one pending booking in the morning",
			open:   "09:00",
			close:  "12:00",
			booked: []Interval{mustInterval(t, "10:00", "10:30")},
			want:   []string{"09:00", "09:30", "10:30", "11:00", "11:30"},
		},
		{
			name:  "no bookings leaves every candidate free",
			open:  "09:00",
			close: "11:00",
			want:  []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:   "booking end equals slot start is free",
			open:   "09:00",
			close:  "10:30",
			booked: []Interval{mustInterval(t, "09:00", "09:30")},
			want:   []string{"09:30", "10:00"},
		},
		{
			name:   "booking longer than the grid covers several slots",
			open:   "09:00",
			close:  "12:00",
			booked: []Interval{mustInterval(t, "09:15", "10:45")},
			want:   []string{"09:00", "11:00", "11:30"},
		},
		{
			name:  "closing off the grid still yields the last partial slot",
			open:  "09:00",
			close: "10:15",
			want:  []string{"09:00", "09:30", "10:00"},
		},
		{
			name:  "empty window",
			open:  "12:00",
			close: "12:00",
			want:  []string{},
		},
		{
			name: "overlapping double bookings",
			open: "09:00", close: "10:30",
			booked: []Interval{
				mustInterval(t, "09:00", "09:30"),
				mustInterval(t, "09:00", "10:00"),
			},
			want: []string{"10:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeSlots(mustClock(t, tt.open), mustClock(t, tt.close), DefaultSlotStepMinutes, tt.booked)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeSlotsNeverInsideBooking(t *testing.T) {
	booked := []Interval{
		mustInterval(t, "08:30", "09:15"),
		mustInterval(t, "13:00", "14:00"),
		mustInterval(t, "17:45", "18:10"),
	}

	slots := FreeSlots(mustClock(t, "08:00"), mustClock(t, "19:00"), DefaultSlotStepMinutes, booked)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		c := mustClock(t, s)
		for _, iv := range booked {
			assert.False(t, iv.Contains(c), "slot %s inside %s-%s", s, iv.Start, iv.End)
		}
	}
}

func TestFreeSlotsIsIdempotent(t *testing.T) {
	booked := []Interval{mustInterval(t, "10:00", "10:30")}
	open, close := mustClock(t, "09:00"), mustClock(t, "12:00")

	first := FreeSlots(open, close, DefaultSlotStepMinutes, booked)
	second := FreeSlots(open, close, DefaultSlotStepMinutes, booked)

	assert.Equal(t, first, second)
}

func TestCandidatesStopsEarly(t *testing.T) {
	var seen []string
	for c := range Candidates(mustClock(t, "09:00"), mustClock(t, "18:00"), 30) {
		seen = append(seen, c.String())
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, seen)
}

func TestCandidatesRejectsNonPositiveStep(t *testing.T) {
	count := 0
	for range Candidates(mustClock(t, "09:00"), mustClock(t, "10:00"), 0) {
		count++
	}
	assert.Zero(t, count)
}
