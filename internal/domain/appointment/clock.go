package appointment

import (
	"fmt"
	"time"
)

const ClockLayout = "15:04"

const minutesPerDay = 24 * 60

// Clock is a naive time of day in minutes since midnight.
type Clock int

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// String formats as HH:MM, wrapping past midnight.
func (c Clock) String() string {
	m := int(c) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Interval is a half-open [Start, End) range of the day.
type Interval struct {
	Start Clock
	End   Clock
}

func (iv Interval) Contains(c Clock) bool {
	return iv.Start <= c && c < iv.End
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if e < s {
		// stored end times wrap at midnight
		e += minutesPerDay
	}
	return Interval{Start: s, End: e}, nil
}
