package appointment

import "time"

// StoreWeekday maps a date to the schedule numbering, 1 = Sunday .. 7 = Saturday.
func StoreWeekday(date time.Time) int {
	return int(date.Weekday()) + 1
}

func IsValidWeekday(d int) bool {
	return d >= 1 && d <= 7
}

// DateOnly drops the clock part, keeping the calendar date in UTC so it maps
// to a postgres DATE without shifting.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
