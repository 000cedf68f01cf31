package appointment

import (
	"iter"
	"time"
)

const DefaultSlotStepMinutes = 30

type AvailabilityInput struct {
	BarberID uint
	Date     time.Time
}

// Candidates yields slot starts from open while the start is before close.
// The last slot may run past close; only the start is checked.
func Candidates(open, close Clock, step int) iter.Seq[Clock] {
	return func(yield func(Clock) bool) {
		if step <= 0 {
			return
		}
		for c := open; c < close; c = c.Add(step) {
			if !yield(c) {
				return
			}
		}
	}
}

// FreeSlots returns every candidate start that does not fall inside a booked
// interval, formatted as HH:MM and in ascending order.
func FreeSlots(open, close Clock, step int, booked []Interval) []string {
	slots := make([]string, 0)
	for c := range Candidates(open, close, step) {
		if isOccupied(c, booked) {
			continue
		}
		slots = append(slots, c.String())
	}
	return slots
}

func isOccupied(c Clock, booked []Interval) bool {
	for _, iv := range booked {
		if iv.Contains(c) {
			return true
		}
	}
	return false
}
