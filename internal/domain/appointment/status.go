package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

// Status values are also the primary keys of the appointment_statuses table.
type Status uint

const (
	StatusPending Status = iota + 1
	StatusConfirmed
	StatusCompleted
	StatusCancelled
	StatusNoShow
)

var statusNames = map[Status]string{
	StatusPending:   "pending",
	StatusConfirmed: "confirmed",
	StatusCompleted: "completed",
	StatusCancelled: "cancelled",
	StatusNoShow:    "no_show",
}

var statusColors = map[Status]string{
	StatusPending:   "warning",
	StatusConfirmed: "primary",
	StatusCompleted: "success",
	StatusCancelled: "danger",
	StatusNoShow:    "secondary",
}

// lifecycle documents the expected barber workflow. It is not enforced.
var lifecycle = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusNoShow, StatusCancelled},
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow}
}

// ActiveStatuses are the ones that hold a slot on the barber's agenda.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Color() string {
	return statusColors[s]
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Follows reports whether moving from s to next matches the usual lifecycle.
func (s Status) Follows(next Status) bool {
	for _, allowed := range lifecycle[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus resolves a status name such as "confirmed" or "No Show".
func ParseStatus(name string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for st, n := range statusNames {
		if n == key {
			return st, nil
		}
	}
	return 0, httperr.ErrBusiness("invalid_status")
}

func InitialStatus() Status {
	return StatusPending
}
