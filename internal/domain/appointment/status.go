package appointment

import (
	"time"

	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

// validTransitions keeps every transition rule in one place instead of
// scattering status checks across call sites. Terminal states map to nothing.
var validTransitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

func AllowedNext(current Status) []Status {
	return validTransitions[current]
}

func CanTransition(current, target Status) bool {
	for _, s := range validTransitions[current] {
		if s == target {
			return true
		}
	}
	return false
}

// Transition applies target onto ap, stamping cancellation metadata when the
// target is CANCELLED. The reason may be empty.
func Transition(ap *models.Appointment, target Status, reason string, now time.Time) error {
	current := Status(ap.Status)
	if !CanTransition(current, target) {
		return httperr.Business("Invalid status transition: %s -> %s", current, target)
	}

	if target == StatusCancelled {
		ap.CancelledAt = &now
		ap.CancellationReason = reason
	}
	ap.Status = string(target)
	return nil
}

// Blocking reports whether an appointment in this status still occupies its
// time range for conflict purposes.
func Blocking(s Status) bool {
	return s != StatusCancelled && s != StatusNoShow
}
