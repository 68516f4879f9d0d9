package order

import "github.com/cisnebranco/grooming-os/internal/httperr"

type Status string

const (
	StatusWaiting    Status = "WAITING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReady      Status = "READY"
	StatusDelivered  Status = "DELIVERED"
)

// The order lifecycle is a strict ladder: no skipping, no reverting.
var nextStatus = map[Status]Status{
	StatusWaiting:    StatusInProgress,
	StatusInProgress: StatusReady,
	StatusReady:      StatusDelivered,
}

func AllowedNext(current Status) (Status, bool) {
	next, ok := nextStatus[current]
	return next, ok
}

func ValidateTransition(current, target Status) error {
	next, ok := nextStatus[current]
	if !ok || next != target {
		return httperr.Business("Invalid status transition: %s -> %s", current, target)
	}
	return nil
}

func Terminal(s Status) bool {
	return s == StatusDelivered
}
