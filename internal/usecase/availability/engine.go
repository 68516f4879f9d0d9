package availability

import (
	"context"
	"time"

	domain "github.com/cisnebranco/grooming-os/internal/domain/availability"
	"github.com/cisnebranco/grooming-os/internal/httperr"
)

// Engine answers "is this range bookable" and "what slots exist" from the
// recurring weekly windows. Pure read path; always against latest committed
// data.
type Engine struct {
	repo domain.Repository
}

func NewEngine(repo domain.Repository) *Engine {
	return &Engine{repo: repo}
}

func atTime(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// IsWithinWindow validates that [start, end] fits inside one active window
// on start's weekday. "No availability that day" and "outside hours" are
// distinct failures so callers can surface different messages.
func (e *Engine) IsWithinWindow(
	ctx context.Context,
	groomerID uint,
	start time.Time,
	end time.Time,
) error {

	windows, err := e.repo.ListActiveWindows(ctx, groomerID, domain.ISOWeekday(start))
	if err != nil {
		return err
	}

	if len(windows) == 0 {
		return httperr.Business("Groomer has no availability on %s", start.Weekday())
	}

	for _, w := range windows {
		wStart := atTime(start, w.StartTime)
		wEnd := atTime(start, w.EndTime)
		if !start.Before(wStart) && !end.After(wEnd) {
			return nil
		}
	}

	return httperr.Business("Appointment time is outside groomer's availability window")
}

// GenerateSlots walks each active window on date's weekday in duration
// increments, flagging every slot against already-booked appointments.
// No windows means an empty sequence, not an error.
func (e *Engine) GenerateSlots(
	ctx context.Context,
	groomerID uint,
	date time.Time,
	durationMinutes int,
) ([]domain.TimeSlot, error) {

	windows, err := e.repo.ListActiveWindows(ctx, groomerID, domain.ISOWeekday(date))
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []domain.TimeSlot{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := e.repo.ListBookedAppointments(ctx, groomerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	slots := []domain.TimeSlot{}

	for _, w := range windows {
		cur := atTime(date, w.StartTime)
		wEnd := atTime(date, w.EndTime)

		for !cur.Add(duration).After(wEnd) {
			slotEnd := cur.Add(duration)

			available := true
			for _, ap := range booked {
				if domain.Overlaps(ap.ScheduledStart, ap.ScheduledEnd, cur, slotEnd) {
					available = false
					break
				}
			}

			slots = append(slots, domain.TimeSlot{
				Start:     cur,
				End:       slotEnd,
				Available: available,
			})

			cur = slotEnd
		}
	}

	return slots, nil
}
