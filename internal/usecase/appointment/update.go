package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/cisnebranco/grooming-os/internal/audit"
	domain "github.com/cisnebranco/grooming-os/internal/domain/appointment"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/timezone"
	"github.com/cisnebranco/grooming-os/internal/usecase/availability"
)

// UpdateInput is a partial update: only non-nil fields are applied.
type UpdateInput struct {
	Status             *domain.Status
	NewStart           *time.Time
	Notes              *string
	CancellationReason string
	ActorID            uint
}

type UpdateAppointment struct {
	repo   domain.Repository
	engine *availability.Engine
	audit  *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	engine *availability.Engine,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		engine: engine,
		audit:  audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := ap.Status

	if in.Status != nil {
		now := timezone.Now()
		if err := domain.Transition(ap, *in.Status, in.CancellationReason, now); err != nil {
			return nil, err
		}
	}

	if in.NewStart != nil {
		serviceType, err := uc.repo.GetServiceType(ctx, ap.ServiceTypeID)
		if err != nil {
			return nil, err
		}
		newEnd := in.NewStart.Add(time.Duration(serviceType.DurationMin) * time.Minute)

		if err := uc.engine.IsWithinWindow(ctx, ap.GroomerID, *in.NewStart, newEnd); err != nil {
			return nil, err
		}
		ap.ScheduledStart = *in.NewStart
		ap.ScheduledEnd = newEnd
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if in.Status != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ActorID,
			Action:   "APPOINTMENT_STATUS_CHANGED",
			Entity:   "Appointment",
			EntityID: &ap.ID,
			Detail:   fmt.Sprintf("%s -> %s", previous, ap.Status),
		})
	}

	return ap, nil
}
