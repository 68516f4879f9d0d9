package appointment

import (
	"context"
	"time"

	"github.com/cisnebranco/grooming-os/internal/audit"
	domain "github.com/cisnebranco/grooming-os/internal/domain/appointment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/usecase/availability"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientID      uint
	PetID         uint
	GroomerID     uint
	ServiceTypeID uint
	Start         time.Time
	Notes         string
	ActorID       uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	engine *availability.Engine
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	engine *availability.Engine,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		engine: engine,
		audit:  audit,
	}
}

// Execute books an appointment. The availability check is a fast pre-filter;
// the storage exclusion constraint is the authoritative guard against
// concurrent double-booking and the repository surfaces its violation as a
// SchedulingConflict.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, err
	}
	if pet.ClientID != client.ID {
		return nil, httperr.Business("Pet does not belong to the specified client")
	}

	if _, err := uc.repo.GetGroomer(ctx, in.GroomerID); err != nil {
		return nil, err
	}

	serviceType, err := uc.repo.GetServiceType(ctx, in.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	end := in.Start.Add(time.Duration(serviceType.DurationMin) * time.Minute)

	if err := uc.engine.IsWithinWindow(ctx, in.GroomerID, in.Start, end); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:       in.ClientID,
		PetID:          in.PetID,
		GroomerID:      in.GroomerID,
		ServiceTypeID:  in.ServiceTypeID,
		ScheduledStart: in.Start,
		ScheduledEnd:   end,
		Status:         string(domain.StatusScheduled),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "APPOINTMENT_CREATED",
		Entity:   "Appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
