package appointment

import (
	"context"

	"github.com/cisnebranco/grooming-os/internal/audit"
	domain "github.com/cisnebranco/grooming-os/internal/domain/appointment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/usecase/order"
)

type ConvertToOrder struct {
	repo    domain.Repository
	checkIn *order.CheckIn
	audit   *audit.Dispatcher
}

func NewConvertToOrder(
	repo domain.Repository,
	checkIn *order.CheckIn,
	audit *audit.Dispatcher,
) *ConvertToOrder {
	return &ConvertToOrder{
		repo:    repo,
		checkIn: checkIn,
		audit:   audit,
	}
}

// Execute turns an appointment into a service order: runs the check-in,
// links the new order onto the appointment and completes it. An appointment
// converts at most once.
func (uc *ConvertToOrder) Execute(
	ctx context.Context,
	appointmentID uint,
	in order.CheckInInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.ServiceOrderID != nil {
		return nil, httperr.Business("Appointment already converted to a service order")
	}

	// Pet, groomer and service come from the booking; the caller only adds
	// intake details like notes or a prepaid payment.
	in.PetID = ap.PetID
	groomerID := ap.GroomerID
	in.GroomerID = &groomerID
	in.ServiceTypeIDs = []uint{ap.ServiceTypeID}

	created, err := uc.checkIn.Execute(ctx, in)
	if err != nil {
		return nil, err
	}

	ap.ServiceOrderID = &created.ID
	ap.Status = string(domain.StatusCompleted)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "APPOINTMENT_CONVERTED",
		Entity:   "Appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
