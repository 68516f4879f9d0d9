package order

import (
	"context"
	"fmt"

	"github.com/cisnebranco/grooming-os/internal/audit"
	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/realtime"
)

type AssignGroomer struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	broadcast *realtime.Broadcaster
}

func NewAssignGroomer(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	broadcast *realtime.Broadcaster,
) *AssignGroomer {
	return &AssignGroomer{
		repo:      repo,
		audit:     auditor,
		broadcast: broadcast,
	}
}

// Execute replaces the assigned groomer at any lifecycle stage. Reassigning
// the same groomer is a no-op so the audit trail stays free of noise.
func (uc *AssignGroomer) Execute(
	ctx context.Context,
	orderID uint,
	groomerID uint,
	actorID uint,
) (*models.ServiceOrder, error) {

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.GroomerID != nil && *o.GroomerID == groomerID {
		return o, nil
	}
	previous := o.GroomerID

	groomer, err := uc.repo.GetGroomer(ctx, groomerID)
	if err != nil {
		return nil, err
	}
	if !groomer.Active {
		return nil, httperr.Business("Cannot assign groomer #%d: groomer is inactive", groomerID)
	}

	o.GroomerID = &groomer.ID
	o.Groomer = groomer

	if err := uc.repo.SaveOrder(ctx, o); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("Groomer changed to #%d", groomerID)
	if previous != nil {
		detail = fmt.Sprintf("Groomer changed from #%d to #%d", *previous, groomerID)
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "GROOMER_REASSIGNED",
		Entity:   "ServiceOrder",
		EntityID: &o.ID,
		Detail:   detail,
	})

	uc.broadcast.Publish(realtime.Change{Entity: "service_order", Action: "updated", ID: o.ID})

	return o, nil
}
