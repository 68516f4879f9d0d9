package order

import (
	"context"
	"fmt"

	"github.com/cisnebranco/grooming-os/internal/audit"
	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/notify"
	"github.com/cisnebranco/grooming-os/internal/realtime"
	"github.com/cisnebranco/grooming-os/internal/timezone"
)

type UpdateStatus struct {
	repo      domain.Repository
	notify    *notify.Dispatcher
	audit     *audit.Dispatcher
	broadcast *realtime.Broadcaster
}

func NewUpdateStatus(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	broadcast *realtime.Broadcaster,
) *UpdateStatus {
	return &UpdateStatus{
		repo:      repo,
		notify:    notifier,
		audit:     auditor,
		broadcast: broadcast,
	}
}

// Execute walks the order one rung up the WAITING -> IN_PROGRESS -> READY ->
// DELIVERED ladder. READY is gated on evidence: at least 3 inspection photos
// and a health checklist, each failure named so the operator knows what is
// missing.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	orderID uint,
	target domain.Status,
	actorID uint,
) (*models.ServiceOrder, error) {

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	current := domain.Status(o.Status)
	if err := domain.ValidateTransition(current, target); err != nil {
		return nil, err
	}

	if target == domain.StatusReady {
		if err := uc.validateReadyGates(ctx, orderID); err != nil {
			return nil, err
		}
	}

	now := timezone.Now()
	switch target {
	case domain.StatusInProgress:
		o.StartedAt = &now
	case domain.StatusReady:
		o.FinishedAt = &now
	case domain.StatusDelivered:
		o.DeliveredAt = &now
	}
	o.Status = string(target)

	if err := uc.repo.SaveOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "STATUS_CHANGED",
		Entity:   "ServiceOrder",
		EntityID: &o.ID,
		Detail:   fmt.Sprintf("%s -> %s", current, target),
	})

	if target == domain.StatusReady {
		uc.notify.Dispatch(notify.Message{
			Kind:       notify.KindReady,
			Phone:      o.Pet.Client.Phone,
			PetName:    o.Pet.Name,
			ClientName: o.Pet.Client.Name,
		})
	}

	uc.broadcast.Publish(realtime.Change{Entity: "service_order", Action: "status_changed", ID: o.ID})

	return o, nil
}

func (uc *UpdateStatus) validateReadyGates(ctx context.Context, orderID uint) error {
	photos, err := uc.repo.CountInspectionPhotos(ctx, orderID)
	if err != nil {
		return err
	}
	if photos < 3 {
		return httperr.Business(
			"Minimum 3 inspection photos required before marking READY (current: %d)", photos)
	}

	hasChecklist, err := uc.repo.HasHealthChecklist(ctx, orderID)
	if err != nil {
		return err
	}
	if !hasChecklist {
		return httperr.Business("Health checklist required before marking READY")
	}
	return nil
}
