package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cisnebranco/grooming-os/internal/audit"
	orderdomain "github.com/cisnebranco/grooming-os/internal/domain/order"
	domain "github.com/cisnebranco/grooming-os/internal/domain/payment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/realtime"
)

type RefundInput struct {
	OrderID uint
	EventID uint
	Reason  string
	ActorID uint
}

type RefundPayment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	broadcast *realtime.Broadcaster
}

func NewRefundPayment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	broadcast *realtime.Broadcaster,
) *RefundPayment {
	return &RefundPayment{
		repo:      repo,
		audit:     auditor,
		broadcast: broadcast,
	}
}

// Execute negates one prior payment event. The original is never touched; a
// counter-event with the negated amount is appended and linked back via
// RefundedEventID, whose unique index makes double refunds impossible even
// across concurrent requests.
func (uc *RefundPayment) Execute(ctx context.Context, in RefundInput) (*models.PaymentEvent, error) {
	var refund *models.PaymentEvent

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, in.OrderID)
		if err != nil {
			return err
		}

		original, err := tx.GetEvent(ctx, in.EventID)
		if err != nil {
			return err
		}
		if original.ServiceOrderID != in.OrderID {
			return httperr.Business("Payment event #%d does not belong to order #%d", in.EventID, in.OrderID)
		}
		if original.RefundedEventID != nil || !original.Amount.IsPositive() {
			return httperr.Business("Only payment events can be refunded")
		}

		refunded, err := tx.HasRefund(ctx, original.ID)
		if err != nil {
			return err
		}
		if refunded {
			return httperr.Business("Payment event #%d has already been refunded", original.ID)
		}

		newPaid := o.TotalPaid.Sub(original.Amount)
		if newPaid.IsNegative() {
			return httperr.Business("Refund would drive the order balance below zero")
		}

		refund = &models.PaymentEvent{
			ServiceOrderID:  in.OrderID,
			Amount:          original.Amount.Neg(),
			Method:          original.Method,
			TransactionRef:  uuid.NewString(),
			Notes:           in.Reason,
			RefundedEventID: &original.ID,
			CreatedByID:     in.ActorID,
		}
		if err := tx.CreateEvent(ctx, refund); err != nil {
			return err
		}

		o.TotalPaid = newPaid
		o.PaymentStatus = string(orderdomain.DerivePaymentStatus(o.TotalPrice, o.TotalPaid, true))
		return tx.SaveOrder(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "PAYMENT_REFUNDED",
		Entity:   "PaymentEvent",
		EntityID: &refund.ID,
		Detail: fmt.Sprintf("Order #%d refunded R$ %s (event #%d)",
			in.OrderID, refund.Amount.Abs().StringFixed(2), in.EventID),
	})
	uc.broadcast.Publish(realtime.Change{Entity: "service_order", Action: "payment", ID: in.OrderID})

	return refund, nil
}
