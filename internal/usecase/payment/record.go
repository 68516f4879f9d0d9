package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cisnebranco/grooming-os/internal/audit"
	orderdomain "github.com/cisnebranco/grooming-os/internal/domain/order"
	domain "github.com/cisnebranco/grooming-os/internal/domain/payment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/realtime"
)

type RecordInput struct {
	OrderID        uint
	Amount         decimal.Decimal
	Method         models.PaymentMethod
	TransactionRef string
	Notes          string
	ActorID        uint
}

type RecordPayment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	broadcast *realtime.Broadcaster
}

func NewRecordPayment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	broadcast *realtime.Broadcaster,
) *RecordPayment {
	return &RecordPayment{
		repo:      repo,
		audit:     auditor,
		broadcast: broadcast,
	}
}

var validMethods = map[models.PaymentMethod]bool{
	models.MethodCash:       true,
	models.MethodPix:        true,
	models.MethodCreditCard: true,
	models.MethodDebitCard:  true,
}

// Execute appends a payment to the order ledger. The order row stays locked
// from the balance check through the commit, so two simultaneous payments
// cannot both read the same remaining balance and overdraw the order.
func (uc *RecordPayment) Execute(ctx context.Context, in RecordInput) (*models.PaymentEvent, error) {
	if !in.Amount.IsPositive() {
		return nil, httperr.Business("Payment amount must be greater than zero")
	}
	if !validMethods[in.Method] {
		return nil, httperr.Business("Unknown payment method: %s", in.Method)
	}

	ev := &models.PaymentEvent{
		ServiceOrderID: in.OrderID,
		Amount:         in.Amount,
		Method:         in.Method,
		TransactionRef: in.TransactionRef,
		Notes:          in.Notes,
		CreatedByID:    in.ActorID,
	}
	if ev.TransactionRef == "" {
		ev.TransactionRef = uuid.NewString()
	}

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, in.OrderID)
		if err != nil {
			return err
		}

		if !orderdomain.AcceptsPayments(orderdomain.PaymentStatus(o.PaymentStatus)) {
			return httperr.Business("Order #%d no longer accepts payments (status %s)", o.ID, o.PaymentStatus)
		}
		if o.TotalPrice.IsZero() {
			return httperr.Business("Order #%d has no billable amount", o.ID)
		}

		remaining := o.TotalPrice.Sub(o.TotalPaid)
		if in.Amount.GreaterThan(remaining) {
			return httperr.Business(
				"Payment of R$ %s exceeds the outstanding balance. Remaining: R$ %s",
				in.Amount.StringFixed(2), remaining.StringFixed(2))
		}

		if err := tx.CreateEvent(ctx, ev); err != nil {
			return err
		}

		o.TotalPaid = o.TotalPaid.Add(in.Amount)
		o.PaymentStatus = string(orderdomain.DerivePaymentStatus(o.TotalPrice, o.TotalPaid, false))
		return tx.SaveOrder(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "PAYMENT_RECORDED",
		Entity:   "PaymentEvent",
		EntityID: &ev.ID,
		Detail: fmt.Sprintf("Order #%d received R$ %s via %s",
			in.OrderID, in.Amount.StringFixed(2), in.Method),
	})
	uc.broadcast.Publish(realtime.Change{Entity: "service_order", Action: "payment", ID: in.OrderID})

	return ev, nil
}
