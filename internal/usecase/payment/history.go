package payment

import (
	"context"

	domain "github.com/cisnebranco/grooming-os/internal/domain/payment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type PaymentHistory struct {
	repo domain.Repository
}

func NewPaymentHistory(repo domain.Repository) *PaymentHistory {
	return &PaymentHistory{repo: repo}
}

// Execute returns the order's ledger, newest first. An order with no events
// yet yields an empty list, but an order that does not exist is a 404.
func (uc *PaymentHistory) Execute(ctx context.Context, orderID uint) ([]models.PaymentEvent, error) {
	exists, err := uc.repo.OrderExists(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.NotFoundErr("Service order", orderID)
	}
	return uc.repo.ListEvents(ctx, orderID)
}
