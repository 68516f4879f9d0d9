package payment

import (
	"context"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type Repository interface {
	// InTx runs fn against a transaction-scoped repository. Both recording
	// and refunding acquire the order row lock inside fn before any balance
	// check and hold it until commit — never check-then-lock.
	InTx(ctx context.Context, fn func(tx Repository) error) error

	// GetOrderForUpdate locks the order row (FOR UPDATE NOWAIT); lock misses
	// surface as retryable LockContention.
	GetOrderForUpdate(ctx context.Context, orderID uint) (*models.ServiceOrder, error)
	SaveOrder(ctx context.Context, o *models.ServiceOrder) error

	OrderExists(ctx context.Context, orderID uint) (bool, error)

	GetEvent(ctx context.Context, eventID uint) (*models.PaymentEvent, error)
	HasRefund(ctx context.Context, originalEventID uint) (bool, error)
	CreateEvent(ctx context.Context, ev *models.PaymentEvent) error
	ListEvents(ctx context.Context, orderID uint) ([]models.PaymentEvent, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)
}
