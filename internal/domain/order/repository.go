package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type Repository interface {
	// InTx runs fn against a transaction-scoped repository; row locks taken
	// inside are held until fn returns and the transaction commits or rolls
	// back.
	InTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Reference lookups --------
	GetActivePet(ctx context.Context, id uint) (*models.Pet, error)
	GetGroomer(ctx context.Context, id uint) (*models.Groomer, error)
	GetActiveServiceType(ctx context.Context, id uint) (*models.ServiceType, error)

	// -------- Pricing resolution --------
	FindBreedPrice(ctx context.Context, serviceTypeID, breedID uint) (decimal.Decimal, bool, error)
	FindMatrixPrice(ctx context.Context, serviceTypeID uint, species models.Species, size models.PetSize) (decimal.Decimal, bool, error)

	// -------- Order --------
	// CreateOrder persists the order with its items and, when prepaid is
	// non-nil, the prepaid payment event — all in one transaction.
	CreateOrder(ctx context.Context, o *models.ServiceOrder, prepaid *models.PaymentEvent) error
	GetOrder(ctx context.Context, id uint) (*models.ServiceOrder, error)
	// GetOrderForUpdate takes the per-order row lock (NOWAIT) before the
	// read; surfaces LockContention when the lock is held.
	GetOrderForUpdate(ctx context.Context, id uint) (*models.ServiceOrder, error)
	SaveOrder(ctx context.Context, o *models.ServiceOrder) error

	ListOrders(ctx context.Context, from, to *time.Time, status string) ([]models.ServiceOrder, error)
	ListOrdersByGroomer(ctx context.Context, groomerID uint) ([]models.ServiceOrder, error)

	// -------- Evidence gates --------
	CountInspectionPhotos(ctx context.Context, orderID uint) (int64, error)
	HasHealthChecklist(ctx context.Context, orderID uint) (bool, error)
}
