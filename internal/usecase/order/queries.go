package order

import (
	"context"
	"time"

	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

func (uc *ListOrders) Execute(ctx context.Context, from, to *time.Time, status string) ([]models.ServiceOrder, error) {
	return uc.repo.ListOrders(ctx, from, to, status)
}

func (uc *ListOrders) ByGroomer(ctx context.Context, groomerID uint) ([]models.ServiceOrder, error) {
	return uc.repo.ListOrdersByGroomer(ctx, groomerID)
}
