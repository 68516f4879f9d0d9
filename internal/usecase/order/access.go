package order

import (
	"context"

	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type EnforceAccess struct {
	repo domain.Repository
}

func NewEnforceAccess(repo domain.Repository) *EnforceAccess {
	return &EnforceAccess{repo: repo}
}

// Execute loads the order and checks the principal may see it. Admins and
// receptionists see everything; a groomer-scoped user only sees orders
// assigned to their own groomer record.
func (uc *EnforceAccess) Execute(ctx context.Context, orderID uint, p domain.Principal) (*models.ServiceOrder, error) {
	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if p.Privileged() {
		return o, nil
	}
	if p.GroomerID != nil && o.GroomerID != nil && *p.GroomerID == *o.GroomerID {
		return o, nil
	}
	return nil, httperr.AccessDenied("You do not have access to order #%d", orderID)
}
