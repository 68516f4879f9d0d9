package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cisnebranco/grooming-os/internal/audit"
	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/realtime"
)

type AdjustItemPriceInput struct {
	OrderID  uint
	ItemID   uint
	NewPrice decimal.Decimal
	Reason   string
	ActorID  uint
}

type AdjustItemPrice struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	broadcast *realtime.Broadcaster
}

func NewAdjustItemPrice(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	broadcast *realtime.Broadcaster,
) *AdjustItemPrice {
	return &AdjustItemPrice{
		repo:      repo,
		audit:     auditor,
		broadcast: broadcast,
	}
}

// Execute replaces one item's locked price and recomputes its commission and
// the order totals, all under the order row lock so concurrent adjustments
// cannot produce stale sums. The floor is the item's base price and the cap
// is 3x that price; delivered orders are immutable.
func (uc *AdjustItemPrice) Execute(ctx context.Context, in AdjustItemPriceInput) (*models.ServiceOrder, error) {
	var result *models.ServiceOrder

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, in.OrderID)
		if err != nil {
			return err
		}

		if domain.Status(o.Status) == domain.StatusDelivered {
			return httperr.Business("Price adjustment is not allowed after delivery")
		}

		var item *models.OrderServiceItem
		for i := range o.ServiceItems {
			if o.ServiceItems[i].ID == in.ItemID {
				item = &o.ServiceItems[i]
				break
			}
		}
		if item == nil {
			return httperr.AccessDenied("Service item #%d does not belong to order #%d", in.ItemID, in.OrderID)
		}

		basePrice := item.LockedPrice
		if in.NewPrice.LessThan(basePrice) {
			return httperr.Business(
				"Adjusted price cannot be below the base price (R$ %s)", basePrice.StringFixed(2))
		}
		maxPrice := basePrice.Mul(decimal.NewFromInt(3))
		if in.NewPrice.GreaterThan(maxPrice) {
			return httperr.Business(
				"Adjusted price cannot exceed 3x the base price (max R$ %s)", maxPrice.StringFixed(2))
		}

		previous := item.FinalPrice
		item.FinalPrice = in.NewPrice
		item.CommissionValue = domain.CommissionValue(in.NewPrice, item.LockedCommissionRate)

		o.TotalPrice, o.TotalCommission = domain.Totals(o.ServiceItems)

		if err := tx.SaveOrder(ctx, o); err != nil {
			return err
		}

		detail := fmt.Sprintf("Order #%d item #%d adjusted from R$ %s to R$ %s",
			in.OrderID, in.ItemID, previous.StringFixed(2), in.NewPrice.StringFixed(2))
		if in.Reason != "" {
			detail += " — motivo: " + in.Reason
		}
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ActorID,
			Action:   "PRICE_ADJUSTED",
			Entity:   "OrderServiceItem",
			EntityID: &in.ItemID,
			Detail:   detail,
		})

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.broadcast.Publish(realtime.Change{Entity: "service_order", Action: "updated", ID: in.OrderID})

	return result, nil
}
