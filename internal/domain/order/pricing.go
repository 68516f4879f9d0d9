package order

import (
	"github.com/shopspring/decimal"

	"github.com/cisnebranco/grooming-os/internal/models"
)

// CommissionValue is locked price x locked rate, rounded half-up to 2
// decimal places.
func CommissionValue(price, rate decimal.Decimal) decimal.Decimal {
	return price.Mul(rate).Round(2)
}

// Totals recomputes order sums from its items.
func Totals(items []models.OrderServiceItem) (price, commission decimal.Decimal) {
	price = decimal.Zero
	commission = decimal.Zero
	for _, it := range items {
		price = price.Add(it.FinalPrice)
		commission = commission.Add(it.CommissionValue)
	}
	return price, commission
}
