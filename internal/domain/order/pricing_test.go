package order

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cisnebranco/grooming-os/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCommissionValue(t *testing.T) {
	cases := []struct {
		name  string
		price string
		rate  string
		want  string
	}{
		{"bath at 40 percent", "50.00", "0.40", "20.00"},
		{"scissor cut at 50 percent", "80.00", "0.50", "40.00"},
		{"rounds half up", "33.33", "0.33", "11.00"},
		{"half cent rounds up", "10.05", "0.50", "5.03"},
		{"zero rate", "100.00", "0", "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CommissionValue(dec(tc.price), dec(tc.rate))
			if !got.Equal(dec(tc.want)) {
				t.Errorf("CommissionValue(%s, %s) = %s, want %s", tc.price, tc.rate, got, tc.want)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	items := []models.OrderServiceItem{
		{FinalPrice: dec("50.00"), CommissionValue: dec("20.00")},
		{FinalPrice: dec("80.00"), CommissionValue: dec("40.00")},
	}

	price, commission := Totals(items)
	if !price.Equal(dec("130.00")) {
		t.Errorf("total price = %s, want 130.00", price)
	}
	if !commission.Equal(dec("60.00")) {
		t.Errorf("total commission = %s, want 60.00", commission)
	}
}

func TestTotalsUsesFinalPrice(t *testing.T) {
	items := []models.OrderServiceItem{
		{LockedPrice: dec("50.00"), FinalPrice: dec("75.00"), CommissionValue: dec("30.00")},
	}

	price, _ := Totals(items)
	if !price.Equal(dec("75.00")) {
		t.Errorf("total price = %s, want the adjusted 75.00", price)
	}
}
