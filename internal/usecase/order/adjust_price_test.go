package order

import (
	"context"
	"strings"
	"testing"

	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

func seedOrderWithItems(repo *fakeOrderRepo, status domain.Status) *models.ServiceOrder {
	o := seedOrder(repo, status)
	o.ServiceItems = []models.OrderServiceItem{
		{
			ID:                   1,
			ServiceOrderID:       o.ID,
			ServiceTypeID:        1,
			LockedPrice:          dec("50.00"),
			FinalPrice:           dec("50.00"),
			LockedCommissionRate: dec("0.40"),
			CommissionValue:      dec("20.00"),
		},
		{
			ID:                   2,
			ServiceOrderID:       o.ID,
			ServiceTypeID:        2,
			LockedPrice:          dec("80.00"),
			FinalPrice:           dec("80.00"),
			LockedCommissionRate: dec("0.50"),
			CommissionValue:      dec("40.00"),
		},
	}
	o.TotalPrice = dec("130.00")
	o.TotalCommission = dec("60.00")
	return o
}

func TestAdjustItemPriceRecomputesTotals(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedOrderWithItems(repo, domain.StatusInProgress)

	uc := NewAdjustItemPrice(repo, nil, nil)

	got, err := uc.Execute(context.Background(), AdjustItemPriceInput{
		OrderID:  o.ID,
		ItemID:   1,
		NewPrice: dec("75.00"),
		Reason:   "matting surcharge",
		ActorID:  7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := got.ServiceItems[0]
	if !item.FinalPrice.Equal(dec("75.00")) {
		t.Errorf("final price = %s, want 75.00", item.FinalPrice)
	}
	if !item.LockedPrice.Equal(dec("50.00")) {
		t.Errorf("locked price must stay 50.00, got %s", item.LockedPrice)
	}
	if !item.CommissionValue.Equal(dec("30.00")) {
		t.Errorf("commission = %s, want 30.00 (75.00 x 0.40)", item.CommissionValue)
	}

	if !got.TotalPrice.Equal(dec("155.00")) {
		t.Errorf("total price = %s, want 155.00", got.TotalPrice)
	}
	if !got.TotalCommission.Equal(dec("70.00")) {
		t.Errorf("total commission = %s, want 70.00", got.TotalCommission)
	}
}

func TestAdjustItemPriceFloor(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedOrderWithItems(repo, domain.StatusWaiting)

	uc := NewAdjustItemPrice(repo, nil, nil)

	_, err := uc.Execute(context.Background(), AdjustItemPriceInput{
		OrderID:  o.ID,
		ItemID:   1,
		NewPrice: dec("49.99"),
		ActorID:  7,
	})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error below base price, got %v", err)
	}
	if !strings.Contains(err.Error(), "below the base price") {
		t.Errorf("error = %q", err)
	}
}

func TestAdjustItemPriceCap(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedOrderWithItems(repo, domain.StatusWaiting)

	uc := NewAdjustItemPrice(repo, nil, nil)

	// 3x the 50.00 base is allowed, a cent above is not.
	if _, err := uc.Execute(context.Background(), AdjustItemPriceInput{
		OrderID: o.ID, ItemID: 1, NewPrice: dec("150.00"), ActorID: 7,
	}); err != nil {
		t.Fatalf("3x base should be accepted: %v", err)
	}

	_, err := uc.Execute(context.Background(), AdjustItemPriceInput{
		OrderID: o.ID, ItemID: 1, NewPrice: dec("150.01"), ActorID: 7,
	})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error above 3x base, got %v", err)
	}
}

func TestAdjustItemPriceDeliveredIsImmutable(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedOrderWithItems(repo, domain.StatusDelivered)

	uc := NewAdjustItemPrice(repo, nil, nil)

	_, err := uc.Execute(context.Background(), AdjustItemPriceInput{
		OrderID:  o.ID,
		ItemID:   1,
		NewPrice: dec("60.00"),
		ActorID:  7,
	})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error for delivered order, got %v", err)
	}
}

func TestAdjustItemPriceForeignItem(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedOrderWithItems(repo, domain.StatusWaiting)

	uc := NewAdjustItemPrice(repo, nil, nil)

	_, err := uc.Execute(context.Background(), AdjustItemPriceInput{
		OrderID:  o.ID,
		ItemID:   99,
		NewPrice: dec("60.00"),
		ActorID:  7,
	})
	if !httperr.IsAccessDenied(err) {
		t.Fatalf("expected access denied for item outside the order, got %v", err)
	}
}
