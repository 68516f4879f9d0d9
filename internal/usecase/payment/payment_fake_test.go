package payment

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/cisnebranco/grooming-os/internal/domain/payment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

// fakePaymentRepo keeps the ledger in memory. InTx serializes callers the
// way the order row lock does in Postgres, so interleaving tests exercise
// the real locking discipline.
type fakePaymentRepo struct {
	mu sync.Mutex

	orders map[uint]*models.ServiceOrder
	events []*models.PaymentEvent
	users  map[uint]*models.User
	nextID uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		orders: map[uint]*models.ServiceOrder{},
		users:  map[uint]*models.User{},
	}
}

func (f *fakePaymentRepo) InTx(_ context.Context, fn func(tx domain.Repository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f)
}

func (f *fakePaymentRepo) GetOrderForUpdate(_ context.Context, orderID uint) (*models.ServiceOrder, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, httperr.NotFoundErr("Service order", orderID)
	}
	return o, nil
}

func (f *fakePaymentRepo) SaveOrder(_ context.Context, o *models.ServiceOrder) error {
	if _, ok := f.orders[o.ID]; !ok {
		return httperr.NotFoundErr("Service order", o.ID)
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakePaymentRepo) OrderExists(_ context.Context, orderID uint) (bool, error) {
	_, ok := f.orders[orderID]
	return ok, nil
}

func (f *fakePaymentRepo) GetEvent(_ context.Context, eventID uint) (*models.PaymentEvent, error) {
	for _, ev := range f.events {
		if ev.ID == eventID {
			return ev, nil
		}
	}
	return nil, httperr.NotFoundErr("Payment event", eventID)
}

func (f *fakePaymentRepo) HasRefund(_ context.Context, originalEventID uint) (bool, error) {
	for _, ev := range f.events {
		if ev.RefundedEventID != nil && *ev.RefundedEventID == originalEventID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentRepo) CreateEvent(_ context.Context, ev *models.PaymentEvent) error {
	if ev.RefundedEventID != nil {
		for _, existing := range f.events {
			if existing.RefundedEventID != nil && *existing.RefundedEventID == *ev.RefundedEventID {
				return httperr.Business("Payment event has already been refunded")
			}
		}
	}
	f.nextID++
	ev.ID = f.nextID
	ev.CreatedAt = time.Now()
	f.events = append(f.events, ev)
	return nil
}

func (f *fakePaymentRepo) ListEvents(_ context.Context, orderID uint) ([]models.PaymentEvent, error) {
	var out []models.PaymentEvent
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].ServiceOrderID == orderID {
			out = append(out, *f.events[i])
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.NotFoundErr("User", id)
	}
	return u, nil
}

var _ domain.Repository = (*fakePaymentRepo)(nil)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedOrder(f *fakePaymentRepo, price string) *models.ServiceOrder {
	o := &models.ServiceOrder{
		ID:            1,
		PetID:         1,
		Status:        "IN_PROGRESS",
		TotalPrice:    dec(price),
		TotalPaid:     decimal.Zero,
		PaymentStatus: "PENDING",
	}
	f.orders[o.ID] = o
	return o
}

// signedSum recomputes what TotalPaid must equal from the ledger.
func signedSum(f *fakePaymentRepo, orderID uint) decimal.Decimal {
	sum := decimal.Zero
	for _, ev := range f.events {
		if ev.ServiceOrderID == orderID {
			sum = sum.Add(ev.Amount)
		}
	}
	return sum
}
