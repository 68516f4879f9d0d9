package payment

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

func TestRefundNegatesOriginal(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	record := NewRecordPayment(repo, nil, nil)
	refund := NewRefundPayment(repo, nil, nil)

	original, err := record.Execute(context.Background(), RecordInput{
		OrderID: 1, Amount: dec("130.00"), Method: models.MethodCreditCard, ActorID: 7,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if repo.orders[1].PaymentStatus != "PAID" {
		t.Fatalf("precondition: status = %s, want PAID", repo.orders[1].PaymentStatus)
	}

	ev, err := refund.Execute(context.Background(), RefundInput{
		OrderID: 1, EventID: original.ID, Reason: "client cancelled pickup", ActorID: 7,
	})
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if !ev.Amount.Equal(dec("-130.00")) {
		t.Errorf("refund amount = %s, want -130.00", ev.Amount)
	}
	if ev.RefundedEventID == nil || *ev.RefundedEventID != original.ID {
		t.Error("refund must link back to the original event")
	}
	if ev.Method != original.Method {
		t.Errorf("refund method = %s, want %s", ev.Method, original.Method)
	}

	o := repo.orders[1]
	if !o.TotalPaid.IsZero() {
		t.Errorf("TotalPaid = %s, want 0", o.TotalPaid)
	}
	if o.PaymentStatus != "REFUNDED" {
		t.Errorf("status = %s, want REFUNDED", o.PaymentStatus)
	}
	if !o.TotalPaid.Equal(signedSum(repo, 1)) {
		t.Errorf("TotalPaid %s diverged from ledger sum %s", o.TotalPaid, signedSum(repo, 1))
	}
}

func TestRefundOnlyOnce(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	record := NewRecordPayment(repo, nil, nil)
	refund := NewRefundPayment(repo, nil, nil)

	original, err := record.Execute(context.Background(), RecordInput{
		OrderID: 1, Amount: dec("50.00"), Method: models.MethodPix,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := refund.Execute(context.Background(), RefundInput{OrderID: 1, EventID: original.ID}); err != nil {
		t.Fatalf("first refund: %v", err)
	}

	_, err = refund.Execute(context.Background(), RefundInput{OrderID: 1, EventID: original.ID})
	if !httperr.IsBusiness(err) {
		t.Fatalf("second refund: expected business error, got %v", err)
	}
	if !strings.Contains(err.Error(), "already been refunded") {
		t.Errorf("second refund message = %q", err.Error())
	}
}

func TestRefundRejectsRefundEvents(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	record := NewRecordPayment(repo, nil, nil)
	refund := NewRefundPayment(repo, nil, nil)

	original, err := record.Execute(context.Background(), RecordInput{
		OrderID: 1, Amount: dec("50.00"), Method: models.MethodPix,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	counter, err := refund.Execute(context.Background(), RefundInput{OrderID: 1, EventID: original.ID})
	if err != nil {
		t.Fatalf("refund: %v", err)
	}

	// Refunding the counter-event would re-credit money out of thin air.
	_, err = refund.Execute(context.Background(), RefundInput{OrderID: 1, EventID: counter.ID})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Only payment events") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRefundWrongOrder(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	other := &models.ServiceOrder{ID: 2, PetID: 2, Status: "IN_PROGRESS", TotalPrice: dec("80.00"), PaymentStatus: "PENDING"}
	repo.orders[2] = other

	record := NewRecordPayment(repo, nil, nil)
	refund := NewRefundPayment(repo, nil, nil)

	ev, err := record.Execute(context.Background(), RecordInput{
		OrderID: 2, Amount: dec("20.00"), Method: models.MethodCash,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	_, err = refund.Execute(context.Background(), RefundInput{OrderID: 1, EventID: ev.ID})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error, got %v", err)
	}
	if !strings.Contains(err.Error(), "does not belong") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRefundUnknownEvent(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	refund := NewRefundPayment(repo, nil, nil)

	if _, err := refund.Execute(context.Background(), RefundInput{OrderID: 1, EventID: 99}); !httperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

// TestLedgerInvariant hammers one order with interleaved payments and
// refunds from several goroutines. Whatever the interleaving, the balance
// must stay within [0, price] and match the signed sum of the ledger.
func TestLedgerInvariant(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "200.00")
	record := NewRecordPayment(repo, nil, nil)
	refund := NewRefundPayment(repo, nil, nil)

	var (
		mu       sync.Mutex
		eventIDs []uint
	)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 50; i++ {
				if rng.Intn(3) == 0 {
					mu.Lock()
					var id uint
					if len(eventIDs) > 0 {
						id = eventIDs[rng.Intn(len(eventIDs))]
					}
					mu.Unlock()
					if id == 0 {
						continue
					}
					// Double refunds and drained balances are expected here;
					// the usecase must reject them without corrupting state.
					refund.Execute(context.Background(), RefundInput{OrderID: 1, EventID: id})
					continue
				}
				amount := decimal.NewFromInt(int64(rng.Intn(40) + 1))
				ev, err := record.Execute(context.Background(), RecordInput{
					OrderID: 1, Amount: amount, Method: models.MethodPix,
				})
				if err == nil {
					mu.Lock()
					eventIDs = append(eventIDs, ev.ID)
					mu.Unlock()
				}
			}
		}(int64(g) + 1)
	}
	wg.Wait()

	o := repo.orders[1]
	if o.TotalPaid.IsNegative() {
		t.Errorf("TotalPaid went negative: %s", o.TotalPaid)
	}
	if o.TotalPaid.GreaterThan(o.TotalPrice) {
		t.Errorf("TotalPaid %s exceeds price %s", o.TotalPaid, o.TotalPrice)
	}
	if !o.TotalPaid.Equal(signedSum(repo, 1)) {
		t.Errorf("TotalPaid %s diverged from ledger sum %s", o.TotalPaid, signedSum(repo, 1))
	}

	refunds := map[uint]int{}
	for _, ev := range repo.events {
		if ev.RefundedEventID != nil {
			refunds[*ev.RefundedEventID]++
		}
	}
	for id, n := range refunds {
		if n > 1 {
			t.Errorf("event #%d was refunded %d times", id, n)
		}
	}
}
