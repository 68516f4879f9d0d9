package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

func TestRecordPaymentDerivesStatus(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	uc := NewRecordPayment(repo, nil, nil)

	ev, err := uc.Execute(context.Background(), RecordInput{
		OrderID: 1, Amount: dec("40.00"), Method: models.MethodPix, ActorID: 7,
	})
	if err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if ev.TransactionRef == "" {
		t.Error("expected a generated transaction ref")
	}
	o := repo.orders[1]
	if o.PaymentStatus != "PARTIAL" {
		t.Errorf("after 40 of 130: status = %s, want PARTIAL", o.PaymentStatus)
	}
	if !o.TotalPaid.Equal(dec("40.00")) {
		t.Errorf("TotalPaid = %s, want 40.00", o.TotalPaid)
	}

	if _, err := uc.Execute(context.Background(), RecordInput{
		OrderID: 1, Amount: dec("90.00"), Method: models.MethodCash, ActorID: 7,
	}); err != nil {
		t.Fatalf("settling payment: %v", err)
	}
	if got := repo.orders[1].PaymentStatus; got != "PAID" {
		t.Errorf("after full payment: status = %s, want PAID", got)
	}
	if !repo.orders[1].TotalPaid.Equal(signedSum(repo, 1)) {
		t.Errorf("TotalPaid %s diverged from ledger sum %s", repo.orders[1].TotalPaid, signedSum(repo, 1))
	}
}

func TestRecordPaymentOverdraft(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	uc := NewRecordPayment(repo, nil, nil)

	if _, err := uc.Execute(context.Background(), RecordInput{
		OrderID: 1, Amount: dec("40.00"), Method: models.MethodPix, ActorID: 7,
	}); err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	_, err := uc.Execute(context.Background(), RecordInput{
		OrderID: 1, Amount: dec("100.00"), Method: models.MethodPix, ActorID: 7,
	})
	if !httperr.IsBusiness(err) {
		t.Fatalf("expected business error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Remaining: R$ 90.00") {
		t.Errorf("overdraft message should carry the remaining balance, got %q", err.Error())
	}
	if !repo.orders[1].TotalPaid.Equal(dec("40.00")) {
		t.Errorf("rejected payment must not touch TotalPaid, got %s", repo.orders[1].TotalPaid)
	}
	if n := len(repo.events); n != 1 {
		t.Errorf("rejected payment must not append events, ledger has %d", n)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	uc := NewRecordPayment(repo, nil, nil)

	cases := []struct {
		name string
		in   RecordInput
	}{
		{"zero amount", RecordInput{OrderID: 1, Amount: dec("0"), Method: models.MethodPix}},
		{"negative amount", RecordInput{OrderID: 1, Amount: dec("-10.00"), Method: models.MethodPix}},
		{"unknown method", RecordInput{OrderID: 1, Amount: dec("10.00"), Method: "CHEQUE"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Execute(context.Background(), tc.in); !httperr.IsBusiness(err) {
				t.Errorf("expected business error, got %v", err)
			}
		})
	}
}

func TestRecordPaymentRejectsClosedStatuses(t *testing.T) {
	for _, status := range []string{"CANCELLED", "REFUNDED"} {
		t.Run(status, func(t *testing.T) {
			repo := newFakePaymentRepo()
			o := seedOrder(repo, "130.00")
			o.PaymentStatus = status
			uc := NewRecordPayment(repo, nil, nil)

			_, err := uc.Execute(context.Background(), RecordInput{
				OrderID: 1, Amount: dec("10.00"), Method: models.MethodCash,
			})
			if !httperr.IsBusiness(err) {
				t.Fatalf("expected business error, got %v", err)
			}
			if !strings.Contains(err.Error(), status) {
				t.Errorf("error should name the closed status, got %q", err.Error())
			}
		})
	}
}

func TestRecordPaymentUnknownOrder(t *testing.T) {
	repo := newFakePaymentRepo()
	uc := NewRecordPayment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), RecordInput{
		OrderID: 42, Amount: dec("10.00"), Method: models.MethodCash,
	})
	if !httperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestPaymentHistory(t *testing.T) {
	repo := newFakePaymentRepo()
	seedOrder(repo, "130.00")
	uc := NewRecordPayment(repo, nil, nil)
	for _, amount := range []string{"30.00", "50.00"} {
		if _, err := uc.Execute(context.Background(), RecordInput{
			OrderID: 1, Amount: dec(amount), Method: models.MethodPix,
		}); err != nil {
			t.Fatalf("seed payment %s: %v", amount, err)
		}
	}

	history := NewPaymentHistory(repo)
	events, err := history.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if !events[0].Amount.Equal(dec("50.00")) {
		t.Errorf("events should come newest first, got %s on top", events[0].Amount)
	}

	if _, err := history.Execute(context.Background(), 42); !httperr.IsNotFound(err) {
		t.Errorf("history of unknown order: expected not found, got %v", err)
	}
}
