package order

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPartial   PaymentStatus = "PARTIAL"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// DerivePaymentStatus computes the status from totals after a ledger write.
// CANCELLED is sticky and never derived here; hadRefund marks a fully
// refunded order as REFUNDED instead of back to PENDING.
func DerivePaymentStatus(totalPrice, totalPaid decimal.Decimal, hadRefund bool) PaymentStatus {
	switch {
	case totalPaid.IsZero() && hadRefund:
		return PaymentRefunded
	case totalPaid.IsZero():
		return PaymentPending
	case totalPaid.GreaterThanOrEqual(totalPrice):
		return PaymentPaid
	default:
		return PaymentPartial
	}
}

// AcceptsPayments reports whether new ledger entries may be recorded.
func AcceptsPayments(s PaymentStatus) bool {
	return s != PaymentCancelled && s != PaymentRefunded
}
