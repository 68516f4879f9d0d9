package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash       PaymentMethod = "CASH"
	MethodPix        PaymentMethod = "PIX"
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodDebitCard  PaymentMethod = "DEBIT_CARD"
)

// PaymentEvent is one entry of an order's append-only ledger. Positive
// amount = payment, negative = refund. Events are never updated or deleted;
// a refund is a new event pointing back at the original.
type PaymentEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceOrderID uint `gorm:"index;not null" json:"service_order_id"`

	Amount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method PaymentMethod   `gorm:"size:20;not null" json:"method"`

	TransactionRef string `gorm:"size:100" json:"transaction_ref"`
	Notes          string `gorm:"size:255" json:"notes"`

	// Set only on refund events: the payment this one negates.
	RefundedEventID *uint `gorm:"uniqueIndex" json:"refunded_event_id"`

	CreatedByID uint `gorm:"not null" json:"created_by_id"`
	CreatedBy   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
