package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrder is the trackable unit of work created when a pet is checked
// in. Prices and commission rates are locked onto its items at intake and
// survive later catalog changes. Balance fields are computed at read time
// from stored columns, never persisted.
type ServiceOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	GroomerID *uint    `gorm:"index" json:"groomer_id"`
	Groomer   *Groomer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"groomer,omitempty"`

	Status string `gorm:"size:20;default:'WAITING'" json:"status"`

	TotalPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	TotalCommission decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_commission"`
	TotalPaid       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_paid"`

	PaymentStatus string `gorm:"size:20;default:'PENDING'" json:"payment_status"`

	StartedAt   *time.Time `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at"`
	DeliveredAt *time.Time `json:"delivered_at"`

	Notes string `gorm:"size:255" json:"notes"`

	ServiceItems []OrderServiceItem `gorm:"constraint:OnDelete:CASCADE;" json:"service_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Balance is the shop's take: price minus groomer commission.
func (o *ServiceOrder) Balance() decimal.Decimal {
	return o.TotalPrice.Sub(o.TotalCommission)
}

// PaymentBalance is what the client still owes.
func (o *ServiceOrder) PaymentBalance() decimal.Decimal {
	return o.TotalPrice.Sub(o.TotalPaid)
}

type OrderServiceItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceOrderID uint `gorm:"index;not null" json:"service_order_id"`

	ServiceTypeID uint        `gorm:"not null" json:"service_type_id"`
	ServiceType   ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_type"`

	// LockedPrice never changes after check-in; FinalPrice starts equal to
	// it and absorbs later adjustments. Totals are computed from FinalPrice.
	LockedPrice          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"locked_price"`
	FinalPrice           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"final_price"`
	LockedCommissionRate decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"locked_commission_rate"`
	CommissionValue      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"commission_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
