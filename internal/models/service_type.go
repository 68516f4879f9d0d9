package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name string `gorm:"size:100;not null" json:"name"`

	DurationMin    int             `gorm:"not null" json:"duration_min"`
	CommissionRate decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"commission_rate"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
