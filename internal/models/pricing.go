package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingMatrix is the (service type, species, size) price table.
type PricingMatrix struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceTypeID uint        `gorm:"uniqueIndex:uq_pricing_matrix" json:"service_type_id"`
	ServiceType   ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service_type"`

	Species Species `gorm:"size:10;not null;uniqueIndex:uq_pricing_matrix" json:"species"`
	PetSize PetSize `gorm:"size:10;not null;uniqueIndex:uq_pricing_matrix" json:"pet_size"`

	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BreedServicePrice overrides the matrix for a specific breed.
type BreedServicePrice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceTypeID uint        `gorm:"uniqueIndex:uq_service_breed" json:"service_type_id"`
	ServiceType   ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service_type"`

	BreedID uint  `gorm:"uniqueIndex:uq_service_breed" json:"breed_id"`
	Breed   Breed `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"breed"`

	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
