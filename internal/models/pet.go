package models

import "time"

type Species string

const (
	SpeciesDog Species = "DOG"
	SpeciesCat Species = "CAT"
)

type PetSize string

const (
	SizeSmall  PetSize = "SMALL"
	SizeMedium PetSize = "MEDIUM"
	SizeLarge  PetSize = "LARGE"
)

type Breed struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Species Species `gorm:"size:10;not null" json:"species"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BreedID *uint  `json:"breed_id"`
	Breed   *Breed `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"breed,omitempty"`

	Name    string  `gorm:"size:100;not null" json:"name"`
	Species Species `gorm:"size:10;not null" json:"species"`
	Size    PetSize `gorm:"size:10;not null" json:"size"`
	Notes   string  `gorm:"size:255" json:"notes"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
