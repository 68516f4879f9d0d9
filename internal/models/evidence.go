package models

import "time"

// InspectionPhoto is an evidentiary record only — the actual file lives in
// an external store referenced by URL. The order lifecycle gates on the
// record count, not the bytes.
type InspectionPhoto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceOrderID uint `gorm:"index;not null" json:"service_order_id"`

	URL     string `gorm:"size:500;not null" json:"url"`
	Caption string `gorm:"size:255" json:"caption"`

	CreatedAt time.Time `json:"created_at"`
}

type HealthChecklist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceOrderID uint `gorm:"uniqueIndex;not null" json:"service_order_id"`

	SkinOK  bool   `json:"skin_ok"`
	EarsOK  bool   `json:"ears_ok"`
	EyesOK  bool   `json:"eyes_ok"`
	NailsOK bool   `json:"nails_ok"`
	Remarks string `gorm:"size:500" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
