package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	GroomerID uint    `gorm:"index;not null" json:"groomer_id"`
	Groomer   Groomer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"groomer"`

	ServiceTypeID uint        `gorm:"not null" json:"service_type_id"`
	ServiceType   ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_type"`

	ScheduledStart time.Time `gorm:"not null" json:"scheduled_start"`
	ScheduledEnd   time.Time `gorm:"not null" json:"scheduled_end"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	// Set once the appointment is converted into a service order.
	ServiceOrderID *uint `gorm:"uniqueIndex" json:"service_order_id"`

	CancelledAt        *time.Time `json:"cancelled_at"`
	CancellationReason string     `gorm:"size:255" json:"cancellation_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
