package models

import "time"

// AvailabilityWindow is a recurring weekly interval during which a groomer
// may be booked. DayOfWeek is ISO: Monday=1 .. Sunday=7. Times are "15:04"
// strings interpreted in the shop timezone. Windows are never hard-deleted;
// deactivation preserves history.
type AvailabilityWindow struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GroomerID uint    `gorm:"index;not null" json:"groomer_id"`
	Groomer   Groomer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"groomer"`

	DayOfWeek int `gorm:"not null" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
