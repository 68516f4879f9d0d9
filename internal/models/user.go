package models

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleReceptionist UserRole = "RECEPTIONIST"
	RoleGroomer      UserRole = "GROOMER"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Role         UserRole `gorm:"size:20;default:'RECEPTIONIST'" json:"role"`

	// Set only for GROOMER users; scopes what they may act on.
	GroomerID *uint    `json:"groomer_id"`
	Groomer   *Groomer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"groomer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
