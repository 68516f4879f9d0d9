package order

import "github.com/cisnebranco/grooming-os/internal/models"

// Principal is the acting user as seen by the order layer. GroomerID is set
// only for groomer-scoped users.
type Principal struct {
	UserID    uint
	Role      models.UserRole
	GroomerID *uint
}

func (p Principal) Privileged() bool {
	return p.Role != models.RoleGroomer
}
