package appointment

import (
	"context"
	"time"

	domain "github.com/cisnebranco/grooming-os/internal/domain/appointment"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ByDateRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	return uc.repo.ListByDateRange(ctx, start, end)
}

func (uc *ListAppointments) ByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return uc.repo.ListByClient(ctx, clientID)
}
