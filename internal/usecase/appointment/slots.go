package appointment

import (
	"context"
	"time"

	domain "github.com/cisnebranco/grooming-os/internal/domain/appointment"
	avdomain "github.com/cisnebranco/grooming-os/internal/domain/availability"
	"github.com/cisnebranco/grooming-os/internal/usecase/availability"
)

type GetAvailableSlots struct {
	repo   domain.Repository
	engine *availability.Engine
}

func NewGetAvailableSlots(
	repo domain.Repository,
	engine *availability.Engine,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:   repo,
		engine: engine,
	}
}

// Execute resolves the service duration and delegates slot generation to
// the availability engine.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	groomerID uint,
	serviceTypeID uint,
	date time.Time,
) ([]avdomain.TimeSlot, error) {

	if _, err := uc.repo.GetGroomer(ctx, groomerID); err != nil {
		return nil, err
	}

	serviceType, err := uc.repo.GetServiceType(ctx, serviceTypeID)
	if err != nil {
		return nil, err
	}

	return uc.engine.GenerateSlots(ctx, groomerID, date, serviceType.DurationMin)
}
