package appointment

import (
	"context"
	"time"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type Repository interface {
	// -------- Reference lookups --------
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetPet(ctx context.Context, id uint) (*models.Pet, error)
	GetGroomer(ctx context.Context, id uint) (*models.Groomer, error)
	GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error)

	// -------- Appointment --------
	// CreateAppointment surfaces the storage exclusion constraint as a
	// SchedulingConflict domain error.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
	ListByClient(ctx context.Context, clientID uint) ([]models.Appointment, error)
}
