package availability

import (
	"context"
	"time"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type Repository interface {
	GetGroomer(ctx context.Context, id uint) (*models.Groomer, error)

	// ListActiveWindows returns active windows for the groomer on the ISO
	// weekday (Monday=1), in stable insertion order.
	ListActiveWindows(ctx context.Context, groomerID uint, dayOfWeek int) ([]models.AvailabilityWindow, error)
	ListWindows(ctx context.Context, groomerID uint) ([]models.AvailabilityWindow, error)
	GetWindow(ctx context.Context, id uint) (*models.AvailabilityWindow, error)
	CreateWindow(ctx context.Context, w *models.AvailabilityWindow) error
	SaveWindow(ctx context.Context, w *models.AvailabilityWindow) error

	// ListBookedAppointments returns non-cancelled, non-no-show appointments
	// for the groomer intersecting [dayStart, dayEnd), chronological. The
	// read path always reflects latest committed data; no caching.
	ListBookedAppointments(ctx context.Context, groomerID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error)
}
