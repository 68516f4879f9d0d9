package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/cisnebranco/grooming-os/internal/domain/appointment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Reference lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, mapNotFound(err, "Client", id)
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, mapNotFound(err, "Pet", id)
	}
	return &pet, nil
}

func (r *AppointmentGormRepository) GetGroomer(
	ctx context.Context,
	id uint,
) (*models.Groomer, error) {

	var groomer models.Groomer
	if err := r.db.WithContext(ctx).First(&groomer, id).Error; err != nil {
		return nil, mapNotFound(err, "Groomer", id)
	}
	return &groomer, nil
}

func (r *AppointmentGormRepository) GetServiceType(
	ctx context.Context,
	id uint,
) (*models.ServiceType, error) {

	var st models.ServiceType
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, mapNotFound(err, "Service type", id)
	}
	return &st, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// The exclusion constraint on (groomer_id, scheduled range) fires
		// here when two requests race for the same slot.
		if httperr.IsExclusionConflict(err) {
			return httperr.SchedulingConflict(
				"Groomer #%d is already booked in this time range", ap.GroomerID)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pet").
		Preload("Groomer").
		Preload("ServiceType").
		First(&ap, id).Error; err != nil {
		return nil, mapNotFound(err, "Appointment", id)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.SchedulingConflict(
				"Groomer #%d is already booked in this time range", ap.GroomerID)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) ListByDateRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pet").
		Preload("Groomer").
		Preload("ServiceType").
		Where("scheduled_start >= ? AND scheduled_start < ?", start, end).
		Order("scheduled_start ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Groomer").
		Preload("ServiceType").
		Where("client_id = ?", clientID).
		Order("scheduled_start DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
