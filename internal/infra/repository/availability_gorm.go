package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/cisnebranco/grooming-os/internal/domain/availability"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

func (r *AvailabilityGormRepository) GetGroomer(
	ctx context.Context,
	id uint,
) (*models.Groomer, error) {

	var groomer models.Groomer
	if err := r.db.WithContext(ctx).First(&groomer, id).Error; err != nil {
		return nil, mapNotFound(err, "Groomer", id)
	}
	return &groomer, nil
}

func (r *AvailabilityGormRepository) ListActiveWindows(
	ctx context.Context,
	groomerID uint,
	dayOfWeek int,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("groomer_id = ? AND day_of_week = ? AND active = true", groomerID, dayOfWeek).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *AvailabilityGormRepository) ListWindows(
	ctx context.Context,
	groomerID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("groomer_id = ?", groomerID).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *AvailabilityGormRepository) GetWindow(
	ctx context.Context,
	id uint,
) (*models.AvailabilityWindow, error) {

	var w models.AvailabilityWindow
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		return nil, mapNotFound(err, "Availability window", id)
	}
	return &w, nil
}

func (r *AvailabilityGormRepository) CreateWindow(
	ctx context.Context,
	w *models.AvailabilityWindow,
) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *AvailabilityGormRepository) SaveWindow(
	ctx context.Context,
	w *models.AvailabilityWindow,
) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *AvailabilityGormRepository) ListBookedAppointments(
	ctx context.Context,
	groomerID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("scheduled_start", "scheduled_end").
		Where(
			"groomer_id = ? AND status NOT IN ('CANCELLED', 'NO_SHOW') AND scheduled_start < ? AND scheduled_end > ?",
			groomerID, dayEnd, dayStart,
		).
		Order("scheduled_start ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
