package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/cisnebranco/grooming-os/internal/domain/payment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) InTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PaymentGormRepository{db: tx})
	})
}

func (r *PaymentGormRepository) GetOrderForUpdate(
	ctx context.Context,
	orderID uint,
) (*models.ServiceOrder, error) {

	var o models.ServiceOrder
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		First(&o, orderID).Error; err != nil {
		if httperr.IsLockNotAvailable(err) {
			return nil, httperr.LockContention("Service order #%d is being modified by another request", orderID)
		}
		return nil, mapNotFound(err, "Service order", orderID)
	}
	return &o, nil
}

func (r *PaymentGormRepository) SaveOrder(
	ctx context.Context,
	o *models.ServiceOrder,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(o).Error
}

func (r *PaymentGormRepository) OrderExists(
	ctx context.Context,
	orderID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Where("id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentGormRepository) GetEvent(
	ctx context.Context,
	eventID uint,
) (*models.PaymentEvent, error) {

	var ev models.PaymentEvent
	if err := r.db.WithContext(ctx).First(&ev, eventID).Error; err != nil {
		return nil, mapNotFound(err, "Payment event", eventID)
	}
	return &ev, nil
}

func (r *PaymentGormRepository) HasRefund(
	ctx context.Context,
	originalEventID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentEvent{}).
		Where("refunded_event_id = ?", originalEventID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentGormRepository) CreateEvent(
	ctx context.Context,
	ev *models.PaymentEvent,
) error {

	if err := r.db.WithContext(ctx).Create(ev).Error; err != nil {
		// The unique index on refunded_event_id turns a concurrent double
		// refund into a constraint violation instead of a duplicate entry.
		if httperr.IsExclusionConflict(err) {
			return httperr.Business("Payment event has already been refunded")
		}
		return err
	}
	return nil
}

func (r *PaymentGormRepository) ListEvents(
	ctx context.Context,
	orderID uint,
) ([]models.PaymentEvent, error) {

	var events []models.PaymentEvent
	if err := r.db.WithContext(ctx).
		Where("service_order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PaymentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, mapNotFound(err, "User", id)
	}
	return &user, nil
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
