package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// InTx runs fn against a repository bound to one database transaction. Row
// locks taken inside fn survive until commit.
func (r *OrderGormRepository) InTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Reference lookups
// --------------------------------------------------

func (r *OrderGormRepository) GetActivePet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Breed").
		Where("active = true").
		First(&pet, id).Error; err != nil {
		return nil, mapNotFound(err, "Pet", id)
	}
	return &pet, nil
}

func (r *OrderGormRepository) GetGroomer(
	ctx context.Context,
	id uint,
) (*models.Groomer, error) {

	var groomer models.Groomer
	if err := r.db.WithContext(ctx).First(&groomer, id).Error; err != nil {
		return nil, mapNotFound(err, "Groomer", id)
	}
	return &groomer, nil
}

func (r *OrderGormRepository) GetActiveServiceType(
	ctx context.Context,
	id uint,
) (*models.ServiceType, error) {

	var st models.ServiceType
	if err := r.db.WithContext(ctx).
		Where("active = true").
		First(&st, id).Error; err != nil {
		return nil, mapNotFound(err, "Service type", id)
	}
	return &st, nil
}

// --------------------------------------------------
// Pricing resolution
// --------------------------------------------------

func (r *OrderGormRepository) FindBreedPrice(
	ctx context.Context,
	serviceTypeID uint,
	breedID uint,
) (decimal.Decimal, bool, error) {

	var row models.BreedServicePrice
	err := r.db.WithContext(ctx).
		Where("service_type_id = ? AND breed_id = ?", serviceTypeID, breedID).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	return row.Price, true, nil
}

func (r *OrderGormRepository) FindMatrixPrice(
	ctx context.Context,
	serviceTypeID uint,
	species models.Species,
	size models.PetSize,
) (decimal.Decimal, bool, error) {

	var row models.PricingMatrix
	err := r.db.WithContext(ctx).
		Where("service_type_id = ? AND species = ? AND pet_size = ?", serviceTypeID, species, size).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	return row.Price, true, nil
}

// --------------------------------------------------
// Order
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.ServiceOrder,
	prepaid *models.PaymentEvent,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		if prepaid != nil {
			prepaid.ServiceOrderID = o.ID
			if err := tx.Create(prepaid).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	id uint,
) (*models.ServiceOrder, error) {

	var o models.ServiceOrder
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Pet.Client").
		Preload("Groomer").
		Preload("ServiceItems").
		Preload("ServiceItems.ServiceType").
		First(&o, id).Error; err != nil {
		return nil, mapNotFound(err, "Service order", id)
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderForUpdate(
	ctx context.Context,
	id uint,
) (*models.ServiceOrder, error) {

	var o models.ServiceOrder
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		First(&o, id).Error; err != nil {
		if httperr.IsLockNotAvailable(err) {
			return nil, httperr.LockContention("Service order #%d is being modified by another request", id)
		}
		return nil, mapNotFound(err, "Service order", id)
	}

	// Items are loaded after the lock so totals are recomputed from the
	// locked row's children.
	if err := r.db.WithContext(ctx).
		Where("service_order_id = ?", o.ID).
		Order("id ASC").
		Find(&o.ServiceItems).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) SaveOrder(
	ctx context.Context,
	o *models.ServiceOrder,
) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(o).Error
}

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
	from *time.Time,
	to *time.Time,
	status string,
) ([]models.ServiceOrder, error) {

	q := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Groomer").
		Preload("ServiceItems").
		Preload("ServiceItems.ServiceType")

	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.ServiceOrder
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrdersByGroomer(
	ctx context.Context,
	groomerID uint,
) ([]models.ServiceOrder, error) {

	var orders []models.ServiceOrder
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("ServiceItems").
		Preload("ServiceItems.ServiceType").
		Where("groomer_id = ?", groomerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// --------------------------------------------------
// Evidence gates
// --------------------------------------------------

func (r *OrderGormRepository) CountInspectionPhotos(
	ctx context.Context,
	orderID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InspectionPhoto{}).
		Where("service_order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OrderGormRepository) HasHealthChecklist(
	ctx context.Context,
	orderID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.HealthChecklist{}).
		Where("service_order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
