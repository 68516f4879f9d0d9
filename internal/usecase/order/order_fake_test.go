package order

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

type breedPriceKey struct {
	serviceTypeID uint
	breedID       uint
}

type matrixKey struct {
	serviceTypeID uint
	species       models.Species
	size          models.PetSize
}

// fakeOrderRepo is an in-memory stand-in for the gorm repository. InTx runs
// fn against the same store under a mutex, mirroring the serialization the
// row lock provides.
type fakeOrderRepo struct {
	mu sync.Mutex

	pets         map[uint]*models.Pet
	groomers     map[uint]*models.Groomer
	serviceTypes map[uint]*models.ServiceType
	breedPrices  map[breedPriceKey]decimal.Decimal
	matrixPrices map[matrixKey]decimal.Decimal

	orders map[uint]*models.ServiceOrder
	nextID uint

	photoCount    map[uint]int64
	hasChecklist  map[uint]bool
	prepaidEvents []*models.PaymentEvent
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		pets:         map[uint]*models.Pet{},
		groomers:     map[uint]*models.Groomer{},
		serviceTypes: map[uint]*models.ServiceType{},
		breedPrices:  map[breedPriceKey]decimal.Decimal{},
		matrixPrices: map[matrixKey]decimal.Decimal{},
		orders:       map[uint]*models.ServiceOrder{},
		photoCount:   map[uint]int64{},
		hasChecklist: map[uint]bool{},
	}
}

func (f *fakeOrderRepo) InTx(_ context.Context, fn func(tx domain.Repository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f)
}

func (f *fakeOrderRepo) GetActivePet(_ context.Context, id uint) (*models.Pet, error) {
	pet, ok := f.pets[id]
	if !ok || !pet.Active {
		return nil, httperr.NotFoundErr("Pet", id)
	}
	return pet, nil
}

func (f *fakeOrderRepo) GetGroomer(_ context.Context, id uint) (*models.Groomer, error) {
	g, ok := f.groomers[id]
	if !ok {
		return nil, httperr.NotFoundErr("Groomer", id)
	}
	return g, nil
}

func (f *fakeOrderRepo) GetActiveServiceType(_ context.Context, id uint) (*models.ServiceType, error) {
	st, ok := f.serviceTypes[id]
	if !ok || !st.Active {
		return nil, httperr.NotFoundErr("Service type", id)
	}
	return st, nil
}

func (f *fakeOrderRepo) FindBreedPrice(_ context.Context, serviceTypeID, breedID uint) (decimal.Decimal, bool, error) {
	price, ok := f.breedPrices[breedPriceKey{serviceTypeID, breedID}]
	return price, ok, nil
}

func (f *fakeOrderRepo) FindMatrixPrice(_ context.Context, serviceTypeID uint, species models.Species, size models.PetSize) (decimal.Decimal, bool, error) {
	price, ok := f.matrixPrices[matrixKey{serviceTypeID, species, size}]
	return price, ok, nil
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, o *models.ServiceOrder, prepaid *models.PaymentEvent) error {
	f.nextID++
	o.ID = f.nextID
	for i := range o.ServiceItems {
		o.ServiceItems[i].ID = uint(i + 1)
		o.ServiceItems[i].ServiceOrderID = o.ID
	}
	f.orders[o.ID] = o
	if prepaid != nil {
		prepaid.ServiceOrderID = o.ID
		f.prepaidEvents = append(f.prepaidEvents, prepaid)
	}
	return nil
}

func (f *fakeOrderRepo) GetOrder(_ context.Context, id uint) (*models.ServiceOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, httperr.NotFoundErr("Service order", id)
	}
	return o, nil
}

func (f *fakeOrderRepo) GetOrderForUpdate(ctx context.Context, id uint) (*models.ServiceOrder, error) {
	return f.GetOrder(ctx, id)
}

func (f *fakeOrderRepo) SaveOrder(_ context.Context, o *models.ServiceOrder) error {
	if _, ok := f.orders[o.ID]; !ok {
		return httperr.NotFoundErr("Service order", o.ID)
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) ListOrders(_ context.Context, _, _ *time.Time, status string) ([]models.ServiceOrder, error) {
	var out []models.ServiceOrder
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListOrdersByGroomer(_ context.Context, groomerID uint) ([]models.ServiceOrder, error) {
	var out []models.ServiceOrder
	for _, o := range f.orders {
		if o.GroomerID != nil && *o.GroomerID == groomerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CountInspectionPhotos(_ context.Context, orderID uint) (int64, error) {
	return f.photoCount[orderID], nil
}

func (f *fakeOrderRepo) HasHealthChecklist(_ context.Context, orderID uint) (bool, error) {
	return f.hasChecklist[orderID], nil
}

var _ domain.Repository = (*fakeOrderRepo)(nil)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// seedCatalog sets up the standard fixture: pet #1 (dog, medium, breed #5,
// client with phone), groomer #1, BANHO (#1) 50.00 @ 0.40 and TOSA_TESOURA
// (#2) 80.00 @ 0.50 via the matrix.
func seedCatalog(f *fakeOrderRepo) {
	f.pets[1] = &models.Pet{
		ID:       1,
		ClientID: 1,
		Client:   models.Client{ID: 1, Name: "Maria", Phone: "11999990000"},
		Name:     "Thor",
		Species:  models.SpeciesDog,
		Size:     models.SizeMedium,
		Active:   true,
	}
	f.groomers[1] = &models.Groomer{ID: 1, Name: "Paula", Active: true}
	f.serviceTypes[1] = &models.ServiceType{
		ID: 1, Code: "BANHO", Name: "Banho", DurationMin: 60,
		CommissionRate: dec("0.40"), Active: true,
	}
	f.serviceTypes[2] = &models.ServiceType{
		ID: 2, Code: "TOSA_TESOURA", Name: "Tosa Tesoura", DurationMin: 90,
		CommissionRate: dec("0.50"), Active: true,
	}
	f.matrixPrices[matrixKey{1, models.SpeciesDog, models.SizeMedium}] = dec("50.00")
	f.matrixPrices[matrixKey{2, models.SpeciesDog, models.SizeMedium}] = dec("80.00")
}
