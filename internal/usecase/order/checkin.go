package order

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cisnebranco/grooming-os/internal/audit"
	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/notify"
	"github.com/cisnebranco/grooming-os/internal/realtime"
)

// ======================================================
// INPUT
// ======================================================

type PrepaidInput struct {
	Amount         decimal.Decimal
	Method         models.PaymentMethod
	TransactionRef string
}

type CheckInInput struct {
	PetID          uint
	GroomerID      *uint
	ServiceTypeIDs []uint
	Notes          string
	Prepaid        *PrepaidInput
	ActorID        uint
}

// ======================================================
// USE CASE
// ======================================================

// CheckIn converts an arriving pet into a service order. Prices and
// commission rates are resolved once and locked onto the items; later
// catalog changes never touch an existing order.
type CheckIn struct {
	repo      domain.Repository
	notify    *notify.Dispatcher
	audit     *audit.Dispatcher
	broadcast *realtime.Broadcaster
}

func NewCheckIn(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	broadcast *realtime.Broadcaster,
) *CheckIn {
	return &CheckIn{
		repo:      repo,
		notify:    notifier,
		audit:     auditor,
		broadcast: broadcast,
	}
}

func (uc *CheckIn) Execute(ctx context.Context, in CheckInInput) (*models.ServiceOrder, error) {
	if len(in.ServiceTypeIDs) == 0 {
		return nil, httperr.Business("At least one service type is required for check-in")
	}

	pet, err := uc.repo.GetActivePet(ctx, in.PetID)
	if err != nil {
		return nil, err
	}

	if in.GroomerID != nil {
		if _, err := uc.repo.GetGroomer(ctx, *in.GroomerID); err != nil {
			return nil, err
		}
	}

	totalPrice := decimal.Zero
	totalCommission := decimal.Zero
	items := make([]models.OrderServiceItem, 0, len(in.ServiceTypeIDs))
	serviceNames := make([]string, 0, len(in.ServiceTypeIDs))

	for _, serviceTypeID := range in.ServiceTypeIDs {
		serviceType, err := uc.repo.GetActiveServiceType(ctx, serviceTypeID)
		if err != nil {
			return nil, err
		}

		lockedPrice, err := uc.resolveLockedPrice(ctx, serviceType, pet)
		if err != nil {
			return nil, err
		}

		commission := domain.CommissionValue(lockedPrice, serviceType.CommissionRate)

		items = append(items, models.OrderServiceItem{
			ServiceTypeID:        serviceType.ID,
			LockedPrice:          lockedPrice,
			FinalPrice:           lockedPrice,
			LockedCommissionRate: serviceType.CommissionRate,
			CommissionValue:      commission,
		})
		serviceNames = append(serviceNames, serviceType.Name)

		totalPrice = totalPrice.Add(lockedPrice)
		totalCommission = totalCommission.Add(commission)
	}

	o := &models.ServiceOrder{
		PetID:           in.PetID,
		GroomerID:       in.GroomerID,
		Status:          string(domain.StatusWaiting),
		TotalPrice:      totalPrice,
		TotalCommission: totalCommission,
		TotalPaid:       decimal.Zero,
		PaymentStatus:   string(domain.PaymentPending),
		Notes:           in.Notes,
		ServiceItems:    items,
	}

	var prepaidEvent *models.PaymentEvent
	if in.Prepaid != nil {
		prepaidEvent, err = uc.buildPrepaidEvent(o, in.Prepaid, in.ActorID)
		if err != nil {
			return nil, err
		}
		o.TotalPaid = in.Prepaid.Amount
		o.PaymentStatus = string(domain.DerivePaymentStatus(totalPrice, o.TotalPaid, false))
	}

	if err := uc.repo.CreateOrder(ctx, o, prepaidEvent); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "CHECKIN",
		Entity:   "ServiceOrder",
		EntityID: &o.ID,
		Detail:   "Check-in realizado para o pet #" + strconv.FormatUint(uint64(pet.ID), 10),
	})
	if prepaidEvent != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ActorID,
			Action:   "PAYMENT_RECORDED",
			Entity:   "ServiceOrder",
			EntityID: &o.ID,
			Detail:   "Prepaid: R$ " + in.Prepaid.Amount.StringFixed(2) + " via " + string(in.Prepaid.Method),
		})
	}

	uc.notify.Dispatch(notify.Message{
		Kind:         notify.KindCheckIn,
		Phone:        pet.Client.Phone,
		PetName:      pet.Name,
		ClientName:   pet.Client.Name,
		ServiceNames: strings.Join(serviceNames, ", "),
	})

	uc.broadcast.Publish(realtime.Change{Entity: "service_order", Action: "created", ID: o.ID})

	return o, nil
}

// resolveLockedPrice prefers a breed-specific override, then the
// (species, size) matrix. A pet whose breed has no override and whose
// species/size has no matrix entry gets a plain "no pricing found" error.
func (uc *CheckIn) resolveLockedPrice(
	ctx context.Context,
	serviceType *models.ServiceType,
	pet *models.Pet,
) (decimal.Decimal, error) {

	if pet.BreedID != nil {
		price, found, err := uc.repo.FindBreedPrice(ctx, serviceType.ID, *pet.BreedID)
		if err != nil {
			return decimal.Zero, err
		}
		if found {
			return price, nil
		}
	}

	price, found, err := uc.repo.FindMatrixPrice(ctx, serviceType.ID, pet.Species, pet.Size)
	if err != nil {
		return decimal.Zero, err
	}
	if !found {
		return decimal.Zero, httperr.Business(
			"No pricing found for service %s / %s / %s",
			serviceType.Name, pet.Species, pet.Size,
		)
	}
	return price, nil
}

func (uc *CheckIn) buildPrepaidEvent(
	o *models.ServiceOrder,
	prepaid *PrepaidInput,
	actorID uint,
) (*models.PaymentEvent, error) {

	if !prepaid.Amount.IsPositive() {
		return nil, httperr.Business("Prepaid amount must be positive")
	}
	if o.TotalPrice.IsZero() {
		return nil, httperr.Business("Order total price is zero; check the pricing configuration")
	}
	if prepaid.Amount.GreaterThan(o.TotalPrice) {
		return nil, httperr.Business(
			"Prepaid amount (R$ %s) cannot exceed the order total (R$ %s)",
			prepaid.Amount.StringFixed(2), o.TotalPrice.StringFixed(2),
		)
	}

	ref := prepaid.TransactionRef
	if ref == "" {
		ref = uuid.NewString()
	}

	return &models.PaymentEvent{
		Amount:         prepaid.Amount,
		Method:         prepaid.Method,
		TransactionRef: ref,
		Notes:          "Pagamento antecipado registrado no check-in",
		CreatedByID:    actorID,
	}, nil
}
