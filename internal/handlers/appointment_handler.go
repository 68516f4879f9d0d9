package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	avdomain "github.com/cisnebranco/grooming-os/internal/domain/appointment"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/httpresp"
	"github.com/cisnebranco/grooming-os/internal/middleware"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/timezone"
	ucappointment "github.com/cisnebranco/grooming-os/internal/usecase/appointment"
	ucorder "github.com/cisnebranco/grooming-os/internal/usecase/order"
)

type AppointmentHandler struct {
	create  *ucappointment.CreateAppointment
	update  *ucappointment.UpdateAppointment
	slots   *ucappointment.GetAvailableSlots
	list    *ucappointment.ListAppointments
	convert *ucappointment.ConvertToOrder
}

func NewAppointmentHandler(
	create *ucappointment.CreateAppointment,
	update *ucappointment.UpdateAppointment,
	slots *ucappointment.GetAvailableSlots,
	list *ucappointment.ListAppointments,
	convert *ucappointment.ConvertToOrder,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:  create,
		update:  update,
		slots:   slots,
		list:    list,
		convert: convert,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID      uint      `json:"client_id" binding:"required"`
	PetID         uint      `json:"pet_id" binding:"required"`
	GroomerID     uint      `json:"groomer_id" binding:"required"`
	ServiceTypeID uint      `json:"service_type_id" binding:"required"`
	Start         time.Time `json:"start" binding:"required"`
	Notes         string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status             *string    `json:"status"`
	NewStart           *time.Time `json:"new_start"`
	Notes              *string    `json:"notes"`
	CancellationReason string     `json:"cancellation_reason"`
}

type ConvertRequest struct {
	Prepaid *struct {
		Amount         decimal.Decimal `json:"amount"`
		Method         string          `json:"method"`
		TransactionRef string          `json:"transaction_ref"`
	} `json:"prepaid"`
	Notes string `json:"notes"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateInput{
		ClientID:      req.ClientID,
		PetID:         req.PetID,
		GroomerID:     req.GroomerID,
		ServiceTypeID: req.ServiceTypeID,
		Start:         req.Start,
		Notes:         req.Notes,
		ActorID:       c.GetUint(middleware.ContextUserID),
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := ucappointment.UpdateInput{
		NewStart:           req.NewStart,
		Notes:              req.Notes,
		CancellationReason: req.CancellationReason,
		ActorID:            c.GetUint(middleware.ContextUserID),
	}
	if req.Status != nil {
		status := avdomain.Status(strings.ToUpper(*req.Status))
		in.Status = &status
	}

	ap, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	if clientID := c.Query("client_id"); clientID != "" {
		id, err := parseUintQuery(clientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_client_id"})
			return
		}

		apps, err := h.list.ByClient(c.Request.Context(), id)
		if err != nil {
			httperr.WriteDomain(c, err)
			return
		}
		httpresp.List(c, apps)
		return
	}

	dateStr := c.DefaultQuery("date", timezone.Now().Format("2006-01-02"))
	day, err := parseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	apps, err := h.list.ByDateRange(c.Request.Context(), day, day.AddDate(0, 0, 1))
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Slots(c *gin.Context) {
	groomerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	serviceTypeID, err := parseUintQuery(c.Query("service_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_type_id"})
		return
	}

	day, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), groomerID, serviceTypeID, day)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *AppointmentHandler) Convert(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := ucorder.CheckInInput{
		Notes:   req.Notes,
		ActorID: c.GetUint(middleware.ContextUserID),
	}
	if req.Prepaid != nil {
		in.Prepaid = &ucorder.PrepaidInput{
			Amount:         req.Prepaid.Amount,
			Method:         models.PaymentMethod(strings.ToUpper(req.Prepaid.Method)),
			TransactionRef: req.Prepaid.TransactionRef,
		}
	}

	ap, err := h.convert.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}
