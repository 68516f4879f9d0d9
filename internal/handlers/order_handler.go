package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/httpresp"
	"github.com/cisnebranco/grooming-os/internal/middleware"
	"github.com/cisnebranco/grooming-os/internal/models"
	ucorder "github.com/cisnebranco/grooming-os/internal/usecase/order"
)

type OrderHandler struct {
	checkIn *ucorder.CheckIn
	status  *ucorder.UpdateStatus
	assign  *ucorder.AssignGroomer
	adjust  *ucorder.AdjustItemPrice
	access  *ucorder.EnforceAccess
	list    *ucorder.ListOrders
}

func NewOrderHandler(
	checkIn *ucorder.CheckIn,
	status *ucorder.UpdateStatus,
	assign *ucorder.AssignGroomer,
	adjust *ucorder.AdjustItemPrice,
	access *ucorder.EnforceAccess,
	list *ucorder.ListOrders,
) *OrderHandler {
	return &OrderHandler{
		checkIn: checkIn,
		status:  status,
		assign:  assign,
		adjust:  adjust,
		access:  access,
		list:    list,
	}
}

// --------- Requests ---------

type CheckInRequest struct {
	PetID          uint   `json:"pet_id" binding:"required"`
	GroomerID      *uint  `json:"groomer_id"`
	ServiceTypeIDs []uint `json:"service_type_ids" binding:"required,min=1"`
	Notes          string `json:"notes"`

	Prepaid *struct {
		Amount         decimal.Decimal `json:"amount"`
		Method         string          `json:"method"`
		TransactionRef string          `json:"transaction_ref"`
	} `json:"prepaid"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignRequest struct {
	GroomerID uint `json:"groomer_id" binding:"required"`
}

type AdjustPriceRequest struct {
	NewPrice decimal.Decimal `json:"new_price" binding:"required"`
	Reason   string          `json:"reason"`
}

// --------- Handlers ---------

func (h *OrderHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := ucorder.CheckInInput{
		PetID:          req.PetID,
		GroomerID:      req.GroomerID,
		ServiceTypeIDs: req.ServiceTypeIDs,
		Notes:          req.Notes,
		ActorID:        c.GetUint(middleware.ContextUserID),
	}
	if req.Prepaid != nil {
		in.Prepaid = &ucorder.PrepaidInput{
			Amount:         req.Prepaid.Amount,
			Method:         models.PaymentMethod(strings.ToUpper(req.Prepaid.Method)),
			TransactionRef: req.Prepaid.TransactionRef,
		}
	}

	o, err := h.checkIn.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) List(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)

	// Groomer accounts only ever see their own queue.
	if !p.Privileged() {
		if p.GroomerID == nil {
			httpresp.List(c, []models.ServiceOrder{})
			return
		}
		orders, err := h.list.ByGroomer(c.Request.Context(), *p.GroomerID)
		if err != nil {
			httperr.WriteDomain(c, err)
			return
		}
		httpresp.List(c, orders)
		return
	}

	var from, to *time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		if t, err := parseDate(fromStr); err == nil {
			from = &t
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if t, err := parseDate(toStr); err == nil {
			end := t.AddDate(0, 0, 1)
			to = &end
		}
	}
	status := strings.ToUpper(c.Query("status"))

	orders, err := h.list.Execute(c.Request.Context(), from, to, status)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	o, err := h.access.Execute(c.Request.Context(), id, middleware.PrincipalFromContext(c))
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"order":           o,
		"balance":         o.Balance(),
		"payment_balance": o.PaymentBalance(),
	})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := h.access.Execute(c.Request.Context(), id, middleware.PrincipalFromContext(c)); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	target := domain.Status(strings.ToUpper(req.Status))
	o, err := h.status.Execute(c.Request.Context(), id, target, c.GetUint(middleware.ContextUserID))
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, o)
}

func (h *OrderHandler) AssignGroomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	o, err := h.assign.Execute(c.Request.Context(), id, req.GroomerID, c.GetUint(middleware.ContextUserID))
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, o)
}

func (h *OrderHandler) AdjustItemPrice(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "item_id")
	if !ok {
		return
	}

	var req AdjustPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	o, err := h.adjust.Execute(c.Request.Context(), ucorder.AdjustItemPriceInput{
		OrderID:  orderID,
		ItemID:   itemID,
		NewPrice: req.NewPrice,
		Reason:   req.Reason,
		ActorID:  c.GetUint(middleware.ContextUserID),
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, o)
}
