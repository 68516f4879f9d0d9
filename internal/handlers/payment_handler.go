package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/httpresp"
	"github.com/cisnebranco/grooming-os/internal/middleware"
	"github.com/cisnebranco/grooming-os/internal/models"
	ucpayment "github.com/cisnebranco/grooming-os/internal/usecase/payment"
)

type PaymentHandler struct {
	record  *ucpayment.RecordPayment
	refund  *ucpayment.RefundPayment
	history *ucpayment.PaymentHistory
}

func NewPaymentHandler(
	record *ucpayment.RecordPayment,
	refund *ucpayment.RefundPayment,
	history *ucpayment.PaymentHistory,
) *PaymentHandler {
	return &PaymentHandler{
		record:  record,
		refund:  refund,
		history: history,
	}
}

type RecordPaymentRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Method         string          `json:"method" binding:"required"`
	TransactionRef string          `json:"transaction_ref"`
	Notes          string          `json:"notes"`
}

type RefundRequest struct {
	EventID uint   `json:"event_id" binding:"required"`
	Reason  string `json:"reason"`
}

func (h *PaymentHandler) Record(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ev, err := h.record.Execute(c.Request.Context(), ucpayment.RecordInput{
		OrderID:        orderID,
		Amount:         req.Amount,
		Method:         models.PaymentMethod(strings.ToUpper(req.Method)),
		TransactionRef: req.TransactionRef,
		Notes:          req.Notes,
		ActorID:        c.GetUint(middleware.ContextUserID),
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, ev)
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ev, err := h.refund.Execute(c.Request.Context(), ucpayment.RefundInput{
		OrderID: orderID,
		EventID: req.EventID,
		Reason:  req.Reason,
		ActorID: c.GetUint(middleware.ContextUserID),
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, ev)
}

func (h *PaymentHandler) History(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	events, err := h.history.Execute(c.Request.Context(), orderID)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, events)
}
