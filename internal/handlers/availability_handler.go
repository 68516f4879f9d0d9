package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/httpresp"
	ucavailability "github.com/cisnebranco/grooming-os/internal/usecase/availability"
)

type AvailabilityHandler struct {
	windows *ucavailability.ManageWindows
}

func NewAvailabilityHandler(windows *ucavailability.ManageWindows) *AvailabilityHandler {
	return &AvailabilityHandler{windows: windows}
}

type WindowRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	groomerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	windows, err := h.windows.List(c.Request.Context(), groomerID)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, windows)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	groomerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	w, err := h.windows.Create(c.Request.Context(), ucavailability.CreateWindowInput{
		GroomerID: groomerID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

func (h *AvailabilityHandler) Deactivate(c *gin.Context) {
	windowID, ok := paramID(c, "window_id")
	if !ok {
		return
	}

	if err := h.windows.Deactivate(c.Request.Context(), windowID); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
