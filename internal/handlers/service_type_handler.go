package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type ServiceTypeHandler struct {
	db *gorm.DB
}

func NewServiceTypeHandler(db *gorm.DB) *ServiceTypeHandler {
	return &ServiceTypeHandler{db: db}
}

type ServiceTypeRequest struct {
	Code           string          `json:"code" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	DurationMin    int             `json:"duration_min" binding:"required,min=5"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	q := h.db.Order("name ASC")

	if c.Query("include_inactive") != "true" {
		q = q.Where("active = true")
	}

	var types []models.ServiceType
	if err := q.Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_service_types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var req ServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.CommissionRate.IsNegative() || req.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_commission_rate"})
		return
	}

	st := models.ServiceType{
		Code:           strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:           strings.TrimSpace(req.Name),
		DurationMin:    req.DurationMin,
		CommissionRate: req.CommissionRate,
		Active:         true,
	}

	if err := h.db.Create(&st).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service_type"})
		return
	}

	c.JSON(http.StatusCreated, st)
}

func (h *ServiceTypeHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var st models.ServiceType
	if err := h.db.First(&st, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_type_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	var req struct {
		Name           *string          `json:"name"`
		DurationMin    *int             `json:"duration_min"`
		CommissionRate *decimal.Decimal `json:"commission_rate"`
		Active         *bool            `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		st.Name = strings.TrimSpace(*req.Name)
	}
	if req.DurationMin != nil {
		if *req.DurationMin < 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_duration"})
			return
		}
		st.DurationMin = *req.DurationMin
	}
	if req.CommissionRate != nil {
		if req.CommissionRate.IsNegative() || req.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_commission_rate"})
			return
		}
		// Rate changes never touch existing orders; items carry the rate
		// that was locked at check-in.
		st.CommissionRate = *req.CommissionRate
	}
	if req.Active != nil {
		st.Active = *req.Active
	}

	if err := h.db.Save(&st).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service_type"})
		return
	}

	c.JSON(http.StatusOK, st)
}
