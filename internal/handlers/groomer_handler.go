package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type GroomerHandler struct {
	db *gorm.DB
}

func NewGroomerHandler(db *gorm.DB) *GroomerHandler {
	return &GroomerHandler{db: db}
}

type GroomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (h *GroomerHandler) List(c *gin.Context) {
	q := h.db.Order("name ASC")

	if c.Query("include_inactive") != "true" {
		q = q.Where("active = true")
	}

	var groomers []models.Groomer
	if err := q.Find(&groomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_groomers"})
		return
	}

	c.JSON(http.StatusOK, groomers)
}

func (h *GroomerHandler) Create(c *gin.Context) {
	var req GroomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	groomer := models.Groomer{
		Name:   strings.TrimSpace(req.Name),
		Phone:  strings.TrimSpace(req.Phone),
		Active: true,
	}

	if err := h.db.Create(&groomer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_groomer"})
		return
	}

	c.JSON(http.StatusCreated, groomer)
}

func (h *GroomerHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var groomer models.Groomer
	if err := h.db.First(&groomer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "groomer_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Phone  *string `json:"phone"`
		Active *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		groomer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		groomer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Active != nil {
		groomer.Active = *req.Active
	}

	if err := h.db.Save(&groomer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_groomer"})
		return
	}

	c.JSON(http.StatusOK, groomer)
}
