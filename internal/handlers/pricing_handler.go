package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type PricingHandler struct {
	db *gorm.DB
}

func NewPricingHandler(db *gorm.DB) *PricingHandler {
	return &PricingHandler{db: db}
}

type MatrixEntryRequest struct {
	ServiceTypeID uint            `json:"service_type_id" binding:"required"`
	Species       string          `json:"species" binding:"required"`
	PetSize       string          `json:"pet_size" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
}

type BreedPriceRequest struct {
	ServiceTypeID uint            `json:"service_type_id" binding:"required"`
	BreedID       uint            `json:"breed_id" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
}

// --------------------------------------------------
// Matrix
// --------------------------------------------------

func (h *PricingHandler) ListMatrix(c *gin.Context) {
	q := h.db.Preload("ServiceType").Order("service_type_id ASC, species ASC, pet_size ASC")

	if serviceTypeID := c.Query("service_type_id"); serviceTypeID != "" {
		q = q.Where("service_type_id = ?", serviceTypeID)
	}

	var entries []models.PricingMatrix
	if err := q.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_pricing"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpsertMatrix creates or replaces the price for one (service, species,
// size) cell. Existing orders keep their locked prices.
func (h *PricingHandler) UpsertMatrix(c *gin.Context) {
	var req MatrixEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	species := models.Species(strings.ToUpper(req.Species))
	size := models.PetSize(strings.ToUpper(req.PetSize))

	if !validSpecies(species) || !validSize(size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_species_or_size"})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_price"})
		return
	}

	var st models.ServiceType
	if err := h.db.First(&st, req.ServiceTypeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_type_not_found"})
		return
	}

	var entry models.PricingMatrix
	err := h.db.
		Where("service_type_id = ? AND species = ? AND pet_size = ?",
			req.ServiceTypeID, species, size).
		First(&entry).Error

	switch {
	case err == nil:
		entry.Price = req.Price
		if err := h.db.Save(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_pricing"})
			return
		}
		c.JSON(http.StatusOK, entry)

	case err == gorm.ErrRecordNotFound:
		entry = models.PricingMatrix{
			ServiceTypeID: req.ServiceTypeID,
			Species:       species,
			PetSize:       size,
			Price:         req.Price,
		}
		if err := h.db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_pricing"})
			return
		}
		c.JSON(http.StatusCreated, entry)

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}

// --------------------------------------------------
// Breed overrides
// --------------------------------------------------

func (h *PricingHandler) ListBreedPrices(c *gin.Context) {
	q := h.db.Preload("ServiceType").Preload("Breed").Order("service_type_id ASC, breed_id ASC")

	if serviceTypeID := c.Query("service_type_id"); serviceTypeID != "" {
		q = q.Where("service_type_id = ?", serviceTypeID)
	}

	var entries []models.BreedServicePrice
	if err := q.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_breed_prices"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *PricingHandler) UpsertBreedPrice(c *gin.Context) {
	var req BreedPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_price"})
		return
	}

	var st models.ServiceType
	if err := h.db.First(&st, req.ServiceTypeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_type_not_found"})
		return
	}
	var breed models.Breed
	if err := h.db.First(&breed, req.BreedID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "breed_not_found"})
		return
	}

	var entry models.BreedServicePrice
	err := h.db.
		Where("service_type_id = ? AND breed_id = ?", req.ServiceTypeID, req.BreedID).
		First(&entry).Error

	switch {
	case err == nil:
		entry.Price = req.Price
		if err := h.db.Save(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_breed_price"})
			return
		}
		c.JSON(http.StatusOK, entry)

	case err == gorm.ErrRecordNotFound:
		entry = models.BreedServicePrice{
			ServiceTypeID: req.ServiceTypeID,
			BreedID:       req.BreedID,
			Price:         req.Price,
		}
		if err := h.db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_breed_price"})
			return
		}
		c.JSON(http.StatusCreated, entry)

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}

func (h *PricingHandler) DeleteBreedPrice(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.BreedServicePrice{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_breed_price"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "breed_price_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
