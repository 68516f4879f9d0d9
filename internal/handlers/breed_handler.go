package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type BreedHandler struct {
	db *gorm.DB
}

func NewBreedHandler(db *gorm.DB) *BreedHandler {
	return &BreedHandler{db: db}
}

type BreedRequest struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species" binding:"required"`
}

func (h *BreedHandler) List(c *gin.Context) {
	q := h.db.Order("name ASC")

	if species := strings.ToUpper(c.Query("species")); species != "" {
		q = q.Where("species = ?", species)
	}

	var breeds []models.Breed
	if err := q.Find(&breeds).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_breeds"})
		return
	}

	c.JSON(http.StatusOK, breeds)
}

func (h *BreedHandler) Create(c *gin.Context) {
	var req BreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	species := models.Species(strings.ToUpper(req.Species))
	if !validSpecies(species) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_species"})
		return
	}

	breed := models.Breed{
		Name:    strings.TrimSpace(req.Name),
		Species: species,
	}

	if err := h.db.Create(&breed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_breed"})
		return
	}

	c.JSON(http.StatusCreated, breed)
}
