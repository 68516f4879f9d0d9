package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/models"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

type PetRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Species  string `json:"species" binding:"required"`
	Size     string `json:"size" binding:"required"`
	BreedID  *uint  `json:"breed_id"`
	Notes    string `json:"notes"`
}

func validSpecies(s models.Species) bool {
	return s == models.SpeciesDog || s == models.SpeciesCat
}

func validSize(s models.PetSize) bool {
	return s == models.SizeSmall || s == models.SizeMedium || s == models.SizeLarge
}

func (h *PetHandler) List(c *gin.Context) {
	q := h.db.Preload("Client").Preload("Breed").Where("active = true")

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var pets []models.Pet
	if err := q.Order("name ASC").Find(&pets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_pets"})
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var pet models.Pet
	if err := h.db.
		Preload("Client").
		Preload("Breed").
		First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	species := models.Species(strings.ToUpper(req.Species))
	size := models.PetSize(strings.ToUpper(req.Size))

	if !validSpecies(species) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_species"})
		return
	}
	if !validSize(size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_size"})
		return
	}

	var client models.Client
	if err := h.db.Where("active = true").First(&client, req.ClientID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_not_found"})
		return
	}

	if req.BreedID != nil {
		var breed models.Breed
		if err := h.db.First(&breed, *req.BreedID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "breed_not_found"})
			return
		}
		if breed.Species != species {
			c.JSON(http.StatusBadRequest, gin.H{"error": "breed_species_mismatch"})
			return
		}
	}

	pet := models.Pet{
		ClientID: req.ClientID,
		BreedID:  req.BreedID,
		Name:     strings.TrimSpace(req.Name),
		Species:  species,
		Size:     size,
		Notes:    req.Notes,
		Active:   true,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_pet"})
		return
	}

	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	species := models.Species(strings.ToUpper(req.Species))
	size := models.PetSize(strings.ToUpper(req.Size))

	if !validSpecies(species) || !validSize(size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_species_or_size"})
		return
	}

	pet.Name = strings.TrimSpace(req.Name)
	pet.Species = species
	pet.Size = size
	pet.BreedID = req.BreedID
	pet.Notes = req.Notes

	if err := h.db.Save(&pet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_pet"})
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Deactivate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := h.db.Model(&models.Pet{}).
		Where("id = ?", id).
		Update("active", false)

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_deactivate_pet"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "pet_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
