package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/models"
)

// EvidenceHandler records grooming evidence: inspection photo references and
// the health checklist. Photo bytes live in an external store; only URLs are
// kept here.
type EvidenceHandler struct {
	db *gorm.DB
}

func NewEvidenceHandler(db *gorm.DB) *EvidenceHandler {
	return &EvidenceHandler{db: db}
}

type PhotoRequest struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
}

type ChecklistRequest struct {
	SkinOK  bool   `json:"skin_ok"`
	EarsOK  bool   `json:"ears_ok"`
	EyesOK  bool   `json:"eyes_ok"`
	NailsOK bool   `json:"nails_ok"`
	Remarks string `json:"remarks"`
}

func (h *EvidenceHandler) orderExists(orderID uint) (bool, error) {
	var count int64
	err := h.db.Model(&models.ServiceOrder{}).Where("id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (h *EvidenceHandler) AddPhoto(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if u, err := url.Parse(req.URL); err != nil || u.Scheme == "" || u.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_photo_url"})
		return
	}

	exists, err := h.orderExists(orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
		return
	}

	photo := models.InspectionPhoto{
		ServiceOrderID: orderID,
		URL:            req.URL,
		Caption:        req.Caption,
	}

	if err := h.db.Create(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_add_photo"})
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (h *EvidenceHandler) ListPhotos(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var photos []models.InspectionPhoto
	if err := h.db.
		Where("service_order_id = ?", orderID).
		Order("created_at ASC").
		Find(&photos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_photos"})
		return
	}

	c.JSON(http.StatusOK, photos)
}

// UpsertChecklist writes the order's single health checklist, replacing any
// earlier submission.
func (h *EvidenceHandler) UpsertChecklist(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	exists, err := h.orderExists(orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
		return
	}

	var checklist models.HealthChecklist
	err = h.db.Where("service_order_id = ?", orderID).First(&checklist).Error

	switch {
	case err == nil:
		checklist.SkinOK = req.SkinOK
		checklist.EarsOK = req.EarsOK
		checklist.EyesOK = req.EyesOK
		checklist.NailsOK = req.NailsOK
		checklist.Remarks = req.Remarks
		if err := h.db.Save(&checklist).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_checklist"})
			return
		}
		c.JSON(http.StatusOK, checklist)

	case err == gorm.ErrRecordNotFound:
		checklist = models.HealthChecklist{
			ServiceOrderID: orderID,
			SkinOK:         req.SkinOK,
			EarsOK:         req.EarsOK,
			EyesOK:         req.EyesOK,
			NailsOK:        req.NailsOK,
			Remarks:        req.Remarks,
		}
		if err := h.db.Create(&checklist).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_checklist"})
			return
		}
		c.JSON(http.StatusCreated, checklist)

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}

func (h *EvidenceHandler) GetChecklist(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var checklist models.HealthChecklist
	if err := h.db.Where("service_order_id = ?", orderID).First(&checklist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "checklist_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, checklist)
}
