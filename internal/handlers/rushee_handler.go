package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rushdesk/rush-scheduler/internal/httperr"
	"github.com/rushdesk/rush-scheduler/internal/httpresp"
	"github.com/rushdesk/rush-scheduler/internal/models"
)

type RusheeHandler struct {
	db *gorm.DB
}

func NewRusheeHandler(db *gorm.DB) *RusheeHandler {
	return &RusheeHandler{db: db}
}

func (h *RusheeHandler) List(c *gin.Context) {
	var rushees []models.Rushee
	if err := h.db.Order("name asc").Find(&rushees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_rushees", "Could not load rushees.")
		return
	}
	httpresp.List(c, rushees)
}

func (h *RusheeHandler) Get(c *gin.Context) {
	rusheeID := c.Param("id")

	var rushee models.Rushee
	if err := h.db.First(&rushee, "id = ?", rusheeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "rushee_not_found", "Rushee not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load the rushee.")
		return
	}

	httpresp.OK(c, rushee)
}

func (h *RusheeHandler) Availabilities(c *gin.Context) {
	rusheeID := c.Param("id")

	var count int64
	h.db.Model(&models.Rushee{}).Where("id = ?", rusheeID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "rushee_not_found", "Rushee not found.")
		return
	}

	var avails []models.RusheeAvailability
	if err := h.db.
		Where("rushee_id = ?", rusheeID).
		Order("start_time asc").
		Find(&avails).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availabilities", "Could not load availabilities.")
		return
	}

	httpresp.List(c, avails)
}
