package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushdesk/rush-scheduler/internal/httperr"
	"github.com/rushdesk/rush-scheduler/internal/httpresp"
	"github.com/rushdesk/rush-scheduler/internal/middleware"
	"github.com/rushdesk/rush-scheduler/internal/models"
)

// AvailabilityHandler is member self-service: each member manages only their
// own interviewing windows. Rows are immutable; edit = delete + re-create.
type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

// --------- Requests ---------

type CreateAvailabilityRequest struct {
	InterviewDateID string `json:"interview_date_id" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"` // RFC3339
	EndTime         string `json:"end_time" binding:"required"`   // RFC3339
}

// --------- Handlers ---------

func (h *AvailabilityHandler) ListMine(c *gin.Context) {
	userID, _ := c.MustGet(middleware.ContextUserID).(string)

	var avails []models.UserAvailability
	if err := h.db.
		Where("user_id = ?", userID).
		Order("start_time asc").
		Find(&avails).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availabilities", "Could not load availabilities.")
		return
	}

	httpresp.List(c, avails)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	userID, _ := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time must be RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "end_time must be RFC3339")
		return
	}
	start, end = start.UTC(), end.UTC()

	if !start.Before(end) {
		httperr.BadRequest(c, "invalid_interval", "start_time must be before end_time")
		return
	}

	var date models.InterviewDate
	if err := h.db.First(&date, "id = ?", req.InterviewDateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "interview_date_not_found", "Interview date not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load the interview date.")
		return
	}

	if start.Before(date.StartTime) || end.After(date.EndTime) {
		httperr.BadRequest(c, "outside_interview_window",
			"Availability must fall inside the day's interviewing window.")
		return
	}

	avail := models.UserAvailability{
		ID:              uuid.NewString(),
		UserID:          userID,
		InterviewDateID: date.ID,
		Date:            date.Date,
		StartTime:       start,
		EndTime:         end,
	}

	if err := h.db.Create(&avail).Error; err != nil {
		httperr.Internal(c, "failed_to_create_availability", "Could not save the availability.")
		return
	}

	httpresp.Created(c, avail)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	userID, _ := c.MustGet(middleware.ContextUserID).(string)
	availID := c.Param("id")

	var avail models.UserAvailability
	if err := h.db.First(&avail, "id = ?", availID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "availability_not_found", "Availability not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load the availability.")
		return
	}

	if avail.UserID != userID {
		httperr.Forbidden(c, "not_owner", "You can only remove your own availability.")
		return
	}

	if err := h.db.Delete(&models.UserAvailability{}, "id = ?", availID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_availability", "Could not delete the availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "availability removed"})
}
