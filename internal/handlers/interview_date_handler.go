package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushdesk/rush-scheduler/internal/httperr"
	"github.com/rushdesk/rush-scheduler/internal/httpresp"
	"github.com/rushdesk/rush-scheduler/internal/models"
)

type InterviewDateHandler struct {
	db *gorm.DB
}

func NewInterviewDateHandler(db *gorm.DB) *InterviewDateHandler {
	return &InterviewDateHandler{db: db}
}

// --------- Requests ---------

type CreateInterviewDateRequest struct {
	Date      string `json:"date" binding:"required"`       // 2006-01-02
	StartTime string `json:"start_time" binding:"required"` // 15:04
	EndTime   string `json:"end_time" binding:"required"`   // 15:04
}

// --------- Handlers ---------

func (h *InterviewDateHandler) List(c *gin.Context) {
	var dates []models.InterviewDate
	if err := h.db.Order("date asc").Find(&dates).Error; err != nil {
		httperr.Internal(c, "failed_to_list_dates", "Could not load interview dates.")
		return
	}
	httpresp.List(c, dates)
}

func (h *InterviewDateHandler) Create(c *gin.Context) {
	var req CreateInterviewDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	day, err := parseDay(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	start, err := combineDayTime(day, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time must be HH:MM")
		return
	}
	end, err := combineDayTime(day, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "end_time must be HH:MM")
		return
	}

	if !start.Before(end) {
		httperr.Write(c, http.StatusUnprocessableEntity, "invalid_interview_window",
			"The window must start before it ends.")
		return
	}

	var count int64
	h.db.Model(&models.InterviewDate{}).Where("date = ?", day).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "interview_date_exists", "That day is already on the calendar.")
		return
	}

	date := models.InterviewDate{
		ID:        uuid.NewString(),
		Date:      day,
		StartTime: start,
		EndTime:   end,
	}

	if err := h.db.Create(&date).Error; err != nil {
		httperr.Internal(c, "failed_to_create_date", "Could not create the interview date.")
		return
	}

	httpresp.Created(c, date)
}

// Delete removes a calendar day. Days that still have availabilities or
// assignments pointing at them are protected; the dependents go first.
func (h *InterviewDateHandler) Delete(c *gin.Context) {
	dateID := c.Param("id")

	var date models.InterviewDate
	if err := h.db.First(&date, "id = ?", dateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "interview_date_not_found", "Interview date not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load the interview date.")
		return
	}

	var dependents int64
	h.db.Model(&models.InterviewAssignment{}).Where("interview_date_id = ?", dateID).Count(&dependents)
	if dependents == 0 {
		h.db.Model(&models.UserAvailability{}).Where("interview_date_id = ?", dateID).Count(&dependents)
	}
	if dependents > 0 {
		httperr.Conflict(c, "interview_date_in_use",
			"Remove the day's availabilities and assignments first.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		// Imported rushee availabilities just unlink; their raw dates survive.
		if err := tx.Model(&models.RusheeAvailability{}).
			Where("interview_date_id = ?", dateID).
			Update("interview_date_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.InterviewDate{}, "id = ?", dateID).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_date", "Could not delete the interview date.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "interview date removed"})
}
