package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rushdesk/rush-scheduler/internal/httperr"
	"github.com/rushdesk/rush-scheduler/internal/httpresp"
	usecase "github.com/rushdesk/rush-scheduler/internal/usecase/scheduling"
)

type SchedulerHandler struct {
	grid       *usecase.GetSchedulerGrid
	schedule   *usecase.ScheduleInterview
	unschedule *usecase.UnscheduleInterview
}

func NewSchedulerHandler(
	grid *usecase.GetSchedulerGrid,
	schedule *usecase.ScheduleInterview,
	unschedule *usecase.UnscheduleInterview,
) *SchedulerHandler {
	return &SchedulerHandler{
		grid:       grid,
		schedule:   schedule,
		unschedule: unschedule,
	}
}

// --------- Requests ---------

type ScheduleRequest struct {
	RusheeID        string   `json:"rushee_id" binding:"required"`
	InterviewDateID string   `json:"interview_date_id" binding:"required"`
	SlotStart       string   `json:"slot_start" binding:"required"`
	InterviewerIDs  []string `json:"interviewer_ids" binding:"required"`
}

// --------- Handlers ---------

// Grid returns the full scheduler view: every interview date, every rushee,
// every 30-minute slot with its candidates and booking state.
func (h *SchedulerHandler) Grid(c *gin.Context) {
	grid, err := h.grid.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, grid)
}

func (h *SchedulerHandler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slotStart, err := time.Parse(time.RFC3339, req.SlotStart)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_start", "slot_start must be RFC3339")
		return
	}

	assignment, err := h.schedule.Execute(c.Request.Context(), actorFromContext(c), usecase.ScheduleInput{
		RusheeID:        req.RusheeID,
		InterviewDateID: req.InterviewDateID,
		SlotStart:       slotStart.UTC(),
		InterviewerIDs:  req.InterviewerIDs,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, assignment)
}

func (h *SchedulerHandler) Unschedule(c *gin.Context) {
	assignmentID := c.Param("id")

	if err := h.unschedule.Execute(c.Request.Context(), actorFromContext(c), assignmentID); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "assignment removed"})
}
