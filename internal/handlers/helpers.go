package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/rushdesk/rush-scheduler/internal/domain/scheduling"
	"github.com/rushdesk/rush-scheduler/internal/middleware"
)

func actorFromContext(c *gin.Context) domain.Actor {
	id, _ := c.MustGet(middleware.ContextUserID).(string)
	role, _ := c.MustGet(middleware.ContextUserRole).(string)
	return domain.Actor{ID: id, Role: domain.Role(role)}
}

// parseDay parses a calendar day ("2006-01-02") as UTC midnight.
func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// combineDayTime puts a wall-clock time ("15:04") onto a UTC day.
func combineDayTime(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
