package scheduling

import (
	"context"

	"github.com/rushdesk/rush-scheduler/internal/audit"
	domain "github.com/rushdesk/rush-scheduler/internal/domain/scheduling"
	"github.com/rushdesk/rush-scheduler/internal/httperr"
)

type UnscheduleInterview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache GridCache
}

func NewUnscheduleInterview(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache GridCache,
) *UnscheduleInterview {
	return &UnscheduleInterview{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UnscheduleInterview) Execute(
	ctx context.Context,
	actor domain.Actor,
	assignmentID string,
) error {

	if !actor.CanScheduleInterviews() {
		return httperr.ErrValidation("not_permitted")
	}
	if assignmentID == "" {
		return httperr.ErrValidation("missing_fields")
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var rusheeID string

	err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		a, err := tx.GetAssignment(ctx, assignmentID)
		if err != nil {
			return httperr.ErrNotFound("assignment_not_found")
		}
		rusheeID = a.RusheeID

		for _, id := range []string{a.Interviewer1ID, a.Interviewer2ID} {
			if err := tx.AdjustInterviewLoad(ctx, id, -1); err != nil {
				return err
			}
		}

		if err := tx.DeleteAssignment(ctx, a.ID); err != nil {
			return err
		}

		remaining, err := tx.CountAssignmentsForRushee(ctx, a.RusheeID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return tx.SetRusheeScheduled(ctx, a.RusheeID, false)
		}
		return nil
	})
	if err != nil {
		return asStoreError(err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ID,
		Action:   "interview_unscheduled",
		Entity:   "interview_assignment",
		EntityID: &assignmentID,
		Metadata: map[string]any{"rushee_id": rusheeID},
	})

	_ = uc.cache.Invalidate(context.WithoutCancel(ctx))

	return nil
}
