package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rushdesk/rush-scheduler/internal/audit"
	domain "github.com/rushdesk/rush-scheduler/internal/domain/scheduling"
	"github.com/rushdesk/rush-scheduler/internal/httperr"
	"github.com/rushdesk/rush-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleInput struct {
	RusheeID        string
	InterviewDateID string
	SlotStart       time.Time

	// Exactly two distinct members.
	InterviewerIDs []string
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleInterview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache GridCache
}

func NewScheduleInterview(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache GridCache,
) *ScheduleInterview {
	return &ScheduleInterview{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ScheduleInterview) Execute(
	ctx context.Context,
	actor domain.Actor,
	in ScheduleInput,
) (*models.InterviewAssignment, error) {

	if !actor.CanScheduleInterviews() {
		return nil, httperr.ErrValidation("not_permitted")
	}

	if err := validateScheduleInput(in); err != nil {
		return nil, err
	}

	date, err := uc.repo.GetInterviewDate(ctx, in.InterviewDateID)
	if err != nil {
		return nil, httperr.ErrNotFound("interview_date_not_found")
	}

	window := domain.Window{Start: date.StartTime, End: date.EndTime}
	slot, err := domain.SlotAt(window, in.SlotStart)
	if err != nil {
		return nil, err
	}

	rushee, err := uc.repo.GetRushee(ctx, in.RusheeID)
	if err != nil {
		return nil, httperr.ErrNotFound("rushee_not_found")
	}

	for _, id := range in.InterviewerIDs {
		if _, err := uc.repo.GetUser(ctx, id); err != nil {
			return nil, httperr.ErrNotFound("interviewer_not_found")
		}
	}

	// Explicit availability precheck: a slot the rushee cannot fully attend
	// is rejected rather than silently booked.
	if err := uc.checkRusheeCoverage(ctx, rushee.ID, date.ID, slot); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var result *models.InterviewAssignment

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		existing, err := tx.FindAssignmentForSlot(
			ctx,
			in.RusheeID,
			in.InterviewDateID,
			slot.Start,
		)
		if err != nil {
			return err
		}

		if existing != nil {
			// Re-scheduling the same slot: transfer the load from the
			// previous pair to the new one.
			for _, prev := range []string{existing.Interviewer1ID, existing.Interviewer2ID} {
				if err := tx.AdjustInterviewLoad(ctx, prev, -1); err != nil {
					return err
				}
			}

			if err := tx.UpdateAssignmentInterviewers(
				ctx,
				existing.ID,
				in.InterviewerIDs[0],
				in.InterviewerIDs[1],
			); err != nil {
				return err
			}

			existing.Interviewer1ID = in.InterviewerIDs[0]
			existing.Interviewer2ID = in.InterviewerIDs[1]
			result = existing
		} else {
			a := &models.InterviewAssignment{
				ID:              uuid.NewString(),
				RusheeID:        in.RusheeID,
				InterviewDateID: in.InterviewDateID,
				StartTime:       slot.Start,
				EndTime:         slot.End,
				Interviewer1ID:  in.InterviewerIDs[0],
				Interviewer2ID:  in.InterviewerIDs[1],
			}
			if err := tx.CreateAssignment(ctx, a); err != nil {
				return err
			}
			result = a
		}

		for _, id := range in.InterviewerIDs {
			if err := tx.AdjustInterviewLoad(ctx, id, +1); err != nil {
				return err
			}
		}

		return tx.SetRusheeScheduled(ctx, in.RusheeID, true)
	})
	if err != nil {
		return nil, asStoreError(err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ID,
		Action:   "interview_scheduled",
		Entity:   "interview_assignment",
		EntityID: &result.ID,
		Metadata: map[string]any{
			"rushee_id":  in.RusheeID,
			"slot_start": slot.Start,
		},
	})

	// The grid snapshot is stale the moment the ledger changes.
	_ = uc.cache.Invalidate(context.WithoutCancel(ctx))

	return result, nil
}

func validateScheduleInput(in ScheduleInput) error {
	if in.RusheeID == "" || in.InterviewDateID == "" || in.SlotStart.IsZero() {
		return httperr.ErrValidation("missing_fields")
	}
	if len(in.InterviewerIDs) != 2 {
		return httperr.ErrValidation("interviewer_pair_required")
	}
	if in.InterviewerIDs[0] == "" || in.InterviewerIDs[1] == "" {
		return httperr.ErrValidation("missing_fields")
	}
	if in.InterviewerIDs[0] == in.InterviewerIDs[1] {
		return httperr.ErrValidation("duplicate_interviewers")
	}
	return nil
}

func (uc *ScheduleInterview) checkRusheeCoverage(
	ctx context.Context,
	rusheeID string,
	interviewDateID string,
	slot domain.Slot,
) error {

	avails, err := uc.repo.ListRusheeAvailabilitiesForDate(ctx, interviewDateID)
	if err != nil {
		return asStoreError(err)
	}

	for _, a := range avails {
		if a.RusheeID != rusheeID {
			continue
		}
		iv := domain.OwnedInterval{Start: a.StartTime, End: a.EndTime}
		if domain.CoversSlot(iv, slot) {
			return nil
		}
	}

	return httperr.ErrValidation("rushee_not_available")
}
