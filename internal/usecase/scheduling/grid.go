package scheduling

import (
	"context"

	domain "github.com/rushdesk/rush-scheduler/internal/domain/scheduling"
	"github.com/rushdesk/rush-scheduler/internal/dto"
	"github.com/rushdesk/rush-scheduler/internal/models"
)

// GetSchedulerGrid assembles the admin scheduler view: one tab per interview
// date, one row per rushee, one cell per 30-minute slot. Reads go through the
// cache first; a snapshot may be briefly stale and is invalidated by every
// ledger write.
type GetSchedulerGrid struct {
	repo  domain.Repository
	cache GridCache
}

func NewGetSchedulerGrid(repo domain.Repository, cache GridCache) *GetSchedulerGrid {
	return &GetSchedulerGrid{repo: repo, cache: cache}
}

func (uc *GetSchedulerGrid) Execute(ctx context.Context) (*dto.SchedulerGrid, error) {
	if cached, err := uc.cache.Get(ctx); err == nil && cached != nil {
		return cached, nil
	}

	dates, err := uc.repo.ListInterviewDates(ctx)
	if err != nil {
		return nil, asStoreError(err)
	}

	rushees, err := uc.repo.ListRushees(ctx)
	if err != nil {
		return nil, asStoreError(err)
	}

	grid := &dto.SchedulerGrid{}

	for _, date := range dates {
		day, err := uc.buildDay(ctx, date, rushees)
		if err != nil {
			return nil, err
		}
		grid.Days = append(grid.Days, *day)
	}

	_ = uc.cache.Set(ctx, grid)

	return grid, nil
}

func (uc *GetSchedulerGrid) buildDay(
	ctx context.Context,
	date models.InterviewDate,
	rushees []models.Rushee,
) (*dto.SchedulerDay, error) {

	window := domain.Window{Start: date.StartTime, End: date.EndTime}
	slots, err := domain.SlotGrid(window)
	if err != nil {
		return nil, err
	}

	rusheeAvails, err := uc.repo.ListRusheeAvailabilitiesForDate(ctx, date.ID)
	if err != nil {
		return nil, asStoreError(err)
	}
	userAvails, err := uc.repo.ListUserAvailabilitiesForDate(ctx, date.ID)
	if err != nil {
		return nil, asStoreError(err)
	}
	assignments, err := uc.repo.ListAssignmentsForDate(ctx, date.ID)
	if err != nil {
		return nil, asStoreError(err)
	}

	rusheeIvs := make([]domain.OwnedInterval, 0, len(rusheeAvails))
	for _, a := range rusheeAvails {
		rusheeIvs = append(rusheeIvs, domain.OwnedInterval{
			AvailabilityID: a.ID,
			OwnerID:        a.RusheeID,
			OwnerName:      a.Rushee.Name,
			Start:          a.StartTime,
			End:            a.EndTime,
		})
	}

	userIvs := make([]domain.OwnedInterval, 0, len(userAvails))
	for _, a := range userAvails {
		userIvs = append(userIvs, domain.OwnedInterval{
			AvailabilityID: a.ID,
			OwnerID:        a.UserID,
			OwnerName:      a.User.Name,
			Start:          a.StartTime,
			End:            a.EndTime,
		})
	}

	day := &dto.SchedulerDay{
		InterviewDateID: date.ID,
		Date:            date.Date,
		WindowStart:     date.StartTime,
		WindowEnd:       date.EndTime,
	}

	for _, r := range rushees {
		row := dto.SchedulerRow{
			RusheeID:   r.ID,
			RusheeName: r.Name,
			Cells:      make([]dto.SchedulerCell, 0, len(slots)),
		}

		for _, slot := range slots {
			match := domain.MatchSlot(slot, rusheeIvs, userIvs)

			cell := dto.SchedulerCell{
				SlotStart: slot.Start,
				SlotEnd:   slot.End,
			}

			for _, iv := range match.Rushees {
				if iv.OwnerID == r.ID {
					cell.Available = true
					break
				}
			}

			for _, iv := range match.Interviewers {
				cell.AvailableInterviewers = append(cell.AvailableInterviewers, dto.InterviewerOption{
					ID:   iv.OwnerID,
					Name: iv.OwnerName,
				})
			}

			for i := range assignments {
				a := &assignments[i]
				if a.RusheeID == r.ID && a.StartTime.Equal(slot.Start) {
					cell.Scheduled = true
					cell.AssignmentID = &a.ID
					cell.Interviewer1 = &a.Interviewer1.Name
					cell.Interviewer2 = &a.Interviewer2.Name
					break
				}
			}

			row.Cells = append(row.Cells, cell)
		}

		day.Rows = append(day.Rows, row)
	}

	return day, nil
}
