package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushdesk/rush-scheduler/internal/dto"
	"github.com/rushdesk/rush-scheduler/internal/models"
)

func gridFixture() *fakeRepo {
	repo := scheduleFixture()

	repo.rushees["rushee-2"] = &models.Rushee{ID: "rushee-2", Name: "Avery", Email: "avery@example.edu"}

	dateID := "date-1"
	repo.rusheeAvails = append(repo.rusheeAvails, models.RusheeAvailability{
		ID:              "ra-2",
		RusheeID:        "rushee-2",
		InterviewDateID: &dateID,
		StartTime:       utc(19, 0),
		EndTime:         utc(20, 0),
	})

	repo.userAvails = []models.UserAvailability{
		{
			ID:              "ua-1",
			UserID:          "alice",
			User:            *repo.users["alice"],
			InterviewDateID: "date-1",
			StartTime:       utc(18, 0),
			EndTime:         utc(20, 0),
		},
		{
			ID:              "ua-2",
			UserID:          "bob",
			User:            *repo.users["bob"],
			InterviewDateID: "date-1",
			// Overlaps only the first slot's tail.
			StartTime: utc(18, 15),
			EndTime:   utc(18, 45),
		},
	}

	return repo
}

func TestGetSchedulerGrid_BuildsDays(t *testing.T) {
	repo := gridFixture()
	cache := &fakeCache{}
	uc := NewGetSchedulerGrid(repo, cache)

	grid, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, grid.Days, 1)

	day := grid.Days[0]
	assert.Equal(t, "date-1", day.InterviewDateID)
	assert.Equal(t, utc(18, 0), day.WindowStart)
	assert.Equal(t, utc(20, 0), day.WindowEnd)

	// Rushees sorted by name: Avery, Riley. Four slots each.
	require.Len(t, day.Rows, 2)
	assert.Equal(t, "rushee-2", day.Rows[0].RusheeID)
	assert.Equal(t, "rushee-1", day.Rows[1].RusheeID)
	require.Len(t, day.Rows[0].Cells, 4)

	// Riley is free 18:00-19:00: first two slots on, last two off.
	riley := day.Rows[1]
	assert.True(t, riley.Cells[0].Available)
	assert.True(t, riley.Cells[1].Available)
	assert.False(t, riley.Cells[2].Available)
	assert.False(t, riley.Cells[3].Available)

	// Avery mirrors the second hour.
	avery := day.Rows[0]
	assert.False(t, avery.Cells[0].Available)
	assert.True(t, avery.Cells[2].Available)

	// First slot: alice covers it, bob merely overlaps, both are offered.
	first := riley.Cells[0]
	require.Len(t, first.AvailableInterviewers, 2)
	assert.Equal(t, "alice", first.AvailableInterviewers[0].ID)
	assert.Equal(t, "bob", first.AvailableInterviewers[1].ID)

	// Third slot: only alice's span reaches it.
	require.Len(t, riley.Cells[2].AvailableInterviewers, 1)
	assert.Equal(t, "alice", riley.Cells[2].AvailableInterviewers[0].ID)

	// The snapshot was written to the cache.
	assert.Equal(t, 1, cache.sets)
}

func TestGetSchedulerGrid_MarksScheduledCells(t *testing.T) {
	repo := gridFixture()
	uc := NewGetSchedulerGrid(repo, &fakeCache{})

	repo.assignments["as-1"] = &models.InterviewAssignment{
		ID:              "as-1",
		RusheeID:        "rushee-1",
		InterviewDateID: "date-1",
		StartTime:       utc(18, 0),
		EndTime:         utc(18, 30),
		Interviewer1ID:  "alice",
		Interviewer2ID:  "bob",
	}

	grid, err := uc.Execute(context.Background())
	require.NoError(t, err)

	riley := grid.Days[0].Rows[1]
	cell := riley.Cells[0]
	require.True(t, cell.Scheduled)
	require.NotNil(t, cell.AssignmentID)
	assert.Equal(t, "as-1", *cell.AssignmentID)
	require.NotNil(t, cell.Interviewer1)
	assert.Equal(t, "alice", *cell.Interviewer1)

	assert.False(t, riley.Cells[1].Scheduled)
	assert.False(t, grid.Days[0].Rows[0].Cells[0].Scheduled)
}

func TestGetSchedulerGrid_ServesCachedSnapshot(t *testing.T) {
	repo := gridFixture()
	cached := &dto.SchedulerGrid{
		Days: []dto.SchedulerDay{{InterviewDateID: "cached-day", Date: time.Now()}},
	}
	uc := NewGetSchedulerGrid(repo, &fakeCache{stored: cached})

	grid, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached-day", grid.Days[0].InterviewDateID)
}
