package scheduling

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	domain "github.com/rushdesk/rush-scheduler/internal/domain/scheduling"
	"github.com/rushdesk/rush-scheduler/internal/dto"
	"github.com/rushdesk/rush-scheduler/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository for use case tests.
type fakeRepo struct {
	users        map[string]*models.User
	rushees      map[string]*models.Rushee
	dates        map[string]*models.InterviewDate
	userAvails   []models.UserAvailability
	rusheeAvails []models.RusheeAvailability
	assignments  map[string]*models.InterviewAssignment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:       map[string]*models.User{},
		rushees:     map[string]*models.Rushee{},
		dates:       map[string]*models.InterviewDate{},
		assignments: map[string]*models.InterviewAssignment{},
	}
}

func (f *fakeRepo) GetUser(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (f *fakeRepo) AdjustInterviewLoad(_ context.Context, userID string, delta int) error {
	u, ok := f.users[userID]
	if !ok {
		return errNotFound
	}
	u.InterviewLoad += delta
	if u.InterviewLoad < 0 {
		u.InterviewLoad = 0
	}
	return nil
}

func (f *fakeRepo) GetRushee(_ context.Context, id string) (*models.Rushee, error) {
	r, ok := f.rushees[id]
	if !ok {
		return nil, errNotFound
	}
	return r, nil
}

func (f *fakeRepo) FindRusheeByEmail(_ context.Context, email string) (*models.Rushee, error) {
	for _, r := range f.rushees {
		if strings.EqualFold(r.Email, email) {
			return r, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListRushees(_ context.Context) ([]models.Rushee, error) {
	out := make([]models.Rushee, 0, len(f.rushees))
	for _, r := range f.rushees {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepo) CreateRushee(_ context.Context, r *models.Rushee) error {
	f.rushees[r.ID] = r
	return nil
}

func (f *fakeRepo) SetRusheeScheduled(_ context.Context, rusheeID string, scheduled bool) error {
	r, ok := f.rushees[rusheeID]
	if !ok {
		return errNotFound
	}
	r.InterviewScheduled = scheduled
	return nil
}

func (f *fakeRepo) GetInterviewDate(_ context.Context, id string) (*models.InterviewDate, error) {
	d, ok := f.dates[id]
	if !ok {
		return nil, errNotFound
	}
	return d, nil
}

func (f *fakeRepo) ListInterviewDates(_ context.Context) ([]models.InterviewDate, error) {
	out := make([]models.InterviewDate, 0, len(f.dates))
	for _, d := range f.dates {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeRepo) ListUserAvailabilitiesForDate(_ context.Context, interviewDateID string) ([]models.UserAvailability, error) {
	var out []models.UserAvailability
	for _, a := range f.userAvails {
		if a.InterviewDateID == interviewDateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListRusheeAvailabilitiesForDate(_ context.Context, interviewDateID string) ([]models.RusheeAvailability, error) {
	var out []models.RusheeAvailability
	for _, a := range f.rusheeAvails {
		if a.InterviewDateID != nil && *a.InterviewDateID == interviewDateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListRusheeAvailabilities(_ context.Context, rusheeID string) ([]models.RusheeAvailability, error) {
	var out []models.RusheeAvailability
	for _, a := range f.rusheeAvails {
		if a.RusheeID == rusheeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateRusheeAvailabilities(_ context.Context, avails []models.RusheeAvailability) error {
	f.rusheeAvails = append(f.rusheeAvails, avails...)
	return nil
}

func (f *fakeRepo) GetAssignment(_ context.Context, id string) (*models.InterviewAssignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (f *fakeRepo) FindAssignmentForSlot(
	_ context.Context,
	rusheeID string,
	interviewDateID string,
	slotStart time.Time,
) (*models.InterviewAssignment, error) {
	for _, a := range f.assignments {
		if a.RusheeID == rusheeID && a.InterviewDateID == interviewDateID && a.StartTime.Equal(slotStart) {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CreateAssignment(_ context.Context, a *models.InterviewAssignment) error {
	f.assignments[a.ID] = a
	return nil
}

func (f *fakeRepo) UpdateAssignmentInterviewers(
	_ context.Context,
	assignmentID string,
	interviewer1ID string,
	interviewer2ID string,
) error {
	a, ok := f.assignments[assignmentID]
	if !ok {
		return errNotFound
	}
	a.Interviewer1ID = interviewer1ID
	a.Interviewer2ID = interviewer2ID
	return nil
}

func (f *fakeRepo) DeleteAssignment(_ context.Context, id string) error {
	if _, ok := f.assignments[id]; !ok {
		return errNotFound
	}
	delete(f.assignments, id)
	return nil
}

func (f *fakeRepo) CountAssignmentsForRushee(_ context.Context, rusheeID string) (int64, error) {
	var n int64
	for _, a := range f.assignments {
		if a.RusheeID == rusheeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) ListAssignmentsForDate(_ context.Context, interviewDateID string) ([]models.InterviewAssignment, error) {
	var out []models.InterviewAssignment
	for _, a := range f.assignments {
		if a.InterviewDateID == interviewDateID {
			withNames := *a
			if u, ok := f.users[a.Interviewer1ID]; ok {
				withNames.Interviewer1 = *u
			}
			if u, ok := f.users[a.Interviewer2ID]; ok {
				withNames.Interviewer2 = *u
			}
			out = append(out, withNames)
		}
	}
	return out, nil
}

func (f *fakeRepo) InTransaction(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeCache records calls; Get always misses unless primed.
type fakeCache struct {
	stored        *dto.SchedulerGrid
	sets          int
	invalidations int
}

func (c *fakeCache) Get(_ context.Context) (*dto.SchedulerGrid, error) {
	return c.stored, nil
}

func (c *fakeCache) Set(_ context.Context, g *dto.SchedulerGrid) error {
	c.stored = g
	c.sets++
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context) error {
	c.stored = nil
	c.invalidations++
	return nil
}

var _ GridCache = (*fakeCache)(nil)
