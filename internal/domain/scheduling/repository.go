package scheduling

import (
	"context"
	"time"

	"github.com/rushdesk/rush-scheduler/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUser(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// AdjustInterviewLoad adds delta to the member's load counter,
	// flooring at zero.
	AdjustInterviewLoad(
		ctx context.Context,
		userID string,
		delta int,
	) error

	// -------- Rushees --------
	GetRushee(
		ctx context.Context,
		id string,
	) (*models.Rushee, error)

	FindRusheeByEmail(
		ctx context.Context,
		email string,
	) (*models.Rushee, error)

	ListRushees(
		ctx context.Context,
	) ([]models.Rushee, error)

	CreateRushee(
		ctx context.Context,
		r *models.Rushee,
	) error

	SetRusheeScheduled(
		ctx context.Context,
		rusheeID string,
		scheduled bool,
	) error

	// -------- Interview dates --------
	GetInterviewDate(
		ctx context.Context,
		id string,
	) (*models.InterviewDate, error)

	ListInterviewDates(
		ctx context.Context,
	) ([]models.InterviewDate, error)

	// -------- Availabilities --------
	ListUserAvailabilitiesForDate(
		ctx context.Context,
		interviewDateID string,
	) ([]models.UserAvailability, error)

	ListRusheeAvailabilitiesForDate(
		ctx context.Context,
		interviewDateID string,
	) ([]models.RusheeAvailability, error)

	ListRusheeAvailabilities(
		ctx context.Context,
		rusheeID string,
	) ([]models.RusheeAvailability, error)

	CreateRusheeAvailabilities(
		ctx context.Context,
		avails []models.RusheeAvailability,
	) error

	// -------- Assignments --------
	GetAssignment(
		ctx context.Context,
		id string,
	) (*models.InterviewAssignment, error)

	// FindAssignmentForSlot locks the row for update when one exists and
	// returns nil without error when none does.
	FindAssignmentForSlot(
		ctx context.Context,
		rusheeID string,
		interviewDateID string,
		slotStart time.Time,
	) (*models.InterviewAssignment, error)

	CreateAssignment(
		ctx context.Context,
		a *models.InterviewAssignment,
	) error

	UpdateAssignmentInterviewers(
		ctx context.Context,
		assignmentID string,
		interviewer1ID string,
		interviewer2ID string,
	) error

	DeleteAssignment(
		ctx context.Context,
		id string,
	) error

	CountAssignmentsForRushee(
		ctx context.Context,
		rusheeID string,
	) (int64, error)

	ListAssignmentsForDate(
		ctx context.Context,
		interviewDateID string,
	) ([]models.InterviewAssignment, error)

	// -------- Transactions --------
	// InTransaction runs fn against a repository bound to one database
	// transaction; fn returning an error rolls everything back.
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
