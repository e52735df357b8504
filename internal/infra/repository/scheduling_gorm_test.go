package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/rushdesk/rush-scheduler/internal/domain/scheduling"
	"github.com/rushdesk/rush-scheduler/internal/infra/repository"
)

func newMockRepo(t *testing.T) (*repository.SchedulingGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return repository.NewSchedulingGormRepository(gdb), mock
}

func TestGetUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "interview_load"}).
		AddRow("alice", "Alice", "alice@example.edu", "member", 3)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(rows)

	u, err := repo.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, 3, u.InterviewLoad)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustInterviewLoad(t *testing.T) {
	repo, mock := newMockRepo(t)

	// The floor lives in the SQL itself.
	mock.ExpectExec(`UPDATE "users" SET "interview_load"=GREATEST\(interview_load \+ \$1, 0\)`).
		WithArgs(-1, sqlmock.AnyArg(), "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AdjustInterviewLoad(context.Background(), "alice", -1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAssignmentForSlot(t *testing.T) {
	slotStart := time.Date(2025, 9, 12, 18, 0, 0, 0, time.UTC)

	t.Run("locks the row when one exists", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := sqlmock.NewRows([]string{"id", "rushee_id", "interview_date_id", "start_time", "interviewer1_id", "interviewer2_id"}).
			AddRow("as-1", "rushee-1", "date-1", slotStart, "alice", "bob")

		mock.ExpectQuery(`SELECT \* FROM "interview_assignments" WHERE rushee_id = \$1 AND interview_date_id = \$2 AND start_time = \$3 .* FOR UPDATE`).
			WillReturnRows(rows)

		a, err := repo.FindAssignmentForSlot(context.Background(), "rushee-1", "date-1", slotStart)
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, "as-1", a.ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row means nil without error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT \* FROM "interview_assignments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		a, err := repo.FindAssignmentForSlot(context.Background(), "rushee-1", "date-1", slotStart)
		require.NoError(t, err)
		assert.Nil(t, a)
	})
}

func TestFindRusheeByEmail_NotFoundIsNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "rushees" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ru, err := repo.FindRusheeByEmail(context.Background(), "nobody@example.edu")
	require.NoError(t, err)
	assert.Nil(t, ru)
}

func TestSetRusheeScheduled(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "rushees" SET "interview_scheduled"=\$1`).
		WithArgs(true, sqlmock.AnyArg(), "rushee-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetRusheeScheduled(context.Background(), "rushee-1", true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAssignment(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM "interview_assignments" WHERE id = \$1`).
		WithArgs("as-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteAssignment(context.Background(), "as-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAssignmentsForRushee(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "interview_assignments" WHERE rushee_id = \$1`).
		WithArgs("rushee-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountAssignmentsForRushee(context.Background(), "rushee-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestInTransaction_RollsBackOnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "interview_assignments" WHERE id = \$1`).
		WithArgs("as-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := repo.InTransaction(context.Background(), func(tx domain.Repository) error {
		require.NoError(t, tx.DeleteAssignment(context.Background(), "as-1"))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
