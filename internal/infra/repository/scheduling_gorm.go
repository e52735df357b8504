package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/rushdesk/rush-scheduler/internal/domain/scheduling"
	"github.com/rushdesk/rush-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *SchedulingGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *SchedulingGormRepository) AdjustInterviewLoad(
	ctx context.Context,
	userID string,
	delta int,
) error {

	// GREATEST keeps the counter from going negative even if assignments
	// and counters ever drift.
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("interview_load", gorm.Expr("GREATEST(interview_load + ?, 0)", delta)).
		Error
}

// --------------------------------------------------
// Rushees
// --------------------------------------------------

func (r *SchedulingGormRepository) GetRushee(
	ctx context.Context,
	id string,
) (*models.Rushee, error) {

	var ru models.Rushee
	if err := r.db.WithContext(ctx).First(&ru, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ru, nil
}

func (r *SchedulingGormRepository) FindRusheeByEmail(
	ctx context.Context,
	email string,
) (*models.Rushee, error) {

	var ru models.Rushee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&ru).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ru, nil
}

func (r *SchedulingGormRepository) ListRushees(
	ctx context.Context,
) ([]models.Rushee, error) {

	var rushees []models.Rushee
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rushees).Error; err != nil {
		return nil, err
	}
	return rushees, nil
}

func (r *SchedulingGormRepository) CreateRushee(
	ctx context.Context,
	ru *models.Rushee,
) error {
	return r.db.WithContext(ctx).Create(ru).Error
}

func (r *SchedulingGormRepository) SetRusheeScheduled(
	ctx context.Context,
	rusheeID string,
	scheduled bool,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Rushee{}).
		Where("id = ?", rusheeID).
		Update("interview_scheduled", scheduled).
		Error
}

// --------------------------------------------------
// Interview dates
// --------------------------------------------------

func (r *SchedulingGormRepository) GetInterviewDate(
	ctx context.Context,
	id string,
) (*models.InterviewDate, error) {

	var d models.InterviewDate
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *SchedulingGormRepository) ListInterviewDates(
	ctx context.Context,
) ([]models.InterviewDate, error) {

	var dates []models.InterviewDate
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// --------------------------------------------------
// Availabilities
// --------------------------------------------------

func (r *SchedulingGormRepository) ListUserAvailabilitiesForDate(
	ctx context.Context,
	interviewDateID string,
) ([]models.UserAvailability, error) {

	var avails []models.UserAvailability
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("interview_date_id = ?", interviewDateID).
		Order("start_time ASC").
		Find(&avails).Error; err != nil {
		return nil, err
	}
	return avails, nil
}

func (r *SchedulingGormRepository) ListRusheeAvailabilitiesForDate(
	ctx context.Context,
	interviewDateID string,
) ([]models.RusheeAvailability, error) {

	var avails []models.RusheeAvailability
	if err := r.db.WithContext(ctx).
		Preload("Rushee").
		Where("interview_date_id = ?", interviewDateID).
		Order("start_time ASC").
		Find(&avails).Error; err != nil {
		return nil, err
	}
	return avails, nil
}

func (r *SchedulingGormRepository) ListRusheeAvailabilities(
	ctx context.Context,
	rusheeID string,
) ([]models.RusheeAvailability, error) {

	var avails []models.RusheeAvailability
	if err := r.db.WithContext(ctx).
		Where("rushee_id = ?", rusheeID).
		Order("date ASC, start_time ASC").
		Find(&avails).Error; err != nil {
		return nil, err
	}
	return avails, nil
}

func (r *SchedulingGormRepository) CreateRusheeAvailabilities(
	ctx context.Context,
	avails []models.RusheeAvailability,
) error {
	return r.db.WithContext(ctx).Create(&avails).Error
}

// --------------------------------------------------
// Assignments
// --------------------------------------------------

func (r *SchedulingGormRepository) GetAssignment(
	ctx context.Context,
	id string,
) (*models.InterviewAssignment, error) {

	var a models.InterviewAssignment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SchedulingGormRepository) FindAssignmentForSlot(
	ctx context.Context,
	rusheeID string,
	interviewDateID string,
	slotStart time.Time,
) (*models.InterviewAssignment, error) {

	var a models.InterviewAssignment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"rushee_id = ? AND interview_date_id = ? AND start_time = ?",
			rusheeID, interviewDateID, slotStart,
		).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SchedulingGormRepository) CreateAssignment(
	ctx context.Context,
	a *models.InterviewAssignment,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *SchedulingGormRepository) UpdateAssignmentInterviewers(
	ctx context.Context,
	assignmentID string,
	interviewer1ID string,
	interviewer2ID string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.InterviewAssignment{}).
		Where("id = ?", assignmentID).
		Updates(map[string]any{
			"interviewer1_id": interviewer1ID,
			"interviewer2_id": interviewer2ID,
		}).
		Error
}

func (r *SchedulingGormRepository) DeleteAssignment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.InterviewAssignment{}, "id = ?", id).
		Error
}

func (r *SchedulingGormRepository) CountAssignmentsForRushee(
	ctx context.Context,
	rusheeID string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InterviewAssignment{}).
		Where("rushee_id = ?", rusheeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SchedulingGormRepository) ListAssignmentsForDate(
	ctx context.Context,
	interviewDateID string,
) ([]models.InterviewAssignment, error) {

	var assignments []models.InterviewAssignment
	if err := r.db.WithContext(ctx).
		Preload("Rushee").
		Preload("Interviewer1").
		Preload("Interviewer2").
		Where("interview_date_id = ?", interviewDateID).
		Order("start_time ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *SchedulingGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SchedulingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
