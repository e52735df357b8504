package models

import "time"

// InterviewAssignment is a committed booking: one rushee, one 30-minute slot,
// two distinct interviewers. At most one row per (rushee, date, slot start);
// re-scheduling the same slot overwrites the interviewer pair.
type InterviewAssignment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	RusheeID string `gorm:"size:36;index:idx_assignment_slot,unique;not null" json:"rushee_id"`
	Rushee   Rushee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"rushee"`

	InterviewDateID string        `gorm:"size:36;index:idx_assignment_slot,unique;not null" json:"interview_date_id"`
	InterviewDate   InterviewDate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StartTime time.Time `gorm:"index:idx_assignment_slot,unique;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Interviewer1ID string `gorm:"size:36;not null" json:"interviewer1_id"`
	Interviewer1   User   `gorm:"foreignKey:Interviewer1ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"interviewer1"`

	Interviewer2ID string `gorm:"size:36;not null" json:"interviewer2_id"`
	Interviewer2   User   `gorm:"foreignKey:Interviewer2ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"interviewer2"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
