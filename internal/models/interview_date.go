package models

import "time"

// InterviewDate is one calendar day's interviewing window. All timestamps are
// stored in UTC; Date carries midnight of the day, StartTime/EndTime the window.
type InterviewDate struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Date      time.Time `gorm:"not null" json:"date"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
