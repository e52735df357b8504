package models

import "time"

// Rushee is a candidate going through the interview process. Created from a
// parsed application, never via self-registration.
type Rushee struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Email       string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PhoneNumber *string `gorm:"size:20" json:"phone_number"`
	Major       *string `gorm:"size:100" json:"major"`

	// True iff at least one InterviewAssignment references this rushee.
	InterviewScheduled bool `gorm:"default:false" json:"interview_scheduled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
