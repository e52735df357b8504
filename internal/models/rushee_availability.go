package models

import "time"

// RusheeAvailability mirrors UserAvailability for candidates. InterviewDateID
// is nullable: imported application entries that match no calendar day keep
// their raw date but stay unlinked.
type RusheeAvailability struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	RusheeID string `gorm:"size:36;index;not null" json:"rushee_id"`
	Rushee   Rushee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"rushee"`

	InterviewDateID *string `gorm:"size:36;index" json:"interview_date_id"`

	Date      time.Time `gorm:"not null" json:"date"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
