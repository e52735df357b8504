package dto

import "time"

// ===============================
// Scheduler grid view
// ===============================

type InterviewerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SchedulerCell struct {
	SlotStart time.Time `json:"slot_start"`
	SlotEnd   time.Time `json:"slot_end"`

	Available bool `json:"available"`
	Scheduled bool `json:"scheduled"`

	AssignmentID *string `json:"assignment_id,omitempty"`
	Interviewer1 *string `json:"interviewer1,omitempty"`
	Interviewer2 *string `json:"interviewer2,omitempty"`

	// Members whose availability touches this slot, widest-pool semantics.
	AvailableInterviewers []InterviewerOption `json:"available_interviewers,omitempty"`
}

type SchedulerRow struct {
	RusheeID   string          `json:"rushee_id"`
	RusheeName string          `json:"rushee_name"`
	Cells      []SchedulerCell `json:"cells"`
}

type SchedulerDay struct {
	InterviewDateID string         `json:"interview_date_id"`
	Date            time.Time      `json:"date"`
	WindowStart     time.Time      `json:"window_start"`
	WindowEnd       time.Time      `json:"window_end"`
	Rows            []SchedulerRow `json:"rows"`
}

type SchedulerGrid struct {
	Days []SchedulerDay `json:"days"`
}
