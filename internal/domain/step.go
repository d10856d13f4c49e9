package domain

import "time"

// ScheduleStep is one (job, process) pairing with its computed time window.
// Steps are created atomically when their parent job is scheduled and never
// mutated afterwards, except through a whole-suffix reschedule or a per-step
// value re-split when the job's contract value changes.
type ScheduleStep struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	JobID         string    `gorm:"type:text;not null;index:idx_steps_job" json:"job_id"`
	Seq           int       `gorm:"not null" json:"seq"`
	Process       string    `gorm:"type:text;not null;index:idx_steps_process" json:"process"`
	StartAt       time.Time `gorm:"not null" json:"start_at"`
	FinishAt      time.Time `gorm:"not null;index:idx_steps_finish" json:"finish_at"`
	DurationHours float64   `gorm:"not null" json:"duration_hours"`
	Impressions   int       `gorm:"not null" json:"impressions"`
	StepValue     float64   `gorm:"default:0" json:"step_value"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName returns the database table name for ScheduleStep.
func (ScheduleStep) TableName() string {
	return "schedule_steps"
}
