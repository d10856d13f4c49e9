package domain

import "time"

// JobStatus represents the lifecycle state of a production job.
// Every job the planner persists has already been scheduled; a job whose
// steps failed to write is rolled back and never stored.
type JobStatus string

const (
	JobStatusScheduled JobStatus = "scheduled"
)

// Job represents one customer order routed through the production floor.
// Name is a display attribute and is not guaranteed unique; all mutations
// (value edits, deletes, reschedules) key on ID.
type Job struct {
	ID            string     `gorm:"type:text;primaryKey" json:"id"`
	Name          string     `gorm:"type:text;not null;index:idx_jobs_name" json:"name"`
	SalesRep      string     `gorm:"type:text" json:"sales_rep"`
	FinishedQty   int        `gorm:"not null" json:"finished_qty"`
	UpsPerSheet   int        `gorm:"not null" json:"ups_per_sheet"`
	OversPct      float64    `gorm:"default:0" json:"overs_pct"`
	Impressions   int        `gorm:"not null" json:"impressions"`
	ContractValue float64    `gorm:"default:0" json:"contract_value"`
	NightShift    bool       `gorm:"default:false" json:"night_shift"`
	WeekendWork   bool       `gorm:"default:false" json:"weekend_work"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	DueAt         *time.Time `json:"due_at,omitempty"`
	Status        JobStatus  `gorm:"type:text;default:scheduled" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Steps []ScheduleStep `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

// TableName returns the database table name for Job.
func (Job) TableName() string {
	return "jobs"
}
