package domain

// ProcessDefinition describes one machine/process the shop can route work
// through. It is static configuration: loaded once at startup and persisted so
// other tools can read the catalog, never edited through the planner itself.
type ProcessDefinition struct {
	Name        string  `gorm:"type:text;primaryKey" json:"name"`
	RatePerHour float64 `gorm:"not null" json:"rate_per_hour"`
	// BufferHours delays the start of any step on this machine, e.g. die
	// cutter make-ready that happens before the clock starts.
	BufferHours float64 `gorm:"default:0" json:"buffer_hours"`
}

// TableName returns the database table name for ProcessDefinition.
func (ProcessDefinition) TableName() string {
	return "process_definitions"
}
