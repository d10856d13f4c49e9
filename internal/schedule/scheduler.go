package schedule

import "time"

// Process is one entry of the machine catalog as the scheduler sees it.
type Process struct {
	Name        string
	RatePerHour float64
	// BufferHours delays the step's start on this machine before the shift
	// snap is applied (make-ready, curing, glue setting).
	BufferHours float64
}

// Input carries everything one scheduling run needs. The bookings snapshot
// and the base instant come from the caller so the computation stays pure
// and deterministic: identical inputs always yield identical steps.
type Input struct {
	Impressions int
	Processes   []string
	NightShift  bool
	WeekendWork bool
	StartAt     *time.Time // custom start; nil means Now
	Now         time.Time
	SetupHours  float64
	Catalog     map[string]Process
	Bookings    []Booking
}

// Step is one planned (job, process) pairing.
type Step struct {
	Seq           int
	Process       string
	StartAt       time.Time
	FinishAt      time.Time
	DurationHours float64
	Impressions   int
}

// ScheduleJob computes start/finish instants for an ordered list of
// processes belonging to one job. Each step starts no earlier than the
// previous step's finish and no earlier than its machine's latest booked
// finish, snapped forward into the shift window. Validation runs up front:
// an unknown process or non-positive rate rejects the whole job before any
// step is emitted.
func (c Calendar) ScheduleJob(in Input) ([]Step, error) {
	if in.Impressions <= 0 {
		return nil, invalidf("impressions", "must be positive, got %d", in.Impressions)
	}
	if len(in.Processes) == 0 {
		return nil, invalidf("processes", "at least one process is required")
	}
	for _, name := range in.Processes {
		p, ok := in.Catalog[name]
		if !ok {
			return nil, invalidf("processes", "unknown process %q", name)
		}
		if p.RatePerHour <= 0 {
			return nil, invalidf("processes", "process %q has non-positive rate %v", name, p.RatePerHour)
		}
	}

	base := in.Now
	if in.StartAt != nil {
		base = *in.StartAt
	}

	// Local copy so committed steps constrain later steps of the same job
	// without mutating the caller's snapshot.
	bookings := make([]Booking, len(in.Bookings), len(in.Bookings)+len(in.Processes))
	copy(bookings, in.Bookings)

	cursor := base
	steps := make([]Step, 0, len(in.Processes))
	for i, name := range in.Processes {
		p := in.Catalog[name]

		start := maxTime(EarliestFree(name, bookings, base), cursor)
		if p.BufferHours > 0 {
			start = start.Add(hoursDuration(p.BufferHours))
		}
		start, err := c.NextWorkingTime(start, in.NightShift, in.WeekendWork)
		if err != nil {
			return nil, err
		}

		duration := in.SetupHours + float64(in.Impressions)/p.RatePerHour
		finish, err := c.Advance(start, duration, in.NightShift, in.WeekendWork)
		if err != nil {
			return nil, err
		}

		steps = append(steps, Step{
			Seq:           i,
			Process:       name,
			StartAt:       start,
			FinishAt:      finish,
			DurationHours: duration,
			Impressions:   in.Impressions,
		})
		bookings = append(bookings, Booking{Process: name, StartAt: start, FinishAt: finish})
		cursor = finish
	}
	return steps, nil
}
