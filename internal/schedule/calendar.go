package schedule

import "time"

const (
	defaultShiftStartHour = 8
	defaultShiftEndHour   = 17
	defaultStep           = 15 * time.Minute
	defaultMaxAdvance     = 365 * 24 * time.Hour
)

// Calendar holds the shift-window policy the production floor runs under.
// The zero value is usable and means the standard 08:00-17:00 weekday shift
// with 15-minute advancement steps.
type Calendar struct {
	ShiftStartHour int           // first working hour of the day, inclusive
	ShiftEndHour   int           // hour the shift ends, exclusive
	Step           time.Duration // advancement increment; must divide an hour evenly
	MaxAdvance     time.Duration // safety bound for a single advancement walk
}

// DefaultCalendar returns the standard shop calendar: 08:00-17:00,
// 15-minute steps, a one-year runaway cap.
func DefaultCalendar() Calendar {
	return Calendar{
		ShiftStartHour: defaultShiftStartHour,
		ShiftEndHour:   defaultShiftEndHour,
		Step:           defaultStep,
		MaxAdvance:     defaultMaxAdvance,
	}
}

func (c Calendar) startHour() int {
	if c.ShiftStartHour == 0 && c.ShiftEndHour == 0 {
		return defaultShiftStartHour
	}
	return c.ShiftStartHour
}

func (c Calendar) endHour() int {
	if c.ShiftStartHour == 0 && c.ShiftEndHour == 0 {
		return defaultShiftEndHour
	}
	return c.ShiftEndHour
}

func (c Calendar) step() time.Duration {
	if c.Step <= 0 {
		return defaultStep
	}
	return c.Step
}

func (c Calendar) maxAdvance() time.Duration {
	if c.MaxAdvance <= 0 {
		return defaultMaxAdvance
	}
	return c.MaxAdvance
}

// IsWorkingTime reports whether t falls inside the shift window.
// Parameters:
//   - t: instant to test.
//   - nightShift: exempts the hour-of-day check (24h operation).
//   - weekendWork: exempts the Saturday/Sunday check.
//
// Returns:
//   - bool: true when the floor is working at t under the given policy.
func (c Calendar) IsWorkingTime(t time.Time, nightShift, weekendWork bool) bool {
	if !weekendWork {
		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return false
		}
	}
	if !nightShift {
		if h := t.Hour(); h < c.startHour() || h >= c.endHour() {
			return false
		}
	}
	return true
}

// NextWorkingTime snaps t forward in fixed increments until it lands inside
// the shift window. Returns ErrAdvanceRunaway if no working instant is found
// within the safety bound.
func (c Calendar) NextWorkingTime(t time.Time, nightShift, weekendWork bool) (time.Time, error) {
	deadline := t.Add(c.maxAdvance())
	for !c.IsWorkingTime(t, nightShift, weekendWork) {
		t = t.Add(c.step())
		if t.After(deadline) {
			return time.Time{}, ErrAdvanceRunaway
		}
	}
	return t, nil
}

// Advance computes the finish instant for work starting at start and lasting
// durationHours of working time. Night-shift jobs run without pause, so the
// finish is a pure offset. Otherwise the instant walks forward in fixed
// increments and an increment only counts toward the duration when the
// current instant is inside the shift window; non-working gaps (evenings,
// weekends) pass without consuming any of the duration.
func (c Calendar) Advance(start time.Time, durationHours float64, nightShift, weekendWork bool) (time.Time, error) {
	if durationHours < 0 {
		return time.Time{}, invalidf("duration", "negative duration %v", durationHours)
	}
	if nightShift {
		return start.Add(hoursDuration(durationHours)), nil
	}

	remaining := hoursDuration(durationHours)
	step := c.step()
	deadline := start.Add(c.maxAdvance())
	t := start
	for remaining > 0 {
		if t.After(deadline) {
			return time.Time{}, ErrAdvanceRunaway
		}
		if c.IsWorkingTime(t, nightShift, weekendWork) {
			remaining -= step
		}
		t = t.Add(step)
	}
	return t, nil
}

func hoursDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
