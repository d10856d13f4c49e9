package schedule

import (
	"errors"
	"testing"
	"time"
)

// Monday 2026-03-02; the week runs through Friday 2026-03-06, Saturday
// 2026-03-07, Sunday 2026-03-08.
var monday = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

func at(day int, hour, min int) time.Time {
	return time.Date(2026, time.March, day, hour, min, 0, 0, time.UTC)
}

func TestIsWorkingTime(t *testing.T) {
	cal := DefaultCalendar()

	testCases := []struct {
		name        string
		t           time.Time
		nightShift  bool
		weekendWork bool
		want        bool
	}{
		{name: "weekday inside shift", t: at(2, 10, 30), want: true},
		{name: "weekday shift start", t: at(2, 8, 0), want: true},
		{name: "weekday last working quarter", t: at(2, 16, 45), want: true},
		{name: "weekday shift end is exclusive", t: at(2, 17, 0), want: false},
		{name: "weekday before shift", t: at(2, 7, 45), want: false},
		{name: "weekday evening with night shift", t: at(2, 22, 0), nightShift: true, want: true},
		{name: "saturday", t: at(7, 10, 0), want: false},
		{name: "sunday", t: at(8, 10, 0), want: false},
		{name: "saturday with weekend work", t: at(7, 10, 0), weekendWork: true, want: true},
		{name: "saturday night shift without weekend work", t: at(7, 22, 0), nightShift: true, want: false},
		{name: "saturday night shift with weekend work", t: at(7, 22, 0), nightShift: true, weekendWork: true, want: true},
		{name: "saturday outside hours with weekend work only", t: at(7, 18, 0), weekendWork: true, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := cal.IsWorkingTime(tc.t, tc.nightShift, tc.weekendWork)
			if got != tc.want {
				t.Errorf("IsWorkingTime(%v, night=%v, weekend=%v) = %v, want %v",
					tc.t, tc.nightShift, tc.weekendWork, got, tc.want)
			}
		})
	}
}

func TestNextWorkingTime(t *testing.T) {
	cal := DefaultCalendar()

	testCases := []struct {
		name        string
		t           time.Time
		nightShift  bool
		weekendWork bool
		want        time.Time
	}{
		{name: "already working is unchanged", t: at(2, 9, 15), want: at(2, 9, 15)},
		{name: "early morning snaps to shift start", t: at(2, 6, 0), want: at(2, 8, 0)},
		{name: "after hours snaps to next morning", t: at(2, 17, 0), want: at(3, 8, 0)},
		{name: "friday evening snaps to monday", t: at(6, 18, 0), want: at(9, 8, 0)},
		{name: "saturday snaps to monday shift start", t: at(7, 12, 0), want: at(9, 8, 0)},
		{name: "night shift saturday snaps to monday midnight", t: at(7, 22, 0), nightShift: true, want: at(9, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cal.NextWorkingTime(tc.t, tc.nightShift, tc.weekendWork)
			if err != nil {
				t.Fatalf("NextWorkingTime returned error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("NextWorkingTime(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestNextWorkingTimeRunaway(t *testing.T) {
	// An inverted window is never working; the snap must abort instead of
	// looping forever.
	cal := Calendar{ShiftStartHour: 17, ShiftEndHour: 8, MaxAdvance: 48 * time.Hour}
	_, err := cal.NextWorkingTime(at(2, 12, 0), false, false)
	if !errors.Is(err, ErrAdvanceRunaway) {
		t.Fatalf("expected ErrAdvanceRunaway, got %v", err)
	}
}

func TestAdvanceWithinShift(t *testing.T) {
	cal := DefaultCalendar()
	got, err := cal.Advance(at(2, 8, 0), 3, false, false)
	if err != nil {
		t.Fatalf("Advance returned error: %v", err)
	}
	if want := at(2, 11, 0); !got.Equal(want) {
		t.Errorf("Advance = %v, want %v", got, want)
	}
}

func TestAdvanceSpansOvernightGap(t *testing.T) {
	// 16:45 start with half an hour of work: one quarter fits before 17:00,
	// the remaining quarter lands the next working morning.
	cal := DefaultCalendar()
	got, err := cal.Advance(at(2, 16, 45), 0.5, false, false)
	if err != nil {
		t.Fatalf("Advance returned error: %v", err)
	}
	if want := at(3, 8, 15); !got.Equal(want) {
		t.Errorf("Advance = %v, want %v", got, want)
	}
}

func TestAdvanceSpansWeekend(t *testing.T) {
	// Friday 16:00 plus two hours: one hour Friday, one hour Monday morning.
	cal := DefaultCalendar()
	got, err := cal.Advance(at(6, 16, 0), 2, false, false)
	if err != nil {
		t.Fatalf("Advance returned error: %v", err)
	}
	if want := at(9, 9, 0); !got.Equal(want) {
		t.Errorf("Advance = %v, want %v", got, want)
	}
}

func TestAdvanceNightShiftIsPureOffset(t *testing.T) {
	cal := DefaultCalendar()
	got, err := cal.Advance(at(2, 22, 0), 3, true, false)
	if err != nil {
		t.Fatalf("Advance returned error: %v", err)
	}
	if want := at(3, 1, 0); !got.Equal(want) {
		t.Errorf("night shift Advance = %v, want %v", got, want)
	}
}

func TestAdvanceRunaway(t *testing.T) {
	cal := Calendar{ShiftStartHour: 17, ShiftEndHour: 8, MaxAdvance: 48 * time.Hour}
	_, err := cal.Advance(at(2, 12, 0), 1, false, false)
	if !errors.Is(err, ErrAdvanceRunaway) {
		t.Fatalf("expected ErrAdvanceRunaway, got %v", err)
	}
}

func TestAdvanceRejectsNegativeDuration(t *testing.T) {
	cal := DefaultCalendar()
	_, err := cal.Advance(monday, -1, false, false)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
