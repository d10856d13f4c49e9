package schedule

import "time"

// Booking is one committed machine reservation, the minimal view of a
// persisted schedule step the availability scan needs. The caller fetches the
// current bookings and passes them in; the core never reads storage itself.
type Booking struct {
	Process  string
	StartAt  time.Time
	FinishAt time.Time
}

// EarliestFree returns the earliest instant the named machine is free: the
// latest finish among its bookings, floored at the given instant. A machine
// with no bookings is free at the floor.
func EarliestFree(process string, bookings []Booking, floor time.Time) time.Time {
	free := floor
	for _, b := range bookings {
		if b.Process == process && b.FinishAt.After(free) {
			free = b.FinishAt
		}
	}
	return free
}
