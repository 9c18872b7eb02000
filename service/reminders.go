package service

import "time"

// DueWithinWindow reports whether due falls inside [now, now+windowDays],
// compared at calendar-day granularity. Past-due dates are excluded; both
// window edges are inclusive.
func DueWithinWindow(due, now time.Time, windowDays int) bool {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	d, n := day(due), day(now)
	if d.Before(n) {
		return false
	}
	return !d.After(n.AddDate(0, 0, windowDays))
}
