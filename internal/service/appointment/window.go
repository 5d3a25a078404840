package appointment

import (
	"time"
)

const dateLayout = "2006-01-02"

// Window is the Sunday-to-Saturday week range containing a date.
// Start is Sunday 00:00:00.000 and End the following Saturday
// 23:59:59.999, both in the date's location; the range is inclusive
// at both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekOf computes the window for the week containing d.
func WeekOf(d time.Time) Window {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	start := day.AddDate(0, 0, -int(day.Weekday()))
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return Window{Start: start, End: end}
}

// Contains reports whether t falls within the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Window) String() string {
	return w.Start.Format(dateLayout) + " to " + w.End.Format(dateLayout)
}
