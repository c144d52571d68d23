package apod

import (
	"fmt"
	"time"
)

// FirstDate is the first day of the APOD archive. The service rejects
// start dates before it.
var FirstDate = time.Date(1995, time.June, 16, 0, 0, 0, 0, time.UTC)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Window is an inclusive span of calendar days. Start and End are
// midnight UTC values carrying the local calendar date.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns the days-wide window ending on today's local calendar date.
// A window reaching past FirstDate starts on FirstDate instead.
func NewWindow(today time.Time, days int) (Window, error) {
	if days <= 0 {
		return Window{}, fmt.Errorf("%w: got %d", ErrInvalidWindow, days)
	}
	end := calendarDay(today)
	if limit := archiveDays(end); days > limit {
		days = limit
	}
	return Window{
		Start: end.AddDate(0, 0, -(days - 1)),
		End:   end,
	}, nil
}

// Days returns the number of calendar days in the window.
func (w Window) Days() int {
	if w.End.Before(w.Start) {
		return 0
	}
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether the YYYY-MM-DD date falls inside the window.
func (w Window) Contains(date string) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// Clamp trims Start so the window never reaches before FirstDate.
func (w Window) Clamp() Window {
	if w.Start.Before(FirstDate) {
		w.Start = FirstDate
	}
	return w
}

// StartParam formats Start for the start_date query parameter.
func (w Window) StartParam() string { return w.Start.Format(DateLayout) }

// EndParam formats End for the end_date query parameter.
func (w Window) EndParam() string { return w.End.Format(DateLayout) }

func (w Window) String() string {
	return w.StartParam() + ".." + w.EndParam()
}

// archiveDays counts the days from FirstDate through end, and is at least one.
func archiveDays(end time.Time) int {
	if end.Before(FirstDate) {
		return 1
	}
	return int(end.Sub(FirstDate).Hours()/24) + 1
}

// calendarDay keeps the local year/month/day of t and drops the clock and
// zone, so day arithmetic is immune to DST transitions.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
