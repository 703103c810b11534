// Package streak tracks consecutive study days. A day counts toward
// the streak when at least one quiz session was completed on it, using
// the local calendar date.
package streak

import (
	"sort"
	"strings"
	"time"
)

const isoDay = "2006-01-02"

// Tracker maintains the completion history and the current streak.
type Tracker struct {
	history map[string]bool // ISO day -> completed
	current int
	last    time.Time // zero until the first completion
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{history: make(map[string]bool)}
}

// Restore rebuilds a tracker from persisted completion days (ISO
// format). Days replay in sorted order through the same rules as live
// recording; the input order does not matter.
func Restore(days []string) *Tracker {
	sorted := make([]string, len(days))
	copy(sorted, days)
	sort.Strings(sorted)

	t := NewTracker()
	for _, d := range sorted {
		day, err := time.ParseInLocation(isoDay, d, time.Local)
		if err != nil {
			continue
		}
		t.RecordCompletion(day)
	}
	return t
}

// RecordCompletion marks day as a study day and updates the streak:
// first completion starts at 1, a repeat on the same day is a no-op,
// the day after the last completion extends the streak, and any larger
// gap resets it to 1.
func (t *Tracker) RecordCompletion(day time.Time) {
	d := civil(day)
	t.history[d.Format(isoDay)] = true

	switch {
	case t.last.IsZero():
		t.current = 1
	case sameDay(t.last, d):
		return
	case sameDay(t.last.AddDate(0, 0, 1), d):
		t.current++
	default:
		t.current = 1
	}
	t.last = d
}

// Current returns the current streak length in days.
func (t *Tracker) Current() int { return t.current }

// CompletedOn reports whether at least one session completed on day.
func (t *Tracker) CompletedOn(day time.Time) bool {
	return t.history[civil(day).Format(isoDay)]
}

// History returns a copy of the completion history keyed by ISO day.
func (t *Tracker) History() map[string]bool {
	out := make(map[string]bool, len(t.history))
	for k, v := range t.history {
		out[k] = v
	}
	return out
}

// Calendar renders the last days as a Mon..Sun text grid, one row per
// weekday, with completed days marked.
func (t *Tracker) Calendar(days int) []string {
	return t.calendar(time.Now(), days)
}

func (t *Tracker) calendar(now time.Time, days int) []string {
	if days <= 0 {
		return nil
	}

	end := civil(now)
	first := end.AddDate(0, 0, -(days - 1))

	// Pad back to Monday so the grid starts a full week.
	start := first
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}

	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	rows := make([]strings.Builder, 7)
	for i, l := range labels {
		rows[i].WriteString(l)
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		row := (int(d.Weekday()) + 6) % 7 // Monday first
		mark := "."
		switch {
		case d.Before(first):
			mark = " " // outside the requested window
		case t.history[d.Format(isoDay)]:
			mark = "#"
		}
		rows[row].WriteString(" " + mark)
	}

	out := make([]string, 7)
	for i := range rows {
		out[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return out
}

// civil truncates t to its local calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Format(isoDay) == b.Format(isoDay)
}
