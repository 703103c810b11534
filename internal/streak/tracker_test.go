package streak

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation(isoDay, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFirstCompletionStartsStreak(t *testing.T) {
	tr := NewTracker()
	if tr.Current() != 0 {
		t.Fatalf("fresh tracker streak = %d, want 0", tr.Current())
	}

	tr.RecordCompletion(day("2026-03-10"))
	if tr.Current() != 1 {
		t.Errorf("streak = %d, want 1", tr.Current())
	}
	if !tr.CompletedOn(day("2026-03-10")) {
		t.Error("expected day to be marked completed")
	}
}

func TestSameDayIsIdempotent(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(day("2026-03-10"))
	tr.RecordCompletion(day("2026-03-10"))
	tr.RecordCompletion(day("2026-03-10"))

	if tr.Current() != 1 {
		t.Errorf("streak = %d, want 1 after repeated same-day completions", tr.Current())
	}
}

func TestConsecutiveDayExtends(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(day("2026-03-10"))
	tr.RecordCompletion(day("2026-03-11"))
	tr.RecordCompletion(day("2026-03-12"))

	if tr.Current() != 3 {
		t.Errorf("streak = %d, want 3", tr.Current())
	}
}

func TestGapResets(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(day("2026-03-10"))
	tr.RecordCompletion(day("2026-03-11"))
	tr.RecordCompletion(day("2026-03-14")) // 3-day gap

	if tr.Current() != 1 {
		t.Errorf("streak = %d, want 1 after gap", tr.Current())
	}
	// History keeps every completed day regardless of resets.
	for _, d := range []string{"2026-03-10", "2026-03-11", "2026-03-14"} {
		if !tr.CompletedOn(day(d)) {
			t.Errorf("expected %s in history", d)
		}
	}
}

func TestMonthBoundary(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(day("2026-02-28"))
	tr.RecordCompletion(day("2026-03-01"))

	if tr.Current() != 2 {
		t.Errorf("streak = %d, want 2 across month boundary", tr.Current())
	}
}

func TestTimeOfDayIgnored(t *testing.T) {
	tr := NewTracker()
	morning := day("2026-03-10").Add(8 * time.Hour)
	night := day("2026-03-10").Add(23 * time.Hour)

	tr.RecordCompletion(morning)
	tr.RecordCompletion(night)
	if tr.Current() != 1 {
		t.Errorf("streak = %d, want 1 for two completions on one day", tr.Current())
	}
}

func TestRestoreReplaysHistory(t *testing.T) {
	tr := Restore([]string{"2026-03-10", "2026-03-11", "2026-03-12"})
	if tr.Current() != 3 {
		t.Errorf("restored streak = %d, want 3", tr.Current())
	}

	tr = Restore([]string{"2026-03-01", "2026-03-10", "2026-03-11"})
	if tr.Current() != 2 {
		t.Errorf("restored streak = %d, want 2", tr.Current())
	}
}

func TestRestoreSortsUnorderedDays(t *testing.T) {
	tr := Restore([]string{"2026-03-12", "2026-03-10", "2026-03-11"})
	if tr.Current() != 3 {
		t.Errorf("restored streak = %d, want 3 from unordered days", tr.Current())
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(day("2026-03-10"))

	h := tr.History()
	h["2026-03-11"] = true
	if tr.CompletedOn(day("2026-03-11")) {
		t.Error("mutating the returned history must not affect the tracker")
	}
}

func TestCalendarGrid(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(day("2026-03-09")) // Monday
	tr.RecordCompletion(day("2026-03-10")) // Tuesday

	// 2026-03-11 is a Wednesday; a 7-day window covers Thu 03-05 .. Wed 03-11.
	rows := tr.calendar(day("2026-03-11"), 7)
	if len(rows) != 7 {
		t.Fatalf("got %d rows, want 7", len(rows))
	}
	if rows[0] != "Mon   #" {
		t.Errorf("Monday row = %q", rows[0])
	}
	if rows[1] != "Tue   #" {
		t.Errorf("Tuesday row = %q", rows[1])
	}
	if rows[3] != "Thu ." {
		t.Errorf("Thursday row = %q", rows[3])
	}
}
