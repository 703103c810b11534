// Package profile aggregates study state into the plain-text profile
// shown by the CLI: overall counters, per-topic accuracy, saved
// questions and the completion calendar.
package profile

import (
	"fmt"
	"strings"

	"github.com/notqc/helpmate/internal/bookmarks"
	"github.com/notqc/helpmate/internal/performance"
	"github.com/notqc/helpmate/internal/streak"
)

// Totals are the lifetime counters across quizzes and analyzed tests.
type Totals struct {
	QuestionsSolved int
	CorrectAnswers  int
}

// Accuracy reports the overall fraction correct. ok is false when no
// questions have been solved yet.
func (t Totals) Accuracy() (float64, bool) {
	if t.QuestionsSolved == 0 {
		return 0, false
	}
	return float64(t.CorrectAnswers) / float64(t.QuestionsSolved), true
}

// Accuracy tag thresholds, in percent.
const (
	highAccuracy = 75
	midAccuracy  = 50
)

// View is the slice of session state the profile renders from.
type View struct {
	Totals       Totals
	Ledger       *performance.Ledger
	Streak       *streak.Tracker
	Bookmarks    []bookmarks.Snapshot
	WeakTopics   []string
	CalendarDays int
}

const defaultCalendarDays = 90

// Render produces the full profile text.
func Render(v View) string {
	var b strings.Builder

	b.WriteString("Study Profile\n")
	b.WriteString("=============\n\n")

	renderOverall(&b, v)
	renderTopics(&b, v.Ledger)
	renderWeakTopics(&b, v.WeakTopics)
	renderBookmarks(&b, v.Bookmarks)
	renderCalendar(&b, v)

	return b.String()
}

func renderOverall(b *strings.Builder, v View) {
	b.WriteString("Overall\n")
	fmt.Fprintf(b, "  Questions solved  %d\n", v.Totals.QuestionsSolved)
	if acc, ok := v.Totals.Accuracy(); ok {
		fmt.Fprintf(b, "  Accuracy          %.2f%%\n", acc*100)
	} else {
		b.WriteString("  Accuracy          --\n")
	}
	if v.Streak != nil {
		fmt.Fprintf(b, "  Current streak    %d days\n", v.Streak.Current())
	}
	b.WriteString("\n")
}

func renderTopics(b *strings.Builder, ledger *performance.Ledger) {
	b.WriteString("Topics\n")
	if ledger == nil || len(ledger.Topics()) == 0 {
		b.WriteString("  Start solving quizzes or analyzing tests to see topics you've covered.\n\n")
		return
	}

	for _, topic := range ledger.Topics() {
		total, correct := ledger.Stats(topic)
		if total == 0 {
			fmt.Fprintf(b, "  %-24s --\n", topic)
			continue
		}
		pct := float64(correct) / float64(total) * 100
		fmt.Fprintf(b, "  %-24s %5.1f%%  [%s]  (%d/%d)\n", topic, pct, accuracyTag(pct), correct, total)
	}
	b.WriteString("\n")
}

func accuracyTag(pct float64) string {
	switch {
	case pct >= highAccuracy:
		return "high"
	case pct >= midAccuracy:
		return "mid"
	default:
		return "low"
	}
}

func renderWeakTopics(b *strings.Builder, topics []string) {
	if len(topics) == 0 {
		return
	}
	fmt.Fprintf(b, "Weak topics: %s\n\n", strings.Join(topics, ", "))
}

func renderBookmarks(b *strings.Builder, snaps []bookmarks.Snapshot) {
	fmt.Fprintf(b, "Saved questions (%d)\n", len(snaps))
	if len(snaps) == 0 {
		b.WriteString("  No questions bookmarked yet.\n\n")
		return
	}

	for i, snap := range snaps {
		topic := snap.Topic
		if topic == "" {
			topic = "General"
		}
		fmt.Fprintf(b, "  %d. [%s] %s\n", i+1, topic, snap.Question.Text)
		if idx := snap.Question.CorrectIndex; idx >= 0 && idx < len(snap.Question.Choices) {
			fmt.Fprintf(b, "     Answer: %s\n", snap.Question.Choices[idx])
		}
	}
	b.WriteString("\n")
}

func renderCalendar(b *strings.Builder, v View) {
	if v.Streak == nil {
		return
	}
	days := v.CalendarDays
	if days <= 0 {
		days = defaultCalendarDays
	}
	fmt.Fprintf(b, "Quiz streak (last %d days, # = quiz completed)\n", days)
	for _, row := range v.Streak.Calendar(days) {
		b.WriteString(row)
		b.WriteString("\n")
	}
}
