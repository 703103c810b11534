// Package performance tracks per-topic answer totals across quiz
// sessions. Topics are free-text labels taken from quiz generation;
// no normalization is applied, so "Optics" and "optics" are distinct.
package performance

import "sort"

type topicTotals struct {
	total   int
	correct int
}

// Ledger accumulates graded answers per topic. The zero value is not
// usable; create one with NewLedger.
type Ledger struct {
	topics map[string]*topicTotals
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{topics: make(map[string]*topicTotals)}
}

// Record adds one graded answer for topic. Skipped questions are not
// recorded.
func (l *Ledger) Record(topic string, correct bool) {
	t := l.topics[topic]
	if t == nil {
		t = &topicTotals{}
		l.topics[topic] = t
	}
	t.total++
	if correct {
		t.correct++
	}
}

// RestoreTotals seeds the counters for topic, replacing any prior
// totals. Used when rehydrating from a persisted snapshot.
func (l *Ledger) RestoreTotals(topic string, total, correct int) {
	if total <= 0 {
		return
	}
	if correct > total {
		correct = total
	}
	l.topics[topic] = &topicTotals{total: total, correct: correct}
}

// Stats returns the answer totals for topic; zeros for an unseen topic.
func (l *Ledger) Stats(topic string) (total, correct int) {
	if t := l.topics[topic]; t != nil {
		return t.total, t.correct
	}
	return 0, 0
}

// Accuracy returns correct/total for topic. ok is false when the topic
// has no recorded answers, meaning accuracy is not determinable.
func (l *Ledger) Accuracy(topic string) (float64, bool) {
	t := l.topics[topic]
	if t == nil || t.total == 0 {
		return 0, false
	}
	return float64(t.correct) / float64(t.total), true
}

// Topics returns all recorded topics, sorted.
func (l *Ledger) Topics() []string {
	out := make([]string, 0, len(l.topics))
	for topic := range l.topics {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}
