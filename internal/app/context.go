// Package app wires the study features into one session-scoped
// context. A StudyContext owns the mutable student state (ledger,
// streak, bookmarks, totals, weak topics) and is the only place where
// an action's side effects meet: every handler mutates memory state,
// appends the matching events and keeps derived aggregates in sync.
package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/notqc/helpmate/internal/analyze"
	"github.com/notqc/helpmate/internal/bookmarks"
	"github.com/notqc/helpmate/internal/chat"
	"github.com/notqc/helpmate/internal/llm"
	"github.com/notqc/helpmate/internal/lookup"
	"github.com/notqc/helpmate/internal/performance"
	"github.com/notqc/helpmate/internal/profile"
	"github.com/notqc/helpmate/internal/quiz"
	"github.com/notqc/helpmate/internal/quizgen"
	"github.com/notqc/helpmate/internal/store"
	"github.com/notqc/helpmate/internal/streak"
)

const snapshotVersion = 1

// Deps are the collaborators a StudyContext is built from. Events and
// Snapshots are required. Provider may be nil for read-only use (the
// AI-backed handlers must not be called then). Videos and Solutions
// are optional and disable their lookups when nil.
type Deps struct {
	Provider  llm.Provider
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Videos    *lookup.VideoFinder
	Solutions *lookup.SolutionFinder

	// Now overrides the clock in tests.
	Now func() time.Time
}

// StudyContext is the per-session aggregate of all student state.
type StudyContext struct {
	ledger    *performance.Ledger
	streak    *streak.Tracker
	bookmarks *bookmarks.Store
	totals    profile.Totals

	weakTopics []string
	weakSet    map[string]bool

	events    store.EventRepo
	snapshots store.SnapshotRepo

	provider  llm.Provider
	generator quizgen.Generator
	analyzer  *analyze.Analyzer
	chat      *chat.Chat
	videos    *lookup.VideoFinder
	solutions *lookup.SolutionFinder

	session       *quiz.Session
	sessionClosed bool

	now func() time.Time
}

// New constructs an empty StudyContext. Call Load to rehydrate
// persisted state.
func New(deps Deps) *StudyContext {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &StudyContext{
		ledger:    performance.NewLedger(),
		streak:    streak.NewTracker(),
		bookmarks: bookmarks.NewStore(),
		weakSet:   make(map[string]bool),
		events:    deps.Events,
		snapshots: deps.Snapshots,
		provider:  deps.Provider,
		generator: quizgen.New(deps.Provider, quizgen.DefaultConfig()),
		analyzer:  analyze.New(deps.Provider, analyze.DefaultConfig()),
		chat:      chat.New(deps.Provider, chat.DefaultConfig()),
		videos:    deps.Videos,
		solutions: deps.Solutions,
		now:       now,
	}
}

// Ledger exposes per-topic performance, read-only by convention.
func (c *StudyContext) Ledger() *performance.Ledger { return c.ledger }

// Streak exposes the completion streak tracker.
func (c *StudyContext) Streak() *streak.Tracker { return c.streak }

// Bookmarks exposes the saved-question store.
func (c *StudyContext) Bookmarks() *bookmarks.Store { return c.bookmarks }

// Totals returns the lifetime solved/correct counters.
func (c *StudyContext) Totals() profile.Totals { return c.totals }

// WeakTopics returns the accumulated weak topics in first-seen order.
func (c *StudyContext) WeakTopics() []string {
	out := make([]string, len(c.weakTopics))
	copy(out, c.weakTopics)
	return out
}

// Session returns the active quiz session, or nil.
func (c *StudyContext) Session() *quiz.Session { return c.session }

// Profile builds the view the profile renderer consumes.
func (c *StudyContext) Profile() profile.View {
	return profile.View{
		Totals:     c.totals,
		Ledger:     c.ledger,
		Streak:     c.streak,
		Bookmarks:  c.bookmarks.All(),
		WeakTopics: c.WeakTopics(),
	}
}

func (c *StudyContext) addWeakTopics(topics []string) {
	for _, t := range topics {
		if t == "" || c.weakSet[t] {
			continue
		}
		c.weakSet[t] = true
		c.weakTopics = append(c.weakTopics, t)
	}
}

// Load rehydrates state from the latest snapshot. Without one it falls
// back to folding the event history, so pre-snapshot databases still
// restore.
func (c *StudyContext) Load(ctx context.Context) error {
	snap, err := c.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return c.loadFromEvents(ctx)
	}

	data := snap.Data
	c.totals = profile.Totals{
		QuestionsSolved: data.Totals.Answered,
		CorrectAnswers:  data.Totals.Correct,
	}
	for topic, tt := range data.TopicStats {
		c.ledger.RestoreTotals(topic, tt.Attempted, tt.Correct)
	}
	c.streak = streak.Restore(data.StreakHistory)
	c.addWeakTopics(data.WeakTopics)
	for _, rec := range data.Bookmarks {
		c.bookmarks.Add(bookmarkRecordToSnapshot(rec))
	}
	return nil
}

func (c *StudyContext) loadFromEvents(ctx context.Context) error {
	totals, err := c.events.OverallTotals(ctx)
	if err != nil {
		return fmt.Errorf("load totals: %w", err)
	}
	c.totals = profile.Totals{QuestionsSolved: totals.Answered, CorrectAnswers: totals.Correct}

	topicStats, err := c.events.TopicStats(ctx)
	if err != nil {
		return fmt.Errorf("load topic stats: %w", err)
	}
	for topic, tt := range topicStats {
		c.ledger.RestoreTotals(topic, tt.Attempted, tt.Correct)
	}

	days, err := c.events.CompletionDays(ctx)
	if err != nil {
		return fmt.Errorf("load completion days: %w", err)
	}
	c.streak = streak.Restore(days)

	records, err := c.events.Bookmarks(ctx)
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}
	for _, rec := range records {
		c.bookmarks.Add(bookmarkRecordToSnapshot(rec))
	}

	if analysis, err := c.events.LatestAnalysis(ctx); err == nil && analysis != nil {
		c.addWeakTopics(analysis.WeakTopics)
	}
	return nil
}

// Save persists the current state as a snapshot and prunes old ones.
func (c *StudyContext) Save(ctx context.Context) error {
	totals, err := c.events.OverallTotals(ctx)
	if err != nil {
		return fmt.Errorf("aggregate totals: %w", err)
	}
	// Analysis ingestion contributes to in-memory counters without
	// answer events; keep whichever is larger.
	if c.totals.QuestionsSolved > totals.Answered {
		totals.Answered = c.totals.QuestionsSolved
		totals.Correct = c.totals.CorrectAnswers
	}

	topicStats := make(map[string]store.TopicTotals)
	for _, topic := range c.ledger.Topics() {
		total, correct := c.ledger.Stats(topic)
		topicStats[topic] = store.TopicTotals{Attempted: total, Correct: correct}
	}

	history := make([]string, 0, len(c.streak.History()))
	for day := range c.streak.History() {
		history = append(history, day)
	}
	sort.Strings(history)

	records := make([]store.BookmarkRecord, 0, c.bookmarks.Len())
	for _, snap := range c.bookmarks.All() {
		records = append(records, snapshotToBookmarkRecord(snap))
	}

	snap := &store.Snapshot{
		Timestamp: c.now(),
		Data: store.SnapshotData{
			Version:       snapshotVersion,
			Totals:        totals,
			TopicStats:    topicStats,
			StreakHistory: history,
			CurrentStreak: c.streak.Current(),
			WeakTopics:    c.WeakTopics(),
			Bookmarks:     records,
		},
	}
	if err := c.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return c.snapshots.Prune(ctx, 5)
}

func bookmarkRecordToSnapshot(rec store.BookmarkRecord) bookmarks.Snapshot {
	return bookmarks.Snapshot{
		Question: quizgen.Question{
			Text:         rec.QuestionText,
			Choices:      rec.Choices,
			CorrectIndex: rec.CorrectIndex,
			Explanation: quizgen.Explanation{
				Steps:    rec.ExplanationSteps,
				VideoURL: rec.VideoURL,
			},
		},
		Topic:         rec.Topic,
		QuestionIndex: rec.QuestionIndex,
	}
}

func snapshotToBookmarkRecord(snap bookmarks.Snapshot) store.BookmarkRecord {
	return store.BookmarkRecord{
		Topic:            snap.Topic,
		QuestionIndex:    snap.QuestionIndex,
		QuestionText:     snap.Question.Text,
		Choices:          snap.Question.Choices,
		CorrectIndex:     snap.Question.CorrectIndex,
		ExplanationSteps: snap.Question.Explanation.Steps,
		VideoURL:         snap.Question.Explanation.VideoURL,
	}
}
