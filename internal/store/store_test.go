package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAnswerEventsAggregateByTopic(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", Topic: "Optics", QuestionIndex: 0, QuestionText: "q1", SelectedIndex: 1, CorrectIndex: 1, Correct: true},
		{SessionID: "s1", Topic: "Optics", QuestionIndex: 1, QuestionText: "q2", SelectedIndex: 0, CorrectIndex: 2, Correct: false},
		{SessionID: "s1", Topic: "Optics", QuestionIndex: 2, QuestionText: "q3", Skipped: true, SelectedIndex: -1, CorrectIndex: 0},
		{SessionID: "s2", Topic: "Calculus", QuestionIndex: 0, QuestionText: "q4", SelectedIndex: 3, CorrectIndex: 3, Correct: true},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.TopicStats(ctx)
	if err != nil {
		t.Fatalf("topic stats: %v", err)
	}
	// Skips do not count as attempts.
	if got := stats["Optics"]; got.Attempted != 2 || got.Correct != 1 {
		t.Errorf("Optics = %+v, want {Attempted:2 Correct:1}", got)
	}
	if got := stats["Calculus"]; got.Attempted != 1 || got.Correct != 1 {
		t.Errorf("Calculus = %+v, want {Attempted:1 Correct:1}", got)
	}

	totals, err := repo.OverallTotals(ctx)
	if err != nil {
		t.Fatalf("overall totals: %v", err)
	}
	if totals.Answered != 3 || totals.Correct != 2 || totals.Skipped != 1 {
		t.Errorf("totals = %+v, want Answered=3 Correct=2 Skipped=1", totals)
	}
}

func TestCompletionDaysSortedDistinct(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	days := []string{"2026-03-02", "2026-03-01", "2026-03-02"}
	for i, d := range days {
		err := repo.AppendCompletionEvent(ctx, CompletionEventData{
			SessionID: "s", Topic: "Optics", Day: d, Questions: 5, Answered: 5, Correct: 3,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.CompletionDays(ctx)
	if err != nil {
		t.Fatalf("completion days: %v", err)
	}
	want := []string{"2026-03-01", "2026-03-02"}
	if len(got) != len(want) {
		t.Fatalf("days = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("days = %v, want %v", got, want)
		}
	}
}

func TestBookmarksFoldAddRemove(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	add := func(text, topic string) {
		t.Helper()
		err := repo.AppendBookmarkEvent(ctx, BookmarkEventData{
			Action: "add", Topic: topic, QuestionText: text,
			Choices: []string{"a", "b", "c", "d"}, CorrectIndex: 2,
		})
		if err != nil {
			t.Fatalf("add bookmark: %v", err)
		}
	}
	remove := func(text, topic string) {
		t.Helper()
		err := repo.AppendBookmarkEvent(ctx, BookmarkEventData{
			Action: "remove", Topic: topic, QuestionText: text,
		})
		if err != nil {
			t.Fatalf("remove bookmark: %v", err)
		}
	}

	add("q1", "Optics")
	add("q2", "Optics")
	remove("q1", "Optics")
	add("q1", "Calculus") // same text, different topic; survives

	records, err := repo.Bookmarks(ctx)
	if err != nil {
		t.Fatalf("bookmarks: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d bookmarks, want 2", len(records))
	}
	if records[0].QuestionText != "q2" || records[0].Topic != "Optics" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].QuestionText != "q1" || records[1].Topic != "Calculus" {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestLatestAnalysis(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Empty store.
	rec, err := repo.LatestAnalysis(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil analysis when none exist")
	}

	for i, topics := range [][]string{{"Optics"}, {"Calculus", "Vectors"}} {
		err := repo.AppendAnalysisEvent(ctx, AnalysisEventData{
			DocumentName: "mock-test.pdf", TotalQuestions: 30, CorrectAnswers: 18,
			WeakTopics: topics, Summary: "needs practice",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rec, err = repo.LatestAnalysis(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil analysis")
	}
	if len(rec.WeakTopics) != 2 || rec.WeakTopics[0] != "Calculus" {
		t.Errorf("weak topics = %v, want [Calculus Vectors]", rec.WeakTopics)
	}
}

func TestLLMUsageGrouping(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "quiz-gen", InputTokens: 120, OutputTokens: 380, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "chat", InputTokens: 50, OutputTokens: 80, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if got := byPurpose["quiz-gen"]; got.Requests != 2 || got.InputTokens != 220 {
		t.Errorf("quiz-gen = %+v", got)
	}
	if got := byPurpose["chat"]; got.Requests != 1 || got.Errors != 1 {
		t.Errorf("chat = %+v", got)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if got := byModel["gemini-2.0-flash"]; got.Requests != 3 || got.OutputTokens != 860 {
		t.Errorf("model usage = %+v", got)
	}

	// Events come back newest first.
	records, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Purpose != "chat" {
		t.Errorf("records[0].Purpose = %q, want chat", records[0].Purpose)
	}

	one, err := repo.GetLLMEvent(ctx, records[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.ErrorMessage != "rate limited" {
		t.Errorf("get = %+v", one)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:       1,
			CurrentStreak: 3,
			TopicStats:    map[string]TopicTotals{"Optics": {Attempted: 4, Correct: 2}},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", snap.Data.CurrentStreak)
	}
	if got := snap.Data.TopicStats["Optics"]; got.Attempted != 4 || got.Correct != 2 {
		t.Errorf("topic stats = %+v", got)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
