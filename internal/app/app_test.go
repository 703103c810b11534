package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notqc/helpmate/internal/llm"
	"github.com/notqc/helpmate/internal/lookup"
	"github.com/notqc/helpmate/internal/quiz"
	"github.com/notqc/helpmate/internal/store"
)

const quizJSON = `[
	{"question": "Q1", "answers": ["a", "b", "c", "d"], "correctAnswer": 1,
	 "explanation": {"detailed_steps": "because", "youtube_link": ""}},
	{"question": "Q2", "answers": ["w", "x", "y", "z"], "correctAnswer": 0,
	 "explanation": {"detailed_steps": "therefore", "youtube_link": ""}}
]`

const analysisJSON = `{
	"weak_topics": ["rotational motion", "optics"],
	"analysis": {"total_questions": 10, "correct_answers": 6,
	             "incorrect_answers": 4, "accuracy_percentage": 60},
	"question_analysis": [
		{"question": "q1", "is_correct": true, "topic": "Optics"},
		{"question": "q2", "is_correct": false, "topic": "Optics"}
	],
	"summary": "decent attempt"
}`

// fakeEvents records appended events and serves canned aggregates.
type fakeEvents struct {
	answers     []store.AnswerEventData
	completions []store.CompletionEventData
	analyses    []store.AnalysisEventData
	bookmarks   []store.BookmarkEventData

	totals store.OverallTotals
}

func (f *fakeEvents) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	f.answers = append(f.answers, d)
	return nil
}

func (f *fakeEvents) AppendCompletionEvent(_ context.Context, d store.CompletionEventData) error {
	f.completions = append(f.completions, d)
	return nil
}

func (f *fakeEvents) AppendAnalysisEvent(_ context.Context, d store.AnalysisEventData) error {
	f.analyses = append(f.analyses, d)
	return nil
}

func (f *fakeEvents) AppendBookmarkEvent(_ context.Context, d store.BookmarkEventData) error {
	f.bookmarks = append(f.bookmarks, d)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEvents) TopicStats(context.Context) (map[string]store.TopicTotals, error) {
	return map[string]store.TopicTotals{}, nil
}

func (f *fakeEvents) OverallTotals(context.Context) (store.OverallTotals, error) {
	return f.totals, nil
}

func (f *fakeEvents) CompletionDays(context.Context) ([]string, error) {
	var days []string
	for _, c := range f.completions {
		days = append(days, c.Day)
	}
	return days, nil
}

func (f *fakeEvents) Bookmarks(context.Context) ([]store.BookmarkRecord, error) {
	return nil, nil
}

func (f *fakeEvents) LatestAnalysis(context.Context) (*store.AnalysisRecord, error) {
	return nil, nil
}

func (f *fakeEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) GetLLMEvent(context.Context, int64) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByPurpose(context.Context) (map[string]store.LLMUsageTotals, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByModel(context.Context) (map[string]store.LLMUsageTotals, error) {
	return nil, nil
}

// fakeSnapshots keeps the last saved snapshot in memory.
type fakeSnapshots struct {
	saved []*store.Snapshot
}

func (f *fakeSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshots) Latest(context.Context) (*store.Snapshot, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshots) Prune(context.Context, int) error { return nil }

func newTestContext(provider llm.Provider) (*StudyContext, *fakeEvents, *fakeSnapshots) {
	events := &fakeEvents{}
	snapshots := &fakeSnapshots{}
	sc := New(Deps{
		Provider:  provider,
		Events:    events,
		Snapshots: snapshots,
		Now:       func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local) },
	})
	return sc, events, snapshots
}

func TestQuizFlow(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockQuizResponse(quizJSON))
	sc, events, _ := newTestContext(provider)
	ctx := context.Background()

	session, err := sc.StartQuiz(ctx, "Optics", "medium", 2)
	require.NoError(t, err)
	require.Equal(t, 2, session.Len())

	result, err := sc.SubmitAnswer(ctx, 1)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 0, session.Cursor(), "submit must not advance")

	assert.Equal(t, 1, sc.Totals().QuestionsSolved)
	assert.Equal(t, 1, sc.Totals().CorrectAnswers)
	total, correct := sc.Ledger().Stats("Optics")
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, correct)
	require.Len(t, events.answers, 1)
	assert.False(t, events.answers[0].Skipped)

	require.NoError(t, sc.NextQuestion(ctx))
	require.NoError(t, sc.SkipQuestion(ctx))

	assert.True(t, session.Completed())
	assert.Equal(t, 1, sc.Streak().Current())
	require.Len(t, events.completions, 1)
	assert.Equal(t, "2026-03-10", events.completions[0].Day)
	assert.Equal(t, 1, events.completions[0].Answered)
	assert.Equal(t, 1, events.completions[0].Correct)

	require.Len(t, events.answers, 2)
	assert.True(t, events.answers[1].Skipped)
	assert.Equal(t, -1, events.answers[1].SelectedIndex)

	// Skips are not graded answers.
	assert.Equal(t, 1, sc.Totals().QuestionsSolved)

	_, err = sc.SubmitAnswer(ctx, 0)
	assert.ErrorIs(t, err, quiz.ErrSessionCompleted)
	assert.ErrorIs(t, sc.SkipQuestion(ctx), quiz.ErrSessionCompleted)
	require.Len(t, events.completions, 1, "completion side effects run once")
}

func TestQuizHandlersWithoutSession(t *testing.T) {
	sc, _, _ := newTestContext(llm.NewMockProvider())
	ctx := context.Background()

	_, err := sc.SubmitAnswer(ctx, 0)
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.ErrorIs(t, sc.SkipQuestion(ctx), ErrNoActiveSession)
	assert.ErrorIs(t, sc.NextQuestion(ctx), ErrNoActiveSession)
	_, err = sc.ToggleBookmark(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestToggleBookmark(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte(quizJSON)})
	sc, events, _ := newTestContext(provider)
	ctx := context.Background()

	_, err := sc.StartQuiz(ctx, "Optics", "", 2)
	require.NoError(t, err)

	on, err := sc.ToggleBookmark(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, 1, sc.Bookmarks().Len())
	require.Len(t, events.bookmarks, 1)
	assert.Equal(t, "add", events.bookmarks[0].Action)
	assert.Equal(t, "Q1", events.bookmarks[0].QuestionText)

	off, err := sc.ToggleBookmark(ctx)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Equal(t, 0, sc.Bookmarks().Len())
	require.Len(t, events.bookmarks, 2)
	assert.Equal(t, "remove", events.bookmarks[1].Action)
}

func TestToggleBookmarkAfterCompletion(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte(quizJSON)})
	sc, events, _ := newTestContext(provider)
	ctx := context.Background()

	session, err := sc.StartQuiz(ctx, "Optics", "", 2)
	require.NoError(t, err)
	require.NoError(t, sc.SkipQuestion(ctx))
	require.NoError(t, sc.SkipQuestion(ctx))
	require.True(t, session.Completed())

	_, err = sc.ToggleBookmark(ctx)
	assert.ErrorIs(t, err, quiz.ErrSessionCompleted)
	assert.Equal(t, 0, sc.Bookmarks().Len())
	assert.Empty(t, events.bookmarks, "finished session must not record bookmarks")
}

func TestIngestAnalysis(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte(analysisJSON)})
	sc, events, _ := newTestContext(provider)
	ctx := context.Background()

	result, err := sc.IngestAnalysis(ctx, "mock-test.pdf", "extracted text")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 10, sc.Totals().QuestionsSolved)
	assert.Equal(t, 6, sc.Totals().CorrectAnswers)
	total, correct := sc.Ledger().Stats("Optics")
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, correct)
	assert.Equal(t, []string{"rotational motion", "optics"}, sc.WeakTopics())

	require.Len(t, events.analyses, 1)
	assert.Equal(t, "mock-test.pdf", events.analyses[0].DocumentName)
	assert.Equal(t, 10, events.analyses[0].TotalQuestions)
	assert.Equal(t, "decent attempt", events.analyses[0].Summary)
}

func TestStartQuizUsesWeakTopics(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: []byte(analysisJSON)},
		llm.MockResponse{Content: []byte(quizJSON)},
	)
	sc, _, _ := newTestContext(provider)
	ctx := context.Background()

	_, err := sc.IngestAnalysis(ctx, "t.pdf", "text")
	require.NoError(t, err)
	_, err = sc.StartQuiz(ctx, "Optics", "hard", 2)
	require.NoError(t, err)

	assert.Contains(t, provider.Prompt(1), "rotational motion")
}

func TestChat(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: []byte("Focus on ray diagrams first.")},
		llm.MockResponse{Content: []byte("optics")},
	)
	sc, _, _ := newTestContext(provider)

	reply, err := sc.Chat(context.Background(), "I keep failing optics questions")
	require.NoError(t, err)
	assert.Equal(t, "Focus on ray diagrams first.", reply)
	assert.Equal(t, []string{"optics"}, sc.WeakTopics())
	assert.Len(t, sc.ChatHistory(), 2)
}

func TestChatProviderFailure(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	sc, _, _ := newTestContext(provider)

	reply, err := sc.Chat(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, chatFallback, reply)
}

func TestChatVideoRecommendations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":{"videoId":"vid1"}}]}`))
	}))
	defer server.Close()

	provider := llm.NewMockProvider(
		llm.MockResponse{Content: []byte("Short answer.")},
		llm.MockResponse{Content: []byte("optics")},
	)
	events := &fakeEvents{}
	sc := New(Deps{
		Provider:  provider,
		Events:    events,
		Snapshots: &fakeSnapshots{},
		Videos:    lookup.NewVideoFinder("key", lookup.WithVideoBaseURL(server.URL)),
	})

	reply, err := sc.Chat(context.Background(), "optics help")
	require.NoError(t, err)
	assert.Contains(t, reply, "Recommended study videos:")
	assert.Contains(t, reply, "Optics: https://www.youtube.com/watch?v=vid1")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Rotational Motion", titleCase("rotational motion"))
	assert.Equal(t, "Ångström Units", titleCase("ångström units"))
	assert.Equal(t, "", titleCase("  "))
}

func TestSolutionLinksWithoutFinders(t *testing.T) {
	sc, _, _ := newTestContext(llm.NewMockProvider())
	video, page := sc.SolutionLinks(context.Background(), "integrate x^2")
	assert.Empty(t, video)
	assert.Empty(t, page)
}

func TestSaveLoad(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte(analysisJSON)})
	sc, events, snapshots := newTestContext(provider)
	ctx := context.Background()

	_, err := sc.IngestAnalysis(ctx, "t.pdf", "text")
	require.NoError(t, err)
	sc.Streak().RecordCompletion(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local))
	sc.Streak().RecordCompletion(time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local))

	require.NoError(t, sc.Save(ctx))
	require.Len(t, snapshots.saved, 1)
	assert.Equal(t, 2, snapshots.saved[0].Data.CurrentStreak)

	restored := New(Deps{Provider: provider, Events: events, Snapshots: snapshots})
	require.NoError(t, restored.Load(ctx))

	assert.Equal(t, sc.Totals(), restored.Totals())
	assert.Equal(t, 2, restored.Streak().Current())
	assert.Equal(t, sc.WeakTopics(), restored.WeakTopics())
	total, correct := restored.Ledger().Stats("Optics")
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, correct)
}

func TestLoadWithoutSnapshotFoldsEvents(t *testing.T) {
	events := &fakeEvents{totals: store.OverallTotals{Answered: 7, Correct: 4}}
	events.completions = append(events.completions, store.CompletionEventData{Day: "2026-03-10"})

	sc := New(Deps{
		Provider:  llm.NewMockProvider(),
		Events:    events,
		Snapshots: &fakeSnapshots{},
	})
	require.NoError(t, sc.Load(context.Background()))

	assert.Equal(t, 7, sc.Totals().QuestionsSolved)
	assert.Equal(t, 4, sc.Totals().CorrectAnswers)
	assert.Equal(t, 1, sc.Streak().Current())
}
