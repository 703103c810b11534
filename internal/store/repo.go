package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnswerEventData captures a single submit or skip inside a quiz session.
type AnswerEventData struct {
	SessionID     string
	Topic         string
	QuestionIndex int
	QuestionText  string
	Skipped       bool
	SelectedIndex int // -1 for a skip
	CorrectIndex  int
	Correct       bool
}

// CompletionEventData captures a quiz session reaching its end.
type CompletionEventData struct {
	SessionID string
	Topic     string
	Day       string // local calendar day, ISO format (2006-01-02)
	Questions int
	Answered  int
	Correct   int
}

// AnalysisEventData captures one document analysis result.
type AnalysisEventData struct {
	DocumentName   string
	TotalQuestions int
	CorrectAnswers int
	WeakTopics     []string
	Summary        string
}

// BookmarkEventData captures a bookmark being added or removed.
type BookmarkEventData struct {
	Action           string // "add" or "remove"
	Topic            string
	QuestionIndex    int
	QuestionText     string
	Choices          []string
	CorrectIndex     int
	ExplanationSteps string
	VideoURL         string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// TopicTotals aggregates graded answers for one topic.
type TopicTotals struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// OverallTotals aggregates the student's full history.
type OverallTotals struct {
	Sessions int `json:"sessions"`
	Answered int `json:"answered"`
	Skipped  int `json:"skipped"`
	Correct  int `json:"correct"`
}

// BookmarkRecord is a currently-bookmarked question, folded from the
// add/remove event history.
type BookmarkRecord struct {
	Topic            string    `json:"topic"`
	QuestionIndex    int       `json:"question_index"`
	QuestionText     string    `json:"question_text"`
	Choices          []string  `json:"choices"`
	CorrectIndex     int       `json:"correct_index"`
	ExplanationSteps string    `json:"explanation_steps"`
	VideoURL         string    `json:"video_url"`
	Sequence         int64     `json:"sequence"`
	Timestamp        time.Time `json:"timestamp"`
}

// AnalysisRecord is a stored document analysis.
type AnalysisRecord struct {
	DocumentName   string
	TotalQuestions int
	CorrectAnswers int
	WeakTopics     []string
	Summary        string
	Sequence       int64
	Timestamp      time.Time
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageTotals aggregates LLM requests for one grouping key.
type LLMUsageTotals struct {
	Requests     int
	InputTokens  int
	OutputTokens int
	Errors       int
}

// SnapshotData captures the full student state at a point in time.
type SnapshotData struct {
	Version       int                    `json:"version"`
	Totals        OverallTotals          `json:"totals"`
	TopicStats    map[string]TopicTotals `json:"topic_stats"`
	StreakHistory []string               `json:"streak_history"`
	CurrentStreak int                    `json:"current_streak"`
	WeakTopics    []string               `json:"weak_topics"`
	Bookmarks     []BookmarkRecord       `json:"bookmarks"`
}

// Snapshot represents a point-in-time capture of student state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages student state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records a submit or skip within a quiz session.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendCompletionEvent records a quiz session finishing.
	AppendCompletionEvent(ctx context.Context, data CompletionEventData) error

	// AppendAnalysisEvent records a document analysis result.
	AppendAnalysisEvent(ctx context.Context, data AnalysisEventData) error

	// AppendBookmarkEvent records a bookmark add or remove.
	AppendBookmarkEvent(ctx context.Context, data BookmarkEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// TopicStats aggregates graded answers per topic.
	TopicStats(ctx context.Context) (map[string]TopicTotals, error)

	// OverallTotals aggregates the complete answer and session history.
	OverallTotals(ctx context.Context) (OverallTotals, error)

	// CompletionDays returns the distinct calendar days with at least one
	// completed session, sorted ascending.
	CompletionDays(ctx context.Context) ([]string, error)

	// Bookmarks folds the bookmark event history into the current set.
	Bookmarks(ctx context.Context) ([]BookmarkRecord, error)

	// LatestAnalysis returns the most recent analysis, or nil if none exist.
	LatestAnalysis(ctx context.Context) (*AnalysisRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns the LLM request event with the given sequence.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) (map[string]LLMUsageTotals, error)

	// LLMUsageByModel aggregates LLM usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) (map[string]LLMUsageTotals, error)
}
