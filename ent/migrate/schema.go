// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "document_name", Type: field.TypeString, Default: ""},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "weak_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
		},
	}
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString},
		{Name: "skipped", Type: field.TypeBool, Default: false},
		{Name: "selected_index", Type: field.TypeInt, Default: -1},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool, Default: false},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_topic",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
		},
	}
	// BookmarkEventsColumns holds the columns for the "bookmark_events" table.
	BookmarkEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt, Default: 0},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_index", Type: field.TypeInt, Default: 0},
		{Name: "explanation_steps", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "video_url", Type: field.TypeString, Default: ""},
	}
	// BookmarkEventsTable holds the schema information for the "bookmark_events" table.
	BookmarkEventsTable = &schema.Table{
		Name:       "bookmark_events",
		Columns:    BookmarkEventsColumns,
		PrimaryKey: []*schema.Column{BookmarkEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bookmarkevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BookmarkEventsColumns[1]},
			},
			{
				Name:    "bookmarkevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BookmarkEventsColumns[2]},
			},
			{
				Name:    "bookmarkevent_topic",
				Unique:  false,
				Columns: []*schema.Column{BookmarkEventsColumns[4]},
			},
			{
				Name:    "bookmarkevent_action",
				Unique:  false,
				Columns: []*schema.Column{BookmarkEventsColumns[3]},
			},
		},
	}
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
		{Name: "questions", Type: field.TypeInt},
		{Name: "answered", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3]},
			},
			{
				Name:    "completionevent_day",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		AnswerEventsTable,
		BookmarkEventsTable,
		CompletionEventsTable,
		LlmRequestEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
