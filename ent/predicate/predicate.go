// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisEvent is the predicate function for analysisevent builders.
type AnalysisEvent func(*sql.Selector)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// BookmarkEvent is the predicate function for bookmarkevent builders.
type BookmarkEvent func(*sql.Selector)

// CompletionEvent is the predicate function for completionevent builders.
type CompletionEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
