package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/notqc/helpmate/internal/quizgen"
)

// Errors returned by session operations. All leave the session
// unchanged.
var (
	// ErrSessionCompleted is returned by mutating operations after the
	// session has finished.
	ErrSessionCompleted = errors.New("quiz session already completed")

	// ErrAlreadyFinalized is returned when submitting or skipping a
	// question that was already answered or skipped.
	ErrAlreadyFinalized = errors.New("question already answered or skipped")

	// ErrNotAnswered is returned by Advance when the current question
	// has not been answered yet.
	ErrNotAnswered = errors.New("current question not answered")

	// ErrChoiceOutOfRange is returned by Submit for a choice index
	// outside the question's options.
	ErrChoiceOutOfRange = errors.New("choice index out of range")
)

// AnswerStatus describes where one question is in its lifecycle.
type AnswerStatus int

const (
	StatusUnanswered AnswerStatus = iota
	StatusAnswered
	StatusSkipped
)

// AnswerState holds the student's interaction with one question.
// Bookmarking is orthogonal to answering: a bookmarked question can
// still be submitted or skipped.
type AnswerState struct {
	Status        AnswerStatus
	SelectedIndex int // -1 until answered
	Correct       bool
	Bookmarked    bool
}

// SubmitResult reports the outcome of a submit so the caller records
// performance exactly once.
type SubmitResult struct {
	QuestionIndex int
	SelectedIndex int
	CorrectIndex  int
	Correct       bool
}

// Session is the state machine for one quiz attempt. The cursor moves
// forward only; submitting does not advance it (the student reviews the
// explanation first), while skipping does.
type Session struct {
	ID        string
	Topic     string
	Questions []quizgen.Question

	cursor       int
	answers      map[int]*AnswerState
	correctCount int
	completed    bool
}

// NewSession creates a session over the given questions.
func NewSession(topic string, qs []quizgen.Question) (*Session, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("cannot start a session with no questions")
	}

	answers := make(map[int]*AnswerState, len(qs))
	for i := range qs {
		answers[i] = &AnswerState{SelectedIndex: -1}
	}

	return &Session{
		ID:        uuid.NewString(),
		Topic:     topic,
		Questions: qs,
		answers:   answers,
	}, nil
}

// Submit grades the current question against choice. The cursor stays
// put so the student can review the explanation before advancing.
func (s *Session) Submit(choice int) (*SubmitResult, error) {
	if s.completed {
		return nil, ErrSessionCompleted
	}

	q := s.Questions[s.cursor]
	if choice < 0 || choice >= len(q.Choices) {
		return nil, ErrChoiceOutOfRange
	}

	state := s.answers[s.cursor]
	if state.Status != StatusUnanswered {
		return nil, ErrAlreadyFinalized
	}

	correct := choice == q.CorrectIndex
	state.Status = StatusAnswered
	state.SelectedIndex = choice
	state.Correct = correct
	if correct {
		s.correctCount++
	}

	return &SubmitResult{
		QuestionIndex: s.cursor,
		SelectedIndex: choice,
		CorrectIndex:  q.CorrectIndex,
		Correct:       correct,
	}, nil
}

// Skip marks the current question skipped and advances immediately.
// Skipping the last question completes the session.
func (s *Session) Skip() error {
	if s.completed {
		return ErrSessionCompleted
	}

	state := s.answers[s.cursor]
	if state.Status != StatusUnanswered {
		return ErrAlreadyFinalized
	}

	state.Status = StatusSkipped
	s.advance()
	return nil
}

// Advance moves past an answered question. Advancing past the last
// question completes the session.
func (s *Session) Advance() error {
	if s.completed {
		return ErrSessionCompleted
	}
	if s.answers[s.cursor].Status != StatusAnswered {
		return ErrNotAnswered
	}
	s.advance()
	return nil
}

func (s *Session) advance() {
	s.cursor++
	if s.cursor >= len(s.Questions) {
		s.cursor = len(s.Questions)
		s.completed = true
	}
}

// ToggleBookmark flips the bookmark flag on the current question and
// returns the new value. Allowed in any answer state while the session
// is in progress; the caller keeps the bookmark store in sync.
func (s *Session) ToggleBookmark() (bool, error) {
	if s.completed {
		return false, ErrSessionCompleted
	}
	state := s.answers[s.cursor]
	state.Bookmarked = !state.Bookmarked
	return state.Bookmarked, nil
}

// Current returns the question under the cursor and its index.
// After completion it returns the last question.
func (s *Session) Current() (quizgen.Question, int) {
	idx := s.cursor
	if idx >= len(s.Questions) {
		idx = len(s.Questions) - 1
	}
	return s.Questions[idx], idx
}

// State returns the answer state for question i, or nil if out of range.
func (s *Session) State(i int) *AnswerState {
	return s.answers[i]
}

// Cursor returns the current question index; equals Len() once completed.
func (s *Session) Cursor() int { return s.cursor }

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.Questions) }

// Completed reports whether the session has finished.
func (s *Session) Completed() bool { return s.completed }

// Score returns the number of correctly answered questions.
func (s *Session) Score() int { return s.correctCount }

// Attempted returns the number of answered (not skipped) questions.
func (s *Session) Attempted() int {
	n := 0
	for _, st := range s.answers {
		if st.Status == StatusAnswered {
			n++
		}
	}
	return n
}

// Accuracy returns correct/attempted, with ok=false when nothing has
// been attempted yet.
func (s *Session) Accuracy() (float64, bool) {
	attempted := s.Attempted()
	if attempted == 0 {
		return 0, false
	}
	return float64(s.correctCount) / float64(attempted), true
}

// Skipped returns the number of skipped questions.
func (s *Session) Skipped() int {
	n := 0
	for _, st := range s.answers {
		if st.Status == StatusSkipped {
			n++
		}
	}
	return n
}
