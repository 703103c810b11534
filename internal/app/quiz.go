package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/notqc/helpmate/internal/bookmarks"
	"github.com/notqc/helpmate/internal/quiz"
	"github.com/notqc/helpmate/internal/quizgen"
	"github.com/notqc/helpmate/internal/store"
)

// ErrNoActiveSession is returned by quiz handlers when no quiz has
// been started.
var ErrNoActiveSession = errors.New("no active quiz session")

// StartQuiz generates questions for topic and opens a new session,
// replacing any previous one. Accumulated weak topics bias generation.
func (c *StudyContext) StartQuiz(ctx context.Context, topic, difficulty string, count int) (*quiz.Session, error) {
	questions, err := c.generator.Generate(ctx, quizgen.GenerateInput{
		Topic:      topic,
		Difficulty: difficulty,
		Count:      count,
		WeakTopics: c.WeakTopics(),
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	session, err := quiz.NewSession(topic, questions)
	if err != nil {
		return nil, err
	}
	c.session = session
	c.sessionClosed = false
	return session, nil
}

// SubmitAnswer grades the current question. The cursor stays put so
// the student can read the explanation before moving on.
func (c *StudyContext) SubmitAnswer(ctx context.Context, choice int) (*quiz.SubmitResult, error) {
	if c.session == nil {
		return nil, ErrNoActiveSession
	}

	result, err := c.session.Submit(choice)
	if err != nil {
		return nil, err
	}

	c.ledger.Record(c.session.Topic, result.Correct)
	c.totals.QuestionsSolved++
	if result.Correct {
		c.totals.CorrectAnswers++
	}

	question := c.session.Questions[result.QuestionIndex]
	if err := c.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     c.session.ID,
		Topic:         c.session.Topic,
		QuestionIndex: result.QuestionIndex,
		QuestionText:  question.Text,
		SelectedIndex: result.SelectedIndex,
		CorrectIndex:  result.CorrectIndex,
		Correct:       result.Correct,
	}); err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}
	return result, nil
}

// SkipQuestion passes on the current question and advances. May
// complete the session.
func (c *StudyContext) SkipQuestion(ctx context.Context) error {
	if c.session == nil {
		return ErrNoActiveSession
	}

	question, idx := c.session.Current()
	if err := c.session.Skip(); err != nil {
		return err
	}

	if err := c.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     c.session.ID,
		Topic:         c.session.Topic,
		QuestionIndex: idx,
		QuestionText:  question.Text,
		Skipped:       true,
		SelectedIndex: -1,
		CorrectIndex:  question.CorrectIndex,
	}); err != nil {
		return fmt.Errorf("record skip: %w", err)
	}
	return c.maybeComplete(ctx)
}

// NextQuestion advances past an answered question. May complete the
// session.
func (c *StudyContext) NextQuestion(ctx context.Context) error {
	if c.session == nil {
		return ErrNoActiveSession
	}
	if err := c.session.Advance(); err != nil {
		return err
	}
	return c.maybeComplete(ctx)
}

// ToggleBookmark flips the bookmark on the current question and keeps
// the bookmark store and event history in sync.
func (c *StudyContext) ToggleBookmark(ctx context.Context) (bool, error) {
	if c.session == nil {
		return false, ErrNoActiveSession
	}

	question, idx := c.session.Current()
	bookmarked, err := c.session.ToggleBookmark()
	if err != nil {
		return false, err
	}

	action := "remove"
	if bookmarked {
		action = "add"
		c.bookmarks.Add(bookmarks.Snapshot{
			Question:      question,
			Topic:         c.session.Topic,
			QuestionIndex: idx,
		})
	} else {
		c.bookmarks.Remove(question.Text, c.session.Topic)
	}

	if err := c.events.AppendBookmarkEvent(ctx, store.BookmarkEventData{
		Action:           action,
		Topic:            c.session.Topic,
		QuestionIndex:    idx,
		QuestionText:     question.Text,
		Choices:          question.Choices,
		CorrectIndex:     question.CorrectIndex,
		ExplanationSteps: question.Explanation.Steps,
		VideoURL:         question.Explanation.VideoURL,
	}); err != nil {
		return bookmarked, fmt.Errorf("record bookmark: %w", err)
	}
	return bookmarked, nil
}

// maybeComplete runs the completion side effects exactly once per
// session: one streak completion and one completion event, regardless
// of the skip/answer mix.
func (c *StudyContext) maybeComplete(ctx context.Context) error {
	if !c.session.Completed() || c.sessionClosed {
		return nil
	}
	c.sessionClosed = true

	now := c.now()
	c.streak.RecordCompletion(now)

	if err := c.events.AppendCompletionEvent(ctx, store.CompletionEventData{
		SessionID: c.session.ID,
		Topic:     c.session.Topic,
		Day:       now.Format("2006-01-02"),
		Questions: c.session.Len(),
		Answered:  c.session.Attempted(),
		Correct:   c.session.Score(),
	}); err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	return nil
}
