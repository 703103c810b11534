package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notqc/helpmate/internal/quizgen"
)

func threeQuestions() []quizgen.Question {
	return []quizgen.Question{
		{Text: "q0", Choices: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		{Text: "q1", Choices: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
		{Text: "q2", Choices: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
	}
}

func TestNewSession(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Optics", s.Topic)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Cursor())
	assert.False(t, s.Completed())
}

func TestNewSession_EmptyQuestions(t *testing.T) {
	_, err := NewSession("Optics", nil)
	require.Error(t, err)
}

func TestSubmit_CorrectDoesNotAdvance(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	res, err := s.Submit(1)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 0, res.QuestionIndex)
	assert.Equal(t, 1, res.SelectedIndex)

	// Cursor stays on the question for explanation review.
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, StatusAnswered, s.State(0).Status)
}

func TestSubmit_Incorrect(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	res, err := s.Submit(0)
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, 1, res.CorrectIndex)
	assert.Equal(t, 0, s.Score())
}

func TestSubmit_ChoiceOutOfRange(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	_, err = s.Submit(4)
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)
	_, err = s.Submit(-1)
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)

	// Failed submits leave the question open.
	assert.Equal(t, StatusUnanswered, s.State(0).Status)
}

func TestSubmit_TwiceRejected(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	_, err = s.Submit(1)
	require.NoError(t, err)

	_, err = s.Submit(2)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Equal(t, 1, s.Score())
}

func TestSkip_AdvancesImmediately(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	require.NoError(t, s.Skip())
	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, StatusSkipped, s.State(0).Status)
	assert.False(t, s.Completed())
}

func TestSkip_AfterSubmitRejected(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	_, err = s.Submit(1)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Skip(), ErrAlreadyFinalized)
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Advance(), ErrNotAnswered)

	_, err = s.Submit(1)
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	assert.Equal(t, 1, s.Cursor())
}

func TestCompletion_ViaAdvance(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		q, idx := s.Current()
		assert.Equal(t, i, idx)
		_, err := s.Submit(q.CorrectIndex)
		require.NoError(t, err)
		require.NoError(t, s.Advance())
	}

	assert.True(t, s.Completed())
	assert.Equal(t, 3, s.Score())
	assert.Equal(t, 3, s.Cursor())
}

func TestCompletion_ViaSkipOnLastQuestion(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	require.NoError(t, s.Skip())
	require.NoError(t, s.Skip())
	require.NoError(t, s.Skip())

	assert.True(t, s.Completed())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Skipped())
}

func TestCompletedSession_RejectsMutations(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)
	require.NoError(t, s.Skip())
	require.NoError(t, s.Skip())
	require.NoError(t, s.Skip())

	_, err = s.Submit(0)
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.ErrorIs(t, s.Skip(), ErrSessionCompleted)
	assert.ErrorIs(t, s.Advance(), ErrSessionCompleted)
}

func TestToggleBookmark_AnyAnswerState(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	// Unanswered.
	on, err := s.ToggleBookmark()
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, s.State(0).Bookmarked)

	// Bookmark alone does not finalize the question.
	_, err = s.Submit(1)
	require.NoError(t, err)

	// Answered: toggling off works too.
	off, err := s.ToggleBookmark()
	require.NoError(t, err)
	assert.False(t, off)
	assert.False(t, s.State(0).Bookmarked)
}

func TestToggleBookmark_CompletedSessionRejected(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions()[:1])
	require.NoError(t, err)
	require.NoError(t, s.Skip())
	require.True(t, s.Completed())

	_, err = s.ToggleBookmark()
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.False(t, s.State(0).Bookmarked, "completed session must stay immutable")
}

func TestAccuracy(t *testing.T) {
	s, err := NewSession("Optics", threeQuestions())
	require.NoError(t, err)

	_, ok := s.Accuracy()
	assert.False(t, ok, "accuracy not determinable before any attempt")

	_, err = s.Submit(1) // correct
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	_, err = s.Submit(0) // incorrect
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	require.NoError(t, s.Skip())

	acc, ok := s.Accuracy()
	require.True(t, ok)
	assert.InDelta(t, 0.5, acc, 1e-9)
	assert.Equal(t, 2, s.Attempted())
	assert.Equal(t, 1, s.Skipped())
}
