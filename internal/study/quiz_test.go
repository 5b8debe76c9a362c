package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerAll answers every question, choosing the correct option when
// correct(i) is true, and returns the final result.
func answerAll(t *testing.T, q *QuizController, correct func(i int) bool) QuizResult {
	t.Helper()
	total := len(q.State().Questions)
	for i := 0; i < total; i++ {
		option := 1
		if correct(i) {
			option = 0
		}
		_, err := q.SelectOption(option)
		require.NoError(t, err)
		if i < total-1 {
			require.NoError(t, q.Advance())
		}
	}
	result, err := q.Finish()
	require.NoError(t, err)
	return result
}

func TestQuizController_Scoring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		total   int
		correct func(i int) bool
		want    QuizResult
	}{
		{
			name:    "all_correct",
			total:   10,
			correct: func(int) bool { return true },
			want:    QuizResult{Score: 10, Total: 10, Percentage: 100},
		},
		{
			name:    "all_wrong",
			total:   10,
			correct: func(int) bool { return false },
			want:    QuizResult{Score: 0, Total: 10, Percentage: 0},
		},
		{
			name:    "half_correct",
			total:   10,
			correct: func(i int) bool { return i%2 == 0 },
			want:    QuizResult{Score: 5, Total: 10, Percentage: 50},
		},
		{
			name:    "rounded_percentage",
			total:   3,
			correct: func(i int) bool { return i < 2 },
			want:    QuizResult{Score: 2, Total: 3, Percentage: 67},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := NewQuizController()
			require.NoError(t, q.Reset(makeQuestions(tt.total)))

			assert.Equal(t, tt.want, answerAll(t, q, tt.correct))
			assert.Equal(t, QuizCompleted, q.State().Status)
			assert.Equal(t, 1.0, q.Progress())
		})
	}
}

func TestQuizController_SelectOption(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	require.NoError(t, q.Reset(makeQuestions(2)))

	feedback, err := q.SelectOption(2)
	require.NoError(t, err)
	assert.Equal(t, Feedback{Selected: 2, CorrectIndex: 0, Correct: false, Explanation: "explanation 1"}, feedback)
	assert.Equal(t, QuizAwaitingAdvance, q.State().Status)

	view := q.View()
	assert.Equal(t, []OptionVerdict{VerdictCorrect, VerdictNone, VerdictIncorrect, VerdictNone}, view.Verdicts)
	assert.True(t, view.Answered)
	assert.True(t, view.CanAdvance)
	assert.False(t, view.CanFinish)
	require.NotNil(t, view.Feedback)
	assert.Equal(t, feedback, *view.Feedback)
}

func TestQuizController_AnswerOnce(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	require.NoError(t, q.Reset(makeQuestions(2)))

	_, err := q.SelectOption(0)
	require.NoError(t, err)
	before := q.State()

	_, err = q.SelectOption(0)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = q.SelectOption(3)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	assert.Equal(t, before, q.State())
	assert.Equal(t, 1, q.State().Score)
}

func TestQuizController_OptionOutOfRange(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	require.NoError(t, q.Reset(makeQuestions(1)))
	before := q.State()

	for _, index := range []int{-1, 4, 9} {
		_, err := q.SelectOption(index)
		assert.ErrorIs(t, err, ErrOptionOutOfRange)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	}
	assert.Equal(t, before, q.State())
}

func TestQuizController_IllegalTransitions(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	require.NoError(t, q.Reset(makeQuestions(2)))
	before := q.State()

	assert.ErrorIs(t, q.Advance(), ErrInvalidOperation, "advance before answering")
	_, err := q.Finish()
	assert.ErrorIs(t, err, ErrInvalidOperation, "finish before answering")

	_, err = q.SelectOption(0)
	require.NoError(t, err)
	_, err = q.Finish()
	assert.ErrorIs(t, err, ErrInvalidOperation, "finish before the last question")

	assert.NotEqual(t, before, q.State())
	assert.Equal(t, 0, q.State().Cursor)
}

func TestQuizController_FinishIsIdempotent(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	require.NoError(t, q.Reset(makeQuestions(2)))
	first := answerAll(t, q, func(i int) bool { return i == 0 })

	second, err := q.Finish()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = q.SelectOption(0)
	assert.ErrorIs(t, err, ErrInvalidOperation, "no answers after completion")
	assert.ErrorIs(t, q.Advance(), ErrInvalidOperation)
}

func TestQuizController_AdvancePastLastCompletes(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	require.NoError(t, q.Reset(makeQuestions(1)))

	_, err := q.SelectOption(0)
	require.NoError(t, err)
	assert.True(t, q.View().CanFinish)
	require.NoError(t, q.Advance())

	view := q.View()
	assert.Equal(t, QuizCompleted, view.Status)
	require.NotNil(t, view.Result)
	assert.Equal(t, QuizResult{Score: 1, Total: 1, Percentage: 100}, *view.Result)
	assert.False(t, q.Active())
}

func TestQuizController_Progress(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	assert.Zero(t, q.Progress())

	require.NoError(t, q.Reset(makeQuestions(4)))
	assert.Zero(t, q.Progress())

	_, err := q.SelectOption(0)
	require.NoError(t, err)
	assert.Zero(t, q.Progress(), "answering does not move the cursor")
	require.NoError(t, q.Advance())
	assert.Equal(t, 0.25, q.Progress())
}

func TestQuizController_Restart(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	assert.ErrorIs(t, q.Restart(), ErrInvalidOperation)

	require.NoError(t, q.Reset(makeQuestions(2)))
	answerAll(t, q, func(int) bool { return true })
	require.NoError(t, q.Restart())

	s := q.State()
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, QuizInProgress, s.Status)
	assert.Equal(t, []int{-1, -1}, s.Answers)
	assert.Len(t, s.Questions, 2)
}

func TestQuizController_ResetEmpty(t *testing.T) {
	t.Parallel()

	q := NewQuizController()
	assert.ErrorIs(t, q.Reset(nil), ErrEmptyQuiz)
	assert.False(t, q.Loaded())
	assert.Equal(t, QuizView{}, q.View())
}
