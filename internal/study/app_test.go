package study

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/phrazzld/studysnap/internal/platform/logger"
)

// generatorFunc adapts a function to generation.Generator.
type generatorFunc func(ctx context.Context, text string) (*domain.StudySet, error)

func (f generatorFunc) Generate(ctx context.Context, text string) (*domain.StudySet, error) {
	return f(ctx, text)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	l, _ := logger.NewTestLogger(t)
	return NewApp(l)
}

func TestCheckInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want InputStatus
	}{
		{name: "empty", text: "", want: InputStatus{}},
		{name: "just_short", text: strings.Repeat("a", 49), want: InputStatus{Chars: 49}},
		{name: "exactly_enough", text: strings.Repeat("a", 50), want: InputStatus{Chars: 50, CanGenerate: true}},
		{name: "padding_ignored", text: "\n  " + strings.Repeat("a", 49) + "  \t", want: InputStatus{Chars: 49}},
		{name: "counts_characters_not_bytes", text: strings.Repeat("é", 50), want: InputStatus{Chars: 50, CanGenerate: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CheckInput(tt.text))
		})
	}
}

func TestApp_SuccessfulGeneration(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	assert.Equal(t, PhaseInput, app.Phase())

	applied, err := app.Generate(context.Background(), generatorFunc(func(context.Context, string) (*domain.StudySet, error) {
		assert.Equal(t, PhaseLoading, app.Phase())
		return makeSet(12, 10), nil
	}), "text")

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, PhaseResults, app.Phase())
	assert.NotEmpty(t, app.SessionID())
	assert.Equal(t, ViewFlashcards, app.ActiveView())
	assert.Equal(t, DeckView{Question: "Q1", Answer: "A1", Position: 1, Total: 12, CanGoForward: true}, app.DeckView())
	assert.Equal(t, 10, app.QuizView().Total)
	assert.Len(t, app.StudySet().Flashcards, 12)
}

func TestApp_FailedGeneration(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	applied, err := app.Generate(context.Background(), generatorFunc(func(context.Context, string) (*domain.StudySet, error) {
		return nil, errors.New("Invalid Gemini API key. Please check your configuration.")
	}), "text")

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, PhaseError, app.Phase())
	assert.Equal(t, "Invalid Gemini API key. Please check your configuration.", app.ErrorMessage())
	assert.Nil(t, app.StudySet())
	assert.Equal(t, ActionNone, app.Dispatch(context.Background(), key(KeySpace)))
}

func TestApp_EmptyStudySetFails(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ticket, err := app.Begin()
	require.NoError(t, err)

	require.True(t, app.Complete(ticket, &domain.StudySet{Flashcards: makeCards(1)}, nil))
	assert.Equal(t, PhaseError, app.Phase())
	assert.Equal(t, ErrEmptyQuiz.Error(), app.ErrorMessage())
	assert.Equal(t, DeckView{}, app.DeckView(), "no partial deck")
}

func TestApp_BeginWhileLoading(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	_, err := app.Begin()
	require.NoError(t, err)

	_, err = app.Begin()
	assert.ErrorIs(t, err, ErrGenerationPending)
}

func TestApp_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ticket, err := app.Begin()
	require.NoError(t, err)

	app.Reset()
	assert.Equal(t, PhaseInput, app.Phase())

	assert.False(t, app.Complete(ticket, makeSet(3, 2), nil))
	assert.Equal(t, PhaseInput, app.Phase())
	assert.Nil(t, app.StudySet())

	// A newer request is unaffected by the older ticket.
	fresh, err := app.Begin()
	require.NoError(t, err)
	assert.False(t, app.Complete(ticket, nil, errors.New("late failure")))
	assert.Equal(t, PhaseLoading, app.Phase())
	assert.True(t, app.Complete(fresh, makeSet(3, 2), nil))
	assert.Equal(t, PhaseResults, app.Phase())
}

func TestApp_ResetDuringGenerate(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	applied, err := app.Generate(context.Background(), generatorFunc(func(context.Context, string) (*domain.StudySet, error) {
		app.Reset()
		return makeSet(2, 2), nil
	}), "text")

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, PhaseInput, app.Phase())
}

func TestApp_DispatchAndReset(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ticket, err := app.Begin()
	require.NoError(t, err)
	require.True(t, app.Complete(ticket, makeSet(3, 2), nil))
	firstSession := app.SessionID()

	ctx := context.Background()
	assert.Equal(t, ActionNextCard, app.Dispatch(ctx, key(KeyArrowRight)))
	assert.Equal(t, 2, app.DeckView().Position)
	assert.Equal(t, ActionSwitchView, app.Dispatch(ctx, Event{Kind: EventKey, Key: KeyTab, Ctrl: true}))
	assert.Equal(t, ActionSelectOption, app.Dispatch(ctx, key("1")))
	assert.True(t, app.QuizView().Answered)

	app.Reset()
	assert.Equal(t, PhaseInput, app.Phase())
	assert.Empty(t, app.SessionID())
	assert.Equal(t, ViewFlashcards, app.ActiveView())
	assert.Equal(t, ActionNone, app.Dispatch(ctx, key(KeyArrowRight)))

	ticket, err = app.Begin()
	require.NoError(t, err)
	require.True(t, app.Complete(ticket, makeSet(3, 2), nil))
	assert.NotEqual(t, firstSession, app.SessionID())
	assert.Equal(t, 1, app.DeckView().Position)
	assert.False(t, app.QuizView().Answered)
}
