package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildStudySet returns a schema-valid study set of the requested size.
func buildStudySet(cards, questions int) *domain.StudySet {
	set := &domain.StudySet{}
	for i := 0; i < cards; i++ {
		set.Flashcards = append(set.Flashcards, domain.Flashcard{
			Question: fmt.Sprintf("Question %d?", i+1),
			Answer:   fmt.Sprintf("Answer %d", i+1),
		})
	}
	for i := 0; i < questions; i++ {
		set.Quiz = append(set.Quiz, domain.QuizQuestion{
			Question:      fmt.Sprintf("Quiz %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % domain.OptionCount,
			Explanation:   fmt.Sprintf("Because %d", i+1),
		})
	}
	return set
}

func TestParseStudySet_FencedPayload(t *testing.T) {
	t.Parallel()

	want := buildStudySet(15, 10)
	body, err := json.MarshalIndent(want, "", "  ")
	require.NoError(t, err)

	got, err := ParseStudySet("```json\n" + string(body) + "\n```")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseStudySet_PlainPayload(t *testing.T) {
	t.Parallel()

	want := buildStudySet(1, 1)
	body, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := ParseStudySet(string(body))

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseStudySet_ClosingFenceOnly(t *testing.T) {
	t.Parallel()

	want := buildStudySet(2, 1)
	body, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := ParseStudySet(string(body) + "\n```")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseStudySet_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		wantMalformed bool
	}{
		{name: "empty", input: "   "},
		{name: "prose", input: "Sure! Here are some flashcards.", wantMalformed: true},
		{name: "truncated", input: "```json\n{\"flashcards\": [", wantMalformed: true},
		{name: "wrong_shape", input: `{"flashcards": [], "quiz": []}`},
		{
			name:  "three_options",
			input: `{"flashcards":[{"question":"q","answer":"a"}],"quiz":[{"question":"q","options":["a","b","c"],"correctAnswer":0,"explanation":""}]}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, err := ParseStudySet(tt.input)

			require.Error(t, err)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, ErrInvalidResponse)
			if tt.wantMalformed {
				assert.ErrorIs(t, err, domain.ErrMalformedJSON)
			}
		})
	}
}

func TestUnconfigured(t *testing.T) {
	t.Parallel()

	set, err := Unconfigured{Provider: "gemini"}.Generate(context.Background(), "anything at all")

	assert.Nil(t, set)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "gemini")
}
