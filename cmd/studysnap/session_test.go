package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/phrazzld/studysnap/internal/platform/logger"
)

const sourceText = "Photosynthesis converts light energy into chemical energy stored in glucose."

type fakeGenerator struct {
	calls int
	texts []string
	fn    func(call int) (*domain.StudySet, error)
}

func (f *fakeGenerator) Generate(_ context.Context, text string) (*domain.StudySet, error) {
	f.calls++
	f.texts = append(f.texts, text)
	return f.fn(f.calls)
}

func photosynthesisSet() *domain.StudySet {
	return &domain.StudySet{
		Flashcards: []domain.Flashcard{
			{Question: "What does photosynthesis produce?", Answer: "Glucose and oxygen"},
			{Question: "Which pigment absorbs light?", Answer: "Chlorophyll"},
		},
		Quiz: []domain.QuizQuestion{
			{
				Question:      "Where does photosynthesis occur?",
				Options:       []string{"Chloroplast", "Nucleus", "Ribosome", "Vacuole"},
				CorrectAnswer: 0,
				Explanation:   "Chloroplasts hold chlorophyll.",
			},
			{
				Question:      "What gas is absorbed?",
				Options:       []string{"Carbon dioxide", "Oxygen", "Nitrogen", "Helium"},
				CorrectAnswer: 0,
			},
		},
	}
}

func runSession(t *testing.T, gen *fakeGenerator, script string) string {
	t.Helper()
	var out bytes.Buffer
	l, _ := logger.NewTestLogger(t)
	s := newSession(gen, bufio.NewReader(strings.NewReader(script)), newRenderer(&out, true), l)
	require.NoError(t, s.run(context.Background()))
	return out.String()
}

func TestSession_StudyFlow(t *testing.T) {
	t.Parallel()

	exportPath := filepath.Join(t.TempDir(), "set.xlsx")
	gen := &fakeGenerator{fn: func(int) (*domain.StudySet, error) { return photosynthesisSet(), nil }}

	script := strings.Join([]string{
		sourceText, ".",
		"",  // flip
		">", // next card
		"t", // quiz view
		"1",
		"", // next question
		"b",
		"finish",
		"export " + exportPath,
		"q",
	}, "\n") + "\n"

	out := runSession(t, gen, script)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, []string{sourceText}, gen.texts)
	assert.Contains(t, out, "Card 1 of 2")
	assert.Contains(t, out, "A: Glucose and oxygen")
	assert.Contains(t, out, "Card 2 of 2")
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Chloroplasts hold chlorophyll.")
	assert.Contains(t, out, "Incorrect.")
	assert.Contains(t, out, "You scored 1 out of 2 (50%)")
	assert.Contains(t, out, "Saved study set to "+exportPath)

	_, err := os.Stat(exportPath)
	assert.NoError(t, err)
}

func TestSession_TooShortNeverGenerates(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{fn: func(int) (*domain.StudySet, error) { return photosynthesisSet(), nil }}

	out := runSession(t, gen, "too short\n.\n")

	assert.Zero(t, gen.calls)
	assert.Contains(t, out, "9 characters (minimum 50)")
}

func TestSession_RetryAfterFailure(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{fn: func(call int) (*domain.StudySet, error) {
		if call == 1 {
			return nil, errors.New("Failed to generate content. Please try again.")
		}
		return photosynthesisSet(), nil
	}}

	out := runSession(t, gen, sourceText+"\n.\nretry\nq\n")

	assert.Equal(t, 2, gen.calls)
	assert.Equal(t, []string{sourceText, sourceText}, gen.texts)
	assert.Contains(t, out, "Error: Failed to generate content. Please try again.")
	assert.Contains(t, out, "Card 1 of 2")
}

func TestSession_NewTextAfterResults(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{fn: func(int) (*domain.StudySet, error) { return photosynthesisSet(), nil }}
	second := strings.Repeat("Mitochondria produce most of the cell's ATP. ", 2)

	runSession(t, gen, sourceText+"\n.\nnew\n"+second+"\n.\nq\n")

	require.Equal(t, 2, gen.calls)
	assert.Equal(t, second, gen.texts[1])
}

func TestSession_PendingTextAndAutoExport(t *testing.T) {
	t.Parallel()

	exportPath := filepath.Join(t.TempDir(), "auto.xlsx")
	gen := &fakeGenerator{fn: func(int) (*domain.StudySet, error) { return photosynthesisSet(), nil }}
	var out bytes.Buffer
	l, _ := logger.NewTestLogger(t)
	s := newSession(gen, bufio.NewReader(strings.NewReader("")), newRenderer(&out, true), l)
	s.pending = sourceText
	s.exportTo = exportPath

	require.NoError(t, s.run(context.Background()))

	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, out.String(), "Saved study set to "+exportPath)
	_, err := os.Stat(exportPath)
	assert.NoError(t, err)
}

func TestSession_UnknownCommand(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{fn: func(int) (*domain.StudySet, error) { return photosynthesisSet(), nil }}

	out := runSession(t, gen, sourceText+"\n.\nfly\nq\n")

	assert.Contains(t, out, `unknown command "fly"`)
}

func TestProgressBar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "["+strings.Repeat("-", progressWidth)+"]", progressBar(0))
	assert.Equal(t, "["+strings.Repeat("#", 15)+strings.Repeat("-", 15)+"]", progressBar(0.5))
	assert.Equal(t, "["+strings.Repeat("#", progressWidth)+"]", progressBar(1))
}
