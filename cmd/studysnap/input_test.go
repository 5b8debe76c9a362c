package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/studysnap/internal/study"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		view study.View
		want command
	}{
		{name: "enter_flips_card", line: "", view: study.ViewFlashcards, want: keyCmd(study.KeySpace)},
		{name: "enter_advances_quiz", line: "  ", view: study.ViewQuiz, want: eventCmd(study.Event{Kind: study.EventNextQuestion})},
		{name: "arrow_right", line: ">", view: study.ViewFlashcards, want: keyCmd(study.KeyArrowRight)},
		{name: "arrow_left", line: "LEFT", view: study.ViewFlashcards, want: keyCmd(study.KeyArrowLeft)},
		{name: "next_card", line: "n", view: study.ViewFlashcards, want: eventCmd(study.Event{Kind: study.EventNextCard})},
		{name: "next_question", line: "next", view: study.ViewQuiz, want: eventCmd(study.Event{Kind: study.EventNextQuestion})},
		{name: "previous_card", line: "p", view: study.ViewFlashcards, want: eventCmd(study.Event{Kind: study.EventPreviousCard})},
		{name: "digit_key", line: "3", view: study.ViewQuiz, want: keyCmd("3")},
		{name: "out_of_range_digit_still_a_key", line: "7", view: study.ViewQuiz, want: keyCmd("7")},
		{name: "letter_option", line: "c", view: study.ViewQuiz, want: eventCmd(study.Event{Kind: study.EventOptionSelected, Option: 2})},
		{name: "toggle_view", line: "t", view: study.ViewFlashcards, want: eventCmd(study.Event{Kind: study.EventKey, Key: study.KeyTab, Ctrl: true})},
		{name: "select_quiz", line: "quiz", view: study.ViewFlashcards, want: eventCmd(study.Event{Kind: study.EventSelectView, View: study.ViewQuiz})},
		{name: "finish", line: "finish", view: study.ViewQuiz, want: eventCmd(study.Event{Kind: study.EventFinishQuiz})},
		{name: "retake", line: "retake", view: study.ViewQuiz, want: eventCmd(study.Event{Kind: study.EventRetakeQuiz})},
		{name: "export_with_path", line: "export My Set.xlsx", view: study.ViewQuiz, want: command{kind: cmdExport, arg: "My Set.xlsx"}},
		{name: "export_default", line: "x", view: study.ViewQuiz, want: command{kind: cmdExport}},
		{name: "new", line: "new", view: study.ViewQuiz, want: command{kind: cmdNew}},
		{name: "quit", line: "q", view: study.ViewFlashcards, want: command{kind: cmdQuit}},
		{name: "help", line: "?", view: study.ViewFlashcards, want: command{kind: cmdHelp}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseCommand(tt.line, tt.view)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Unknown(t *testing.T) {
	t.Parallel()

	_, err := parseCommand("jump", study.ViewFlashcards)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"jump"`)
}
