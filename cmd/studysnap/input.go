package main

import (
	"fmt"
	"strings"

	"github.com/phrazzld/studysnap/internal/study"
)

// commandKind is what a line typed during the results phase asks for.
type commandKind int

const (
	cmdEvent commandKind = iota
	cmdHelp
	cmdNew
	cmdExport
	cmdQuit
)

// command is a parsed input line.
type command struct {
	kind  commandKind
	event study.Event
	arg   string
}

// parseCommand maps a line typed in view v to a command. Most words become
// router events; the rest drive the session itself.
func parseCommand(line string, v study.View) (command, error) {
	word, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	word = strings.ToLower(word)
	rest = strings.TrimSpace(rest)

	if word == "" {
		if v == study.ViewQuiz {
			return eventCmd(study.Event{Kind: study.EventNextQuestion}), nil
		}
		return keyCmd(study.KeySpace), nil
	}

	switch word {
	case "?", "h", "help":
		return command{kind: cmdHelp}, nil
	case "q", "quit", "exit":
		return command{kind: cmdQuit}, nil
	case "new", "reset":
		return command{kind: cmdNew}, nil
	case "export", "x":
		return command{kind: cmdExport, arg: rest}, nil

	case "t", "tab":
		return eventCmd(study.Event{Kind: study.EventKey, Key: study.KeyTab, Ctrl: true}), nil
	case "cards", "flashcards":
		return eventCmd(study.Event{Kind: study.EventSelectView, View: study.ViewFlashcards}), nil
	case "quiz":
		return eventCmd(study.Event{Kind: study.EventSelectView, View: study.ViewQuiz}), nil

	case "f", "flip", "space":
		return keyCmd(study.KeySpace), nil
	case "l", "right", ">":
		return keyCmd(study.KeyArrowRight), nil
	case "left", "<":
		return keyCmd(study.KeyArrowLeft), nil
	case "n", "next":
		if v == study.ViewQuiz {
			return eventCmd(study.Event{Kind: study.EventNextQuestion}), nil
		}
		return eventCmd(study.Event{Kind: study.EventNextCard}), nil
	case "p", "prev", "previous":
		return eventCmd(study.Event{Kind: study.EventPreviousCard}), nil
	case "finish", "done":
		return eventCmd(study.Event{Kind: study.EventFinishQuiz}), nil
	case "retake", "again":
		return eventCmd(study.Event{Kind: study.EventRetakeQuiz}), nil
	case "a", "b", "c", "d":
		return eventCmd(study.Event{Kind: study.EventOptionSelected, Option: int(word[0] - 'a')}), nil
	}

	if len(word) == 1 && word[0] >= '0' && word[0] <= '9' {
		return keyCmd(word), nil
	}
	return command{}, fmt.Errorf("unknown command %q (type ? for help)", word)
}

func eventCmd(ev study.Event) command {
	return command{kind: cmdEvent, event: ev}
}

func keyCmd(key string) command {
	return eventCmd(study.Event{Kind: study.EventKey, Key: key})
}
