package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/studysnap/internal/export"
	"github.com/phrazzld/studysnap/internal/generation"
	"github.com/phrazzld/studysnap/internal/study"
)

const (
	defaultExportPath = "studysnap.xlsx"
	endOfText         = "."
)

// session drives one interactive run of the client.
type session struct {
	app *study.App
	gen generation.Generator
	in  *bufio.Reader
	ui  *renderer
	log *slog.Logger

	// pending is source text supplied up front, used instead of prompting.
	pending  string
	lastText string
	exportTo string
}

func newSession(gen generation.Generator, in *bufio.Reader, ui *renderer, log *slog.Logger) *session {
	return &session{
		app: study.NewApp(log),
		gen: gen,
		in:  in,
		ui:  ui,
		log: log,
	}
}

// run loops until the user quits or input ends.
func (s *session) run(ctx context.Context) error {
	for {
		var (
			done bool
			err  error
		)
		switch s.app.Phase() {
		case study.PhaseInput:
			done, err = s.input(ctx)
		case study.PhaseError:
			done, err = s.failed(ctx)
		case study.PhaseResults:
			done, err = s.results(ctx)
		default:
			return errors.New("unexpected loading phase")
		}
		if err != nil || done {
			return err
		}
	}
}

func (s *session) input(ctx context.Context) (bool, error) {
	text := s.pending
	s.pending = ""
	if text == "" {
		s.ui.inputPrompt()
		var err error
		text, err = s.readText()
		if err != nil && !errors.Is(err, io.EOF) {
			return true, err
		}
		if strings.TrimSpace(text) == "" && errors.Is(err, io.EOF) {
			return true, nil
		}
	}

	status := study.CheckInput(text)
	s.ui.inputStatus(status)
	if !status.CanGenerate {
		return false, nil
	}
	return false, s.generate(ctx, text)
}

func (s *session) generate(ctx context.Context, text string) error {
	s.lastText = text
	s.ui.loading()
	if _, err := s.app.Generate(ctx, s.gen, text); err != nil {
		return err
	}
	if s.app.Phase() == study.PhaseResults && s.exportTo != "" {
		s.export(s.exportTo)
	}
	return nil
}

func (s *session) failed(ctx context.Context) (bool, error) {
	s.ui.failure(s.app.ErrorMessage())
	line, err := s.readLine()
	if err != nil {
		return true, ignoreEOF(err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true, nil
	case "retry", "r", "":
		return false, s.generate(ctx, s.lastText)
	default:
		s.app.Reset()
		return false, nil
	}
}

func (s *session) results(ctx context.Context) (bool, error) {
	view := s.app.ActiveView()
	s.ui.tabs(view)
	if view == study.ViewQuiz {
		s.ui.quiz(s.app.QuizView())
	} else {
		s.ui.deck(s.app.DeckView())
	}

	line, err := s.readLine()
	if err != nil {
		return true, ignoreEOF(err)
	}

	cmd, err := parseCommand(line, view)
	if err != nil {
		s.ui.printf("%s\n", err)
		return false, nil
	}

	switch cmd.kind {
	case cmdQuit:
		return true, nil
	case cmdHelp:
		s.ui.help()
	case cmdNew:
		s.app.Reset()
	case cmdExport:
		path := cmd.arg
		if path == "" {
			path = s.exportTo
		}
		if path == "" {
			path = defaultExportPath
		}
		s.export(path)
	case cmdEvent:
		if s.app.Dispatch(ctx, cmd.event) == study.ActionNone {
			s.log.Debug("command had no effect", slog.String("input", line))
		}
	}
	return false, nil
}

func (s *session) export(path string) {
	if err := export.Save(path, s.app.StudySet()); err != nil {
		s.ui.failureLine(err.Error())
		return
	}
	s.ui.printf("Saved study set to %s\n", path)
}

// readText reads lines until a line holding only "." or end of input.
func (s *session) readText() (string, error) {
	var b strings.Builder
	for {
		line, err := s.readLine()
		if err != nil {
			return b.String(), err
		}
		if strings.TrimSpace(line) == endOfText {
			return b.String(), nil
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned with a nil error.
func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
