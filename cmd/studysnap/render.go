package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/phrazzld/studysnap/internal/study"
)

const progressWidth = 30

var optionLabels = []string{"A", "B", "C", "D"}

// renderer draws views as plain lines of text with optional color.
type renderer struct {
	out     io.Writer
	bold    *color.Color
	faint   *color.Color
	heading *color.Color
	good    *color.Color
	bad     *color.Color
}

func newRenderer(out io.Writer, noColor bool) *renderer {
	r := &renderer{
		out:     out,
		bold:    color.New(color.Bold),
		faint:   color.New(color.Faint),
		heading: color.New(color.FgCyan, color.Bold),
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{r.bold, r.faint, r.heading, r.good, r.bad} {
			c.DisableColor()
		}
	}
	return r
}

func (r *renderer) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

func (r *renderer) inputPrompt() {
	_, _ = r.heading.Fprintln(r.out, "StudySnap")
	r.printf("Paste or type your text, then finish with a line containing only \".\"\n")
	r.printf("At least %d characters are needed.\n\n", domain.MinSourceChars)
}

func (r *renderer) inputStatus(s study.InputStatus) {
	if s.CanGenerate {
		r.printf("%d characters\n", s.Chars)
		return
	}
	_, _ = r.bad.Fprintf(r.out, "%d characters (minimum %d)\n", s.Chars, domain.MinSourceChars)
}

func (r *renderer) loading() {
	_, _ = r.faint.Fprintln(r.out, "Generating study materials...")
}

func (r *renderer) failure(msg string) {
	r.failureLine(msg)
	r.printf("Type \"retry\" to try again, \"new\" for new text, or \"quit\".\n")
}

func (r *renderer) tabs(active study.View) {
	cards, quiz := " Flashcards ", " Quiz "
	if active == study.ViewFlashcards {
		cards = r.heading.Sprintf("[Flashcards]")
	} else {
		quiz = r.heading.Sprintf("[Quiz]")
	}
	r.printf("\n%s %s\n", cards, quiz)
}

func (r *renderer) deck(v study.DeckView) {
	r.printf("Card %d of %d\n\n", v.Position, v.Total)
	_, _ = r.bold.Fprintf(r.out, "Q: %s\n", v.Question)
	if v.Revealed {
		_, _ = r.good.Fprintf(r.out, "A: %s\n", v.Answer)
	} else {
		_, _ = r.faint.Fprintln(r.out, "(press Enter to reveal)")
	}

	var hints []string
	if v.CanGoBack {
		hints = append(hints, "< prev")
	}
	hints = append(hints, "f flip")
	if v.CanGoForward {
		hints = append(hints, "next >")
	}
	_, _ = r.faint.Fprintf(r.out, "\n%s\n", strings.Join(hints, " | "))
}

func (r *renderer) quiz(v study.QuizView) {
	if v.Result != nil {
		r.result(*v.Result)
		return
	}

	r.printf("Question %d of %d   Score: %d\n", v.Position, v.Total, v.Score)
	r.printf("%s\n\n", progressBar(v.Progress))
	_, _ = r.bold.Fprintln(r.out, v.Question)

	for i, opt := range v.Options {
		line := fmt.Sprintf("  %d) %s. %s", i+1, optionLabels[i], opt)
		switch v.Verdicts[i] {
		case study.VerdictCorrect:
			_, _ = r.good.Fprintln(r.out, line+"  ✓")
		case study.VerdictIncorrect:
			_, _ = r.bad.Fprintln(r.out, line+"  ✗")
		default:
			r.printf("%s\n", line)
		}
	}

	if fb := v.Feedback; fb != nil {
		if fb.Correct {
			_, _ = r.good.Fprintln(r.out, "\nCorrect!")
		} else {
			_, _ = r.bad.Fprintln(r.out, "\nIncorrect.")
		}
		if fb.Explanation != "" {
			r.printf("%s\n", fb.Explanation)
		}
	}

	switch {
	case v.CanAdvance:
		_, _ = r.faint.Fprintln(r.out, "\nPress Enter for the next question")
	case v.CanFinish:
		_, _ = r.faint.Fprintln(r.out, "\nType \"finish\" to see your results")
	default:
		_, _ = r.faint.Fprintln(r.out, "\nAnswer with 1-4")
	}
}

func (r *renderer) result(res study.QuizResult) {
	_, _ = r.heading.Fprintln(r.out, "Quiz complete!")
	r.printf("You scored %d out of %d (%d%%)\n", res.Score, res.Total, res.Percentage)
	_, _ = r.faint.Fprintln(r.out, "Type \"retake\" to try again")
}

func (r *renderer) help() {
	r.printf(`Commands
  Enter, f       flip card (flashcards) / next question (quiz)
  >, <           next / previous card
  n, p           next / previous
  1-4, a-d       answer the current question
  finish         show quiz results
  retake         start the quiz over
  t              switch between flashcards and quiz
  cards, quiz    go to a view
  export [file]  save the study set as an xlsx workbook
  new            start over with new text
  quit           exit
`)
}

func progressBar(fraction float64) string {
	filled := int(fraction * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled) + "]"
}

func (r *renderer) failureLine(msg string) {
	_, _ = r.bad.Fprintf(r.out, "Error: %s\n", msg)
}
