package study

import (
	"context"
	"log/slog"

	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/phrazzld/studysnap/internal/platform/logger"
)

// View is the study surface the user is looking at.
type View int

const (
	ViewFlashcards View = iota
	ViewQuiz
)

func (v View) String() string {
	if v == ViewQuiz {
		return "quiz"
	}
	return "flashcards"
}

// EventKind classifies a user input event.
type EventKind int

const (
	EventKey EventKind = iota
	EventOptionSelected
	EventCardClicked
	EventPreviousCard
	EventNextCard
	EventNextQuestion
	EventFinishQuiz
	EventRetakeQuiz
	EventSelectView
)

// Key names recognised by the router.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = "Space"
	KeyEnter      = "Enter"
	KeyTab        = "Tab"
)

// Event is a single user input. Key and Ctrl apply to EventKey, Option to
// EventOptionSelected and View to EventSelectView.
type Event struct {
	Kind   EventKind
	Key    string
	Ctrl   bool
	Option int
	View   View
}

// Action names what the router did with an event.
type Action string

const (
	ActionNone         Action = ""
	ActionPreviousCard Action = "previous_card"
	ActionNextCard     Action = "next_card"
	ActionFlip         Action = "flip"
	ActionSelectOption Action = "select_option"
	ActionAdvance      Action = "advance"
	ActionFinish       Action = "finish"
	ActionRestart      Action = "restart"
	ActionSwitchView   Action = "switch_view"
)

type binding struct {
	view View
	key  string
}

// keyBindings maps unmodified keys to deck actions per view. Digit keys in
// the quiz view are handled separately because they carry an index.
var keyBindings = map[binding]Action{
	{ViewFlashcards, KeyArrowLeft}:  ActionPreviousCard,
	{ViewFlashcards, KeyArrowRight}: ActionNextCard,
	{ViewFlashcards, KeySpace}:      ActionFlip,
	{ViewFlashcards, KeyEnter}:      ActionFlip,
}

// Router translates input events into controller operations. It never
// bypasses controller legality checks; rejected operations are logged at
// debug and otherwise ignored.
type Router struct {
	deck *DeckController
	quiz *QuizController
	view View
	log  *slog.Logger
}

// NewRouter returns a router over the given controllers, starting on the
// flashcards view.
func NewRouter(deck *DeckController, quiz *QuizController, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{deck: deck, quiz: quiz, log: log}
}

// View returns the active view.
func (r *Router) View() View {
	return r.view
}

// ResetView returns to the flashcards view.
func (r *Router) ResetView() {
	r.view = ViewFlashcards
}

// Dispatch applies ev and reports the action taken, or ActionNone.
func (r *Router) Dispatch(ctx context.Context, ev Event) Action {
	if !r.deck.Loaded() && !r.quiz.Loaded() {
		return ActionNone
	}

	s := r.resolve(ev)
	if s.action == ActionNone {
		return ActionNone
	}

	if err := r.apply(s); err != nil {
		logger.FromContextOrDefault(ctx, r.log).DebugContext(ctx, "input ignored",
			slog.String("action", string(s.action)),
			slog.String("view", r.view.String()),
			slog.String("error", err.Error()))
		return ActionNone
	}
	return s.action
}

// step is a resolved event: the action plus its argument.
type step struct {
	action Action
	option int
	view   View
}

// resolve maps an event to a step in the current view.
func (r *Router) resolve(ev Event) step {
	switch ev.Kind {
	case EventKey:
		if ev.Ctrl {
			if ev.Key == KeyTab {
				return step{action: ActionSwitchView, view: r.other()}
			}
			return step{}
		}
		if r.view == ViewQuiz {
			if n, ok := digit(ev.Key); ok && n >= 1 && n <= domain.OptionCount && !r.quiz.CurrentAnswered() {
				return step{action: ActionSelectOption, option: n - 1}
			}
			return step{}
		}
		return step{action: keyBindings[binding{r.view, ev.Key}]}
	case EventOptionSelected:
		return step{action: r.inView(ViewQuiz, ActionSelectOption), option: ev.Option}
	case EventCardClicked:
		return step{action: r.inView(ViewFlashcards, ActionFlip)}
	case EventPreviousCard:
		return step{action: r.inView(ViewFlashcards, ActionPreviousCard)}
	case EventNextCard:
		return step{action: r.inView(ViewFlashcards, ActionNextCard)}
	case EventNextQuestion:
		return step{action: r.inView(ViewQuiz, ActionAdvance)}
	case EventFinishQuiz:
		return step{action: r.inView(ViewQuiz, ActionFinish)}
	case EventRetakeQuiz:
		return step{action: r.inView(ViewQuiz, ActionRestart)}
	case EventSelectView:
		return step{action: ActionSwitchView, view: ev.View}
	}
	return step{}
}

func (r *Router) inView(v View, a Action) Action {
	if r.view != v {
		return ActionNone
	}
	return a
}

func (r *Router) other() View {
	if r.view == ViewQuiz {
		return ViewFlashcards
	}
	return ViewQuiz
}

func (r *Router) apply(s step) error {
	switch s.action {
	case ActionPreviousCard:
		if !r.deck.Previous() {
			return ErrInvalidOperation
		}
	case ActionNextCard:
		if !r.deck.Next() {
			return ErrInvalidOperation
		}
	case ActionFlip:
		if !r.deck.Flip() {
			return ErrInvalidOperation
		}
	case ActionSelectOption:
		_, err := r.quiz.SelectOption(s.option)
		return err
	case ActionAdvance:
		return r.quiz.Advance()
	case ActionFinish:
		_, err := r.quiz.Finish()
		return err
	case ActionRestart:
		return r.quiz.Restart()
	case ActionSwitchView:
		return r.switchTo(s.view)
	}
	return nil
}

// switchTo changes the active view. Entering the quiz view while the quiz
// is not active starts it over.
func (r *Router) switchTo(v View) error {
	if v == ViewQuiz && r.view != ViewQuiz && !r.quiz.Active() {
		if err := r.quiz.Restart(); err != nil {
			return err
		}
	}
	r.view = v
	return nil
}

func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '0'), true
}
