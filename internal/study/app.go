package study

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/phrazzld/studysnap/internal/generation"
)

// Phase is the top-level state of the application.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseLoading
	PhaseResults
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseLoading:
		return "loading"
	case PhaseResults:
		return "results"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Ticket identifies one generation request. A response is applied only if
// its ticket is still current.
type Ticket struct {
	nonce uint64
}

// InputStatus describes the source text as typed so far.
type InputStatus struct {
	Chars       int
	CanGenerate bool
}

// App coordinates generation requests with the deck and quiz controllers.
// It is safe for concurrent use; a response completing on another goroutine
// is checked against the current nonce under the same lock that reset uses.
type App struct {
	mu        sync.Mutex
	phase     Phase
	nonce     uint64
	errMsg    string
	sessionID string
	set       *domain.StudySet

	deck   *DeckController
	quiz   *QuizController
	router *Router
	log    *slog.Logger
}

// NewApp returns an App in the input phase.
func NewApp(log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	deck := NewDeckController()
	quiz := NewQuizController()
	return &App{
		deck:   deck,
		quiz:   quiz,
		router: NewRouter(deck, quiz, log),
		log:    log,
	}
}

// CheckInput reports the trimmed length of text and whether it is enough to
// generate from.
func CheckInput(text string) InputStatus {
	return InputStatus{
		Chars:       domain.SourceLength(text),
		CanGenerate: domain.HasEnoughSource(text),
	}
}

// Begin starts a generation request. Only one request may be in flight.
func (a *App) Begin() (Ticket, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase == PhaseLoading {
		return Ticket{}, ErrGenerationPending
	}
	a.nonce++
	a.phase = PhaseLoading
	a.errMsg = ""
	return Ticket{nonce: a.nonce}, nil
}

// Complete applies the outcome of the request identified by t. It returns
// false and changes nothing when t is stale.
func (a *App) Complete(t Ticket, set *domain.StudySet, err error) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t.nonce != a.nonce || a.phase != PhaseLoading {
		a.log.Debug("discarding stale generation result",
			slog.Uint64("ticket", t.nonce),
			slog.Uint64("current", a.nonce))
		return false
	}

	if err == nil && set == nil {
		err = domain.ErrEmptyContent
	}
	if err == nil {
		err = a.load(set)
	}
	if err != nil {
		a.clearLocked()
		a.phase = PhaseError
		a.errMsg = err.Error()
		return true
	}

	a.phase = PhaseResults
	return true
}

func (a *App) load(set *domain.StudySet) error {
	if err := a.deck.Reset(set.Flashcards); err != nil {
		return err
	}
	if err := a.quiz.Reset(set.Quiz); err != nil {
		a.deck.Clear()
		return err
	}
	a.router.ResetView()
	a.set = set
	a.sessionID = uuid.NewString()
	a.log.Info("study set loaded",
		slog.String("session_id", a.sessionID),
		slog.Int("flashcards", len(set.Flashcards)),
		slog.Int("quiz_questions", len(set.Quiz)))
	return nil
}

// Reset returns to the input phase. Any pending response becomes stale.
func (a *App) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nonce++
	a.clearLocked()
	a.phase = PhaseInput
	a.errMsg = ""
}

func (a *App) clearLocked() {
	a.deck.Clear()
	a.quiz.Clear()
	a.router.ResetView()
	a.set = nil
	a.sessionID = ""
}

// Generate runs one request against gen and applies its result. It reports
// whether the result was applied; a result superseded by Reset is dropped.
func (a *App) Generate(ctx context.Context, gen generation.Generator, text string) (bool, error) {
	ticket, err := a.Begin()
	if err != nil {
		return false, err
	}
	set, genErr := gen.Generate(ctx, text)
	return a.Complete(ticket, set, genErr), nil
}

// Dispatch routes a user event while results are shown.
func (a *App) Dispatch(ctx context.Context, ev Event) Action {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase != PhaseResults {
		return ActionNone
	}
	return a.router.Dispatch(ctx, ev)
}

// Phase returns the current phase.
func (a *App) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// ErrorMessage returns the message of the last failed request.
func (a *App) ErrorMessage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}

// SessionID identifies the loaded study set, or is empty.
func (a *App) SessionID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionID
}

// StudySet returns the loaded set, or nil.
func (a *App) StudySet() *domain.StudySet {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.set
}

// ActiveView returns the view the router is on.
func (a *App) ActiveView() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.router.View()
}

// DeckView returns the current flashcard presentation.
func (a *App) DeckView() DeckView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deck.View()
}

// QuizView returns the current quiz presentation.
func (a *App) QuizView() QuizView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quiz.View()
}
