package study

import (
	"math"

	"github.com/phrazzld/studysnap/internal/domain"
)

// QuizStatus is the lifecycle state of a quiz session.
type QuizStatus int

const (
	// QuizInProgress means the current question awaits an answer.
	QuizInProgress QuizStatus = iota
	// QuizAwaitingAdvance means the current question has been answered.
	QuizAwaitingAdvance
	// QuizCompleted means every question has been answered and the user
	// advanced past the last one, or asked for the result.
	QuizCompleted
)

func (s QuizStatus) String() string {
	switch s {
	case QuizInProgress:
		return "in_progress"
	case QuizAwaitingAdvance:
		return "awaiting_advance"
	case QuizCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// unanswered marks an answer slot that has not been filled.
const unanswered = -1

// QuizSessionState is the complete state of a quiz session. Answers holds
// the selected option per question, or -1.
type QuizSessionState struct {
	Questions []domain.QuizQuestion
	Cursor    int
	Answers   []int
	Score     int
	Status    QuizStatus
}

// Feedback describes the outcome of answering one question.
type Feedback struct {
	Selected     int
	CorrectIndex int
	Correct      bool
	Explanation  string
}

// QuizResult is the final score of a session.
type QuizResult struct {
	Score      int
	Total      int
	Percentage int
}

// OptionVerdict is the presentation state of a single option.
type OptionVerdict int

const (
	VerdictNone OptionVerdict = iota
	VerdictCorrect
	VerdictIncorrect
)

// QuizView is the read-only presentation of the current question.
type QuizView struct {
	Question   string
	Options    []string
	Verdicts   []OptionVerdict
	Position   int // 1-based
	Total      int
	Score      int
	Status     QuizStatus
	Answered   bool
	Feedback   *Feedback
	Result     *QuizResult
	Progress   float64
	CanAdvance bool
	CanFinish  bool
}

// QuizController runs a multiple-choice quiz. Illegal operations return an
// error wrapping ErrInvalidOperation and leave the state untouched.
type QuizController struct {
	state QuizSessionState
}

// NewQuizController returns an empty controller.
func NewQuizController() *QuizController {
	return &QuizController{}
}

// Reset starts a new session over questions.
func (q *QuizController) Reset(questions []domain.QuizQuestion) error {
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = unanswered
	}
	q.state = QuizSessionState{
		Questions: append([]domain.QuizQuestion(nil), questions...),
		Answers:   answers,
		Status:    QuizInProgress,
	}
	return nil
}

// Restart starts the same quiz over.
func (q *QuizController) Restart() error {
	if !q.Loaded() {
		return ErrInvalidOperation
	}
	return q.Reset(q.state.Questions)
}

// Clear discards the session.
func (q *QuizController) Clear() {
	q.state = QuizSessionState{}
}

// Loaded reports whether a session is present.
func (q *QuizController) Loaded() bool {
	return len(q.state.Questions) > 0
}

// Active reports whether a session is present and not yet completed.
func (q *QuizController) Active() bool {
	return q.Loaded() && q.state.Status != QuizCompleted
}

// CurrentAnswered reports whether the question under the cursor has an answer.
func (q *QuizController) CurrentAnswered() bool {
	if !q.Loaded() {
		return false
	}
	return q.state.Answers[q.state.Cursor] != unanswered
}

// SelectOption answers the current question. Each question can be answered
// once; the score increases at most once per question.
func (q *QuizController) SelectOption(index int) (Feedback, error) {
	if index < 0 || index >= domain.OptionCount {
		return Feedback{}, ErrOptionOutOfRange
	}
	if !q.Loaded() || q.state.Status != QuizInProgress || q.CurrentAnswered() {
		return Feedback{}, ErrInvalidOperation
	}

	question := q.state.Questions[q.state.Cursor]
	q.state.Answers[q.state.Cursor] = index
	correct := question.IsCorrect(index)
	if correct {
		q.state.Score++
	}
	q.state.Status = QuizAwaitingAdvance

	return Feedback{
		Selected:     index,
		CorrectIndex: question.CorrectAnswer,
		Correct:      correct,
		Explanation:  question.Explanation,
	}, nil
}

// Advance moves past the answered question. On the last question it
// completes the session.
func (q *QuizController) Advance() error {
	if q.state.Status != QuizAwaitingAdvance || !q.Loaded() {
		return ErrInvalidOperation
	}
	if q.onLastQuestion() {
		q.state.Status = QuizCompleted
		return nil
	}
	q.state.Cursor++
	q.state.Status = QuizInProgress
	return nil
}

// Finish completes the session and returns the result. It is legal once the
// last question is answered, and idempotent after completion.
func (q *QuizController) Finish() (QuizResult, error) {
	switch {
	case !q.Loaded():
		return QuizResult{}, ErrInvalidOperation
	case q.state.Status == QuizCompleted:
	case q.state.Status == QuizAwaitingAdvance && q.onLastQuestion():
		q.state.Status = QuizCompleted
	default:
		return QuizResult{}, ErrInvalidOperation
	}
	return q.result(), nil
}

// Progress is the fraction of the quiz behind the cursor, or 1 once completed.
func (q *QuizController) Progress() float64 {
	if !q.Loaded() {
		return 0
	}
	if q.state.Status == QuizCompleted {
		return 1
	}
	return float64(q.state.Cursor) / float64(len(q.state.Questions))
}

// State returns a copy of the current state.
func (q *QuizController) State() QuizSessionState {
	s := q.state
	s.Questions = append([]domain.QuizQuestion(nil), q.state.Questions...)
	s.Answers = append([]int(nil), q.state.Answers...)
	return s
}

// View derives the presentation of the current question.
func (q *QuizController) View() QuizView {
	if !q.Loaded() {
		return QuizView{}
	}
	question := q.state.Questions[q.state.Cursor]
	selected := q.state.Answers[q.state.Cursor]

	view := QuizView{
		Question: question.Question,
		Options:  append([]string(nil), question.Options...),
		Verdicts: make([]OptionVerdict, len(question.Options)),
		Position: q.state.Cursor + 1,
		Total:    len(q.state.Questions),
		Score:    q.state.Score,
		Status:   q.state.Status,
		Answered: selected != unanswered,
		Progress: q.Progress(),
	}

	if view.Answered {
		for i := range view.Verdicts {
			switch {
			case i == question.CorrectAnswer:
				view.Verdicts[i] = VerdictCorrect
			case i == selected:
				view.Verdicts[i] = VerdictIncorrect
			}
		}
		view.Feedback = &Feedback{
			Selected:     selected,
			CorrectIndex: question.CorrectAnswer,
			Correct:      question.IsCorrect(selected),
			Explanation:  question.Explanation,
		}
	}

	awaiting := q.state.Status == QuizAwaitingAdvance
	view.CanAdvance = awaiting && !q.onLastQuestion()
	view.CanFinish = awaiting && q.onLastQuestion()

	if q.state.Status == QuizCompleted {
		result := q.result()
		view.Result = &result
	}
	return view
}

func (q *QuizController) onLastQuestion() bool {
	return q.state.Cursor == len(q.state.Questions)-1
}

func (q *QuizController) result() QuizResult {
	total := len(q.state.Questions)
	return QuizResult{
		Score:      q.state.Score,
		Total:      total,
		Percentage: int(math.Round(100 * float64(q.state.Score) / float64(total))),
	}
}
