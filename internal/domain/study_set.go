package domain

// OptionCount is the number of answer options every quiz question carries.
const OptionCount = 4

// Flashcard is a single question/answer pair. It has no identity beyond its
// position in the deck that contains it.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizQuestion is a multiple-choice question with exactly OptionCount
// options. CorrectAnswer indexes Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// IsCorrect reports whether index selects the correct option.
func (q QuizQuestion) IsCorrect(index int) bool {
	return index == q.CorrectAnswer
}

// StudySet is the validated output of one generation request.
type StudySet struct {
	Flashcards []Flashcard    `json:"flashcards"`
	Quiz       []QuizQuestion `json:"quiz"`
}
