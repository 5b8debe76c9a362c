package study

import (
	"fmt"

	"github.com/phrazzld/studysnap/internal/domain"
)

func makeCards(n int) []domain.Flashcard {
	cards := make([]domain.Flashcard, n)
	for i := range cards {
		cards[i] = domain.Flashcard{Question: fmt.Sprintf("Q%d", i+1), Answer: fmt.Sprintf("A%d", i+1)}
	}
	return cards
}

// makeQuestions returns n questions whose correct option is always 0.
func makeQuestions(n int) []domain.QuizQuestion {
	qs := make([]domain.QuizQuestion, n)
	for i := range qs {
		qs[i] = domain.QuizQuestion{
			Question:      fmt.Sprintf("MCQ%d", i+1),
			Options:       []string{"right", "wrong1", "wrong2", "wrong3"},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("explanation %d", i+1),
		}
	}
	return qs
}

func makeSet(cards, questions int) *domain.StudySet {
	return &domain.StudySet{Flashcards: makeCards(cards), Quiz: makeQuestions(questions)}
}
