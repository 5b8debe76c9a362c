package study

import "github.com/phrazzld/studysnap/internal/domain"

// DeckState is the complete state of a flashcard deck session.
type DeckState struct {
	Cards    []domain.Flashcard
	Cursor   int
	Revealed bool
}

// DeckView is the read-only presentation of the current card.
type DeckView struct {
	Question     string
	Answer       string
	Position     int // 1-based
	Total        int
	Revealed     bool
	CanGoBack    bool
	CanGoForward bool
}

// DeckController navigates a fixed deck of flashcards. The zero value holds
// no deck; every move on it is a no-op.
type DeckController struct {
	state DeckState
}

// NewDeckController returns an empty controller.
func NewDeckController() *DeckController {
	return &DeckController{}
}

// Reset replaces the deck and returns to the first card, answer hidden.
func (d *DeckController) Reset(cards []domain.Flashcard) error {
	if len(cards) == 0 {
		return ErrEmptyDeck
	}
	d.state = DeckState{Cards: append([]domain.Flashcard(nil), cards...)}
	return nil
}

// Clear discards the deck.
func (d *DeckController) Clear() {
	d.state = DeckState{}
}

// Loaded reports whether a deck is present.
func (d *DeckController) Loaded() bool {
	return len(d.state.Cards) > 0
}

// Next moves to the following card. At the last card it does nothing and
// returns false.
func (d *DeckController) Next() bool {
	if d.state.Cursor >= len(d.state.Cards)-1 {
		return false
	}
	d.state.Cursor++
	d.state.Revealed = false
	return true
}

// Previous moves to the preceding card. At the first card it does nothing
// and returns false.
func (d *DeckController) Previous() bool {
	if d.state.Cursor <= 0 {
		return false
	}
	d.state.Cursor--
	d.state.Revealed = false
	return true
}

// Flip toggles whether the answer is shown. It returns false without a deck.
func (d *DeckController) Flip() bool {
	if !d.Loaded() {
		return false
	}
	d.state.Revealed = !d.state.Revealed
	return true
}

// State returns a copy of the current state.
func (d *DeckController) State() DeckState {
	s := d.state
	s.Cards = append([]domain.Flashcard(nil), d.state.Cards...)
	return s
}

// View derives the presentation of the current card.
func (d *DeckController) View() DeckView {
	n := len(d.state.Cards)
	if n == 0 {
		return DeckView{}
	}
	card := d.state.Cards[d.state.Cursor]
	return DeckView{
		Question:     card.Question,
		Answer:       card.Answer,
		Position:     d.state.Cursor + 1,
		Total:        n,
		Revealed:     d.state.Revealed,
		CanGoBack:    d.state.Cursor > 0,
		CanGoForward: d.state.Cursor < n-1,
	}
}
