// Package study holds the interactive side of a study session: a flashcard
// deck controller, a quiz session controller, the input router that maps
// user events onto them, and App, which ties both to generation requests.
//
// Controllers own their state exclusively and expose it only through
// read-only views. An operation invoked outside its legal state returns
// ErrInvalidOperation and leaves the state untouched.
package study
