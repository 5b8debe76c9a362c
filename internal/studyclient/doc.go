// Package studyclient is the client side of the generation contract. It
// calls POST /api/generate on a StudySnap server, normalizes the raw reply
// (code fences are tolerated), validates it against the study set schema and
// reports every failure as a *GenerationError of a fixed kind.
package studyclient
