// Package domain contains the core study entities: flashcards, quiz
// questions and the study set that bundles them, together with the schema
// validation applied to untrusted model output before anything downstream
// may rely on it.
package domain
