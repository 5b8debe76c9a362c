// Package generation provides the boundary between the application and the
// external AI/LLM services (Gemini, OpenAI-compatible endpoints) used for
// content generation. It defines the Generator interface, the prompt
// template shared by all providers, and the normalization of raw model
// output (code-fence stripping followed by schema validation) that turns
// free text into flashcards and quiz questions.
package generation
