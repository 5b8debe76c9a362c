// Package openai implements generation.Generator against any OpenAI-compatible
// chat completions endpoint (OpenAI itself, or a local server exposing the
// same API through llm.openai_base_url).
package openai
