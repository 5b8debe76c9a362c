// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating study sets from source text.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's domain logic to Google's external Gemini AI service.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Makes exactly one GenerateContent call per request, without retries
//   - Hands the raw model text to generation.ParseStudySet
//
// 2. Error Handling:
//   - Classifies upstream failures as invalid key, exhausted quota,
//     blocked content or a generic generation failure
//   - Logs upstream error text only after redaction
package gemini
