// Package redact removes credentials and other sensitive fragments from
// strings before they are logged. Upstream model providers echo request
// URLs, keys and local paths in their error text; none of that may reach the
// logs verbatim or an HTTP response at all.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order: specific key shapes first so that the generic
// "key=..." rule does not leave half a token behind.
var rules = []rule{
	// Google API keys, as used by Gemini.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},
	// OpenAI-style secret keys (sk-..., sk-proj-...).
	{regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{16,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), "Bearer " + RedactedCredentialPlaceholder},
	// key=... in query strings and "api key: ..." in prose.
	{
		regexp.MustCompile(`(?i)\b(api[_-]?key|key|token|secret|password)(\s*[:=]\s*['"]?)[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}${2}" + RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(?i)(https?)://[^\s/@]+@`), "${1}://" + RedactedCredentialPlaceholder + "@"},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},
	// Local file paths. URL paths are left alone by requiring a leading
	// space, quote or start of input.
	{regexp.MustCompile(`(^|[\s'"(])(/[\w.-]+){2,}`), "${1}" + RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
