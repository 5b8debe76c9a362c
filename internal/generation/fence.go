package generation

import "strings"

const codeFence = "```"

// StripCodeFences removes markdown code-fence markup surrounding raw model
// output, e.g. "```json\n{...}\n```" or "```\n{...}\n```". A closing fence
// without an opening one is removed as well.
func StripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, codeFence) {
		return strings.TrimSpace(strings.TrimSuffix(content, codeFence))
	}

	content = content[len(codeFence):]

	// Drop the optional language tag ("json", "JSON", ...).
	if nl := strings.IndexAny(content, "\r\n"); nl >= 0 && isLanguageTag(content[:nl]) {
		content = content[nl:]
	} else if len(content) >= 4 && strings.EqualFold(content[:4], "json") {
		content = content[4:]
	}

	if end := strings.LastIndex(content, codeFence); end >= 0 {
		content = content[:end]
	}

	return strings.TrimSpace(content)
}

func isLanguageTag(s string) bool {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}
