package messages

import (
	"strings"
	"unicode"
)

// parseCommand splits "/cmd args" at the first whitespace rune.
// Text without a leading slash is returned whole as the argument.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	idx := strings.IndexFunc(text, unicode.IsSpace)
	if idx < 0 {
		return text, ""
	}
	return text[:idx], strings.TrimSpace(text[idx:])
}
