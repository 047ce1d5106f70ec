package util

import (
	"regexp"
	"strings"
)

var rgxDigits = regexp.MustCompile(`\d+`)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// TrailingNumericID extracts a numeric identifier from the last path
// segment of a resource URL, e.g. ".../signals/42/attachments/7/" -> "7".
func TrailingNumericID(rawURL string) (string, bool) {
	parts := strings.Split(rawURL, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" {
			continue
		}
		if rgxDigits.MatchString(parts[i]) && parts[i] == rgxDigits.FindString(parts[i]) {
			return parts[i], true
		}
		return "", false
	}
	return "", false
}

// LastNumericToken returns the last run of digits in a display string,
// e.g. "Attachment object (317)" -> "317". Fallback for responses that
// carry no stable identifier field.
func LastNumericToken(display string) (string, bool) {
	matches := rgxDigits.FindAllString(display, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1], true
}

// ContainsFold reports whether substr occurs in s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
