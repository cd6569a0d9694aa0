// Package sanitize cleans free-text request parameters before they reach
// the storage layer.
package sanitize

import (
	"regexp"
	"strings"
)

var specialChars = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)

// Options controls String's behavior. The zero value only trims.
type Options struct {
	Lowercase          bool
	RemoveSpecialChars bool
	MaxLength          int
}

// String trims the value and applies the requested transformations.
func String(value string, opts Options) string {
	s := strings.TrimSpace(value)

	if opts.Lowercase {
		s = strings.ToLower(s)
	}

	if opts.RemoveSpecialChars {
		s = specialChars.ReplaceAllString(s, "")
	}

	if opts.MaxLength > 0 {
		runes := []rune(s)
		if len(runes) > opts.MaxLength {
			s = string(runes[:opts.MaxLength])
		}
	}

	return s
}
