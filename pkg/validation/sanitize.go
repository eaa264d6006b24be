package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxFieldLength caps every free-text field after normalization.
const MaxFieldLength = 2000

// Regex patterns
var (
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Conservative email shape: a local part, an @, and a domain with a dot.
	// Deliberately stricter than RFC 5321 on the domain (dot required).
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Sanitize normalizes a free-text field: leading/trailing whitespace is
// trimmed, internal whitespace runs collapse to a single space, and the
// result is capped at MaxFieldLength characters.
func Sanitize(value string) string {
	value = whitespaceRegex.ReplaceAllString(strings.TrimSpace(value), " ")
	// The cap counts characters, not bytes: slicing bytes could split a
	// multi-byte rune and leak invalid UTF-8 into the composed email.
	if utf8.RuneCountInString(value) > MaxFieldLength {
		value = string([]rune(value)[:MaxFieldLength])
	}
	return value
}

// IsValidEmail reports whether the sanitized value looks like a
// deliverable address.
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(Sanitize(value))
}
