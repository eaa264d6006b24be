package validation_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"red-remodels-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Run("Should trim and collapse whitespace runs", func(t *testing.T) {
		assert.Equal(t, "Jane Doe", validation.Sanitize("  Jane\t\n  Doe  "))
	})

	t.Run("Should collapse newlines inside messages", func(t *testing.T) {
		assert.Equal(t, "line one line two", validation.Sanitize("line one\n\nline two"))
	})

	t.Run("Should cap at the maximum field length", func(t *testing.T) {
		long := strings.Repeat("a", validation.MaxFieldLength+500)
		assert.Len(t, validation.Sanitize(long), validation.MaxFieldLength)
	})

	t.Run("Should count the cap in characters, not bytes", func(t *testing.T) {
		// 1001 characters but 2001 bytes: under the cap, so untouched.
		in := "a" + strings.Repeat("é", 1000)
		assert.Equal(t, in, validation.Sanitize(in))
	})

	t.Run("Should never split a multi-byte rune at the cap", func(t *testing.T) {
		long := strings.Repeat("é", validation.MaxFieldLength+5)
		out := validation.Sanitize(long)
		assert.True(t, utf8.ValidString(out))
		assert.Equal(t, validation.MaxFieldLength, utf8.RuneCountInString(out))
	})

	t.Run("Should return empty for whitespace-only input", func(t *testing.T) {
		assert.Equal(t, "", validation.Sanitize(" \t\r\n "))
	})
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co.uk",
		"  jane@example.com  ", // sanitized before matching
	}
	for _, email := range valid {
		assert.True(t, validation.IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"jane",
		"jane@example", // no dot in domain
		"@example.com",
		"jane@",
		"jane doe@example.com",
		"jane@@example.com",
	}
	for _, email := range invalid {
		assert.False(t, validation.IsValidEmail(email), email)
	}
}
