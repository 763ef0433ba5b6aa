// Package casing provides string case conversion helpers.
package casing

import (
	"strings"
	"unicode"
)

// Camelize converts snake_case or kebab-case into camelCase.
func Camelize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upperNext := false
	for i, r := range s {
		if r == '_' || r == '-' {
			upperNext = true
			continue
		}
		switch {
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		case i == 0:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Underscore converts camelCase into snake_case.
func Underscore(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Title capitalizes the first rune of every whitespace-separated word.
func Title(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = Capitalize(word)
	}
	return strings.Join(words, " ")
}
