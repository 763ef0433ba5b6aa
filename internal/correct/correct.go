// Package correct rewrites an almost-JSON token sequence into candidate
// strict-JSON text.
//
// Context tracking is deliberately flat: expectations derive only from
// the most recently emitted structural token, never from a nesting
// stack. Deeply nested input relies on the permissive fallback that
// quotes identifier-shaped tokens regardless of context; do not replace
// this with a stack-based grammar.
package correct

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jacoelho/jsonmend/internal/token"
)

// ErrInvalidToken indicates a token that satisfies neither the key nor
// the value grammar.
var ErrInvalidToken = errors.New("invalid token")

func tokenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidToken, fmt.Sprintf(format, args...))
}

// context is the corrector's positional expectation after the last
// structural token.
type context int

const (
	expectNone context = iota
	expectKey
	expectValue
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	numberPattern     = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
)

// isQuoted reports whether text is an already-normalized string literal.
func isQuoted(text string) bool {
	return len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"'
}

// isLiteral reports whether text is one of the JSON keyword literals.
func isLiteral(text string) bool {
	switch text {
	case "true", "false", "null":
		return true
	default:
		return false
	}
}

// quoteKey rewrites a bare identifier as a double-quoted key. Embedded
// double quotes are stripped rather than escaped.
func quoteKey(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, "") + `"`
}

// Correct walks the token sequence once, rewrites each token into
// strict-JSON-compatible form, and returns the concatenated candidate
// text. It is a pure function of the token sequence and does not
// re-scan the original input.
//
// Every consumed token yields exactly one corrected token; a token that
// fits neither grammar aborts with ErrInvalidToken.
func Correct(tokens []token.Token) (string, error) {
	corrected := make([]string, 0, len(tokens))
	ctx := expectNone

	for i, current := range tokens {
		if current.Kind == token.KindStructural {
			corrected = append(corrected, current.Text)
			ctx = nextContext(current.Text, corrected)
			continue
		}

		rewritten, err := rewrite(current, ctx)
		if err != nil {
			return "", fmt.Errorf("token %d: %w", i, err)
		}
		corrected = append(corrected, rewritten)
	}

	return strings.Join(corrected, ""), nil
}

// nextContext derives the expectation from the structural token just
// appended to the corrected output. A comma re-derives intent from the
// token preceding it rather than from a nesting context.
func nextContext(structural string, corrected []string) context {
	switch structural {
	case "{":
		return expectKey
	case "[", ":":
		return expectValue
	case ",":
		// Two positions back from the comma itself, which is already the
		// last element of the corrected output.
		if len(corrected) >= 3 && corrected[len(corrected)-3] == "}" {
			return expectKey
		}
		return expectValue
	default: // } ]
		return expectNone
	}
}

// rewrite decides the replacement text for a non-structural token.
func rewrite(current token.Token, ctx context) (string, error) {
	text := current.Text
	quoted := current.Kind == token.KindString && isQuoted(text)

	if ctx == expectKey && (quoted || identifierPattern.MatchString(text)) {
		if quoted {
			return text, nil
		}
		return quoteKey(text), nil
	}

	if ctx == expectValue && (quoted || isLiteral(text) || numberPattern.MatchString(text)) {
		return text, nil
	}

	// Permissive fallback: quote identifier-shaped tokens as keys even
	// when the flat context disagrees. This is what lets sloppy nested
	// input survive the non-stack state tracking.
	if quoted {
		return text, nil
	}
	if identifierPattern.MatchString(text) {
		return quoteKey(text), nil
	}

	return "", tokenError("%q matches neither key nor value grammar", text)
}
