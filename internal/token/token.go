// Package token converts almost-JSON text into an ordered token sequence.
//
// The tokenizer never rejects input: empty or garbage text simply yields
// a token sequence that a later phase will refuse. String literals are
// normalized to double-quoted form regardless of the quote character used
// in the input.
package token

import "strings"

// Kind classifies a token.
type Kind int

const (
	// KindBare is an unquoted run of characters: identifiers, numbers,
	// true/false/null, or any other unrecognized run.
	KindBare Kind = iota
	// KindString is a string literal, already normalized to double quotes.
	KindString
	// KindStructural is one of { } [ ] : ,
	KindStructural
)

// Token is the tokenizer's unit of output. Tokens are immutable once
// emitted.
type Token struct {
	Kind Kind
	Text string
}

// isStructural reports whether b is one of the JSON delimiter characters.
func isStructural(b byte) bool {
	switch b {
	case '{', '}', '[', ']', ':', ',':
		return true
	default:
		return false
	}
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// Tokenize scans input left to right and returns the ordered token
// sequence. The scan keeps one character of lookahead for escape
// handling; whitespace outside strings separates tokens and is discarded.
func Tokenize(input string) []Token {
	tokens := make([]Token, 0, len(input)/4)

	var (
		buf      strings.Builder
		inString bool
		escaped  bool
		quote    byte
	)

	flushBare := func() {
		if buf.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: KindBare, Text: buf.String()})
		buf.Reset()
	}

	for i := 0; i < len(input); i++ {
		current := input[i]

		if inString {
			switch {
			case escaped:
				escaped = false
				switch current {
				case '\'':
					// \' is not a legal JSON escape; the quote needs no
					// escaping once the string is double-quoted.
					buf.WriteByte('\'')
				default:
					buf.WriteByte('\\')
					buf.WriteByte(current)
				}
			case current == '\\':
				escaped = true
			case current == quote:
				buf.WriteByte('"')
				tokens = append(tokens, Token{Kind: KindString, Text: buf.String()})
				buf.Reset()
				inString = false
			case current == '"':
				// The other quote kind is ordinary text, but it must stay
				// escaped inside the normalized double-quoted literal.
				buf.WriteString(`\"`)
			default:
				buf.WriteByte(current)
			}
			continue
		}

		switch {
		case current == '"' || current == '\'':
			flushBare()
			inString = true
			quote = current
			buf.WriteByte('"')
		case isWhitespace(current):
			flushBare()
		case isStructural(current):
			flushBare()
			tokens = append(tokens, Token{Kind: KindStructural, Text: string(current)})
		default:
			buf.WriteByte(current)
		}
	}

	// An unterminated string flushes as whatever partial content remains;
	// failure is deferred to the final strict decode.
	if buf.Len() > 0 {
		kind := KindBare
		if inString {
			kind = KindString
		}
		tokens = append(tokens, Token{Kind: kind, Text: buf.String()})
	}

	return tokens
}
