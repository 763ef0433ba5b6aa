// Package jsonmend parses "almost JSON": text with unquoted object keys,
// single-quoted strings, stray whitespace, or mixed delimiter styles.
//
// Input that already decodes strictly is returned as a standard decoder
// would return it. Anything else goes through a single repair pass —
// tokenize, rewrite tokens into strict grammar, decode the candidate —
// and failures after that pass are surfaced. The repair is best effort,
// not a general error-tolerant parser: there is no comment support and
// no second repair attempt.
package jsonmend

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jacoelho/jsonmend/internal/correct"
	"github.com/jacoelho/jsonmend/internal/token"
)

var (
	// ErrEmptyInput indicates input with no content to parse.
	ErrEmptyInput = errors.New("empty input")

	// ErrRepairFailed indicates the repaired candidate text is still not
	// valid JSON.
	ErrRepairFailed = errors.New("repair failed")

	// ErrInvalidToken indicates a token that fits neither the key nor the
	// value grammar during repair.
	ErrInvalidToken = correct.ErrInvalidToken
)

// Parse decodes input into a value tree (map[string]any, []any, string,
// float64, bool, or nil). A strict decode is attempted first; on failure
// the repair pass runs and the candidate text is decoded strictly. The
// first strict failure is never surfaced.
func Parse(input string) (any, error) {
	var value any
	if err := Decode(input, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// Decode is Parse into a caller-supplied destination, following
// encoding/json unmarshaling rules.
func Decode(input string, v any) error {
	if input == "" {
		return ErrEmptyInput
	}

	if err := json.Unmarshal([]byte(input), v); err == nil {
		return nil
	}

	candidate, err := repair(input)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return fmt.Errorf("%w: %v", ErrRepairFailed, err)
	}
	return nil
}

// Repair returns strict JSON text for input. Valid input is returned
// unchanged; otherwise the candidate produced by the repair pass is
// validated and returned.
func Repair(input string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}

	if json.Valid([]byte(input)) {
		return input, nil
	}

	candidate, err := repair(input)
	if err != nil {
		return "", err
	}

	if !json.Valid([]byte(candidate)) {
		return "", fmt.Errorf("%w: candidate %q is not valid JSON", ErrRepairFailed, candidate)
	}
	return candidate, nil
}

// repair runs the tokenize and correct phases. Data flow is strictly
// linear; a failure here is final.
func repair(input string) (string, error) {
	return correct.Correct(token.Tokenize(input))
}
