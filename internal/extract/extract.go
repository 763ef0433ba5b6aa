// Package extract selects parts of a parsed value using JSONPath.
package extract

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

var (
	// ErrInvalidPath indicates a malformed JSONPath expression.
	ErrInvalidPath = errors.New("invalid JSONPath")

	// ErrNotFound indicates the path selected nothing.
	ErrNotFound = errors.New("path not found")
)

// Path selects the first match of pathExpr in value. Supports standard
// JSONPath syntax (e.g., "$.user.name", "$..items[0]").
func Path(value any, pathExpr string) (any, error) {
	if pathExpr == "" {
		return nil, fmt.Errorf("%w: expression is empty", ErrInvalidPath)
	}

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, pathExpr, err)
	}

	results := path.Select(value)
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, pathExpr)
	}

	return results[0], nil
}

// PathAll selects every match of pathExpr in value.
func PathAll(value any, pathExpr string) ([]any, error) {
	if pathExpr == "" {
		return nil, fmt.Errorf("%w: expression is empty", ErrInvalidPath)
	}

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, pathExpr, err)
	}

	results := path.Select(value)
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, pathExpr)
	}

	return results, nil
}
