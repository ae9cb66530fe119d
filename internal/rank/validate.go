package rank

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQuery     = errors.New("query is empty")
	ErrEmptyCandidate = errors.New("candidate is empty")
	ErrNegativeTop    = errors.New("top must not be negative")
)

// Validate reports whether query and candidates satisfy the preconditions of
// Rank and the scorers. An empty candidate list is valid.
func Validate(query string, candidates []string) error {
	if query == "" {
		return ErrEmptyQuery
	}
	for i, c := range candidates {
		if c == "" {
			return fmt.Errorf("candidate %d: %w", i, ErrEmptyCandidate)
		}
	}
	return nil
}
