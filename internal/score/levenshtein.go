package score

import (
	"strings"

	"go.uber.org/zap"
)

// Levenshtein computes case-insensitive edit distances and traces its
// operands at debug level.
type Levenshtein struct {
	logger *zap.Logger
}

// NewLevenshtein returns a Levenshtein scorer. A nil logger disables tracing.
func NewLevenshtein(logger *zap.Logger) *Levenshtein {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Levenshtein{logger: logger}
}

var untraced = NewLevenshtein(nil)

// EditDistance returns the Levenshtein distance between the lowercased
// query and candidate without tracing.
func EditDistance(query, candidate string) int {
	return untraced.Distance(query, candidate)
}

// Distance returns the minimum number of single-rune insertions, deletions
// and substitutions turning query into candidate, after lowercasing both.
// Lengths are rune counts, so multi-byte text is measured per character.
func (l *Levenshtein) Distance(query, candidate string) int {
	q := []rune(strings.ToLower(query))
	c := []rune(strings.ToLower(candidate))

	l.logger.Debug("levenshtein operands",
		zap.String("query", string(q)),
		zap.String("candidate", string(c)))

	if len(q) == 0 {
		return len(c)
	}
	if len(c) == 0 {
		return len(q)
	}
	if string(q) == string(c) {
		return 0
	}

	// row[i] holds the distance between q[:i] and the candidate prefix
	// processed so far.
	row := make([]int, len(q)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(c); j++ {
		diagonal := row[0]
		row[0] = j

		for i := 1; i <= len(q); i++ {
			above := row[i]
			if q[i-1] == c[j-1] {
				row[i] = diagonal
			} else {
				row[i] = min(diagonal, above, row[i-1]) + 1
			}
			diagonal = above
		}
	}

	return row[len(q)]
}
