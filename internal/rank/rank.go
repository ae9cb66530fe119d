// Package rank orders candidate strings by their relevance to a query.
package rank

import (
	"harshagw/searchrank/internal/score"
)

// ScoredCandidate pairs a candidate with the score it received.
type ScoredCandidate struct {
	Score float32
	Text  string
}

// Rank returns candidates ordered by score.Substring against query, highest
// first. Candidates with equal scores keep their input order, so a query
// matching nothing returns candidates unchanged. The input slice is not
// modified.
//
// query and every candidate must be non-empty; use Validate to check.
func Rank(query string, candidates []string) []string {
	scored := RankScored(query, candidates, score.Substring)

	texts := make([]string, len(scored))
	for i, sc := range scored {
		texts[i] = sc.Text
	}
	return texts
}

// RankScored scores every candidate with fn and returns them sorted by
// score in descending order. Ties keep their input order.
func RankScored(query string, candidates []string, fn score.Func) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i, c := range candidates {
		scored[i] = ScoredCandidate{
			Score: fn(query, c),
			Text:  c,
		}
	}

	sortByScore(scored)
	return scored
}
