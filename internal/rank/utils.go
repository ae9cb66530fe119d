package rank

import "slices"

// sortByScore sorts candidates by score in descending order, keeping the
// relative order of equal scores.
func sortByScore(scored []ScoredCandidate) {
	slices.SortStableFunc(scored, func(a, b ScoredCandidate) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})
}
