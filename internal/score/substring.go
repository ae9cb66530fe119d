package score

import "strings"

// Substring scores candidate by how it contains query.
//
// A prefix match scores 1 + len(query)/len(candidate), a match anywhere else
// scores len(query)/len(candidate) and a miss scores NoMatch. Prefix matches
// therefore always outrank containment matches, and shorter candidates
// outrank longer ones within the same class. Matching is case-sensitive and
// lengths are in bytes. candidate must be non-empty.
func Substring(query, candidate string) float32 {
	density := float32(len(query)) / float32(len(candidate))

	if strings.HasPrefix(candidate, query) {
		return 1 + density
	}
	if strings.Contains(candidate, query) {
		return density
	}
	return NoMatch
}
