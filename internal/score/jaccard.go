package score

// Jaccard returns the Jaccard index of the distinct runes of a and b,
// |A∩B| / |A∪B|. Runes are compared case-sensitively. If either string is
// empty the result is 0.
func Jaccard(a, b string) float32 {
	if a == "" || b == "" {
		return 0
	}

	aRunes := runeSet(a)
	bRunes := make(map[rune]struct{}, len(b))
	var intersection int

	for _, r := range b {
		if _, seen := bRunes[r]; seen {
			continue
		}
		bRunes[r] = struct{}{}
		if _, ok := aRunes[r]; ok {
			intersection++
		}
	}

	union := len(aRunes) + len(bRunes) - intersection
	return float32(intersection) / float32(union)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
