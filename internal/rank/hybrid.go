package rank

import (
	"fmt"

	"go.uber.org/zap"

	"harshagw/searchrank/internal/score"
)

// Match is a hybrid search hit.
type Match struct {
	Text       string
	Similarity float32 // Jaccard index against the query
	Distance   int     // edit distance to the query
}

// Hybrid keeps the top candidates by Jaccard similarity to query, ties in
// input order, and reports each kept candidate's edit distance. Results stay
// in similarity order; the distance does not re-sort them. top larger than
// the candidate count keeps everything.
func Hybrid(query string, candidates []string, top int) ([]Match, error) {
	return New(DefaultConfig()).HybridTop(query, candidates, top)
}

// HybridTexts is Hybrid without similarity and distance.
func HybridTexts(query string, candidates []string, top int) ([]string, error) {
	matches, err := Hybrid(query, candidates, top)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = m.Text
	}
	return texts, nil
}

// HybridTop validates its input and runs a hybrid search keeping top
// candidates.
func (r *Ranker) HybridTop(query string, candidates []string, top int) ([]Match, error) {
	if err := Validate(query, candidates); err != nil {
		return nil, err
	}
	if top < 0 {
		return nil, fmt.Errorf("hybrid top %d: %w", top, ErrNegativeTop)
	}

	scored := RankScored(query, candidates, score.Jaccard)
	scored = scored[:min(top, len(scored))]

	matches := make([]Match, len(scored))
	for i, sc := range scored {
		matches[i] = Match{
			Text:       sc.Text,
			Similarity: sc.Score,
			Distance:   r.lev.Distance(query, sc.Text),
		}
	}

	r.logger.Debug("hybrid search",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)),
		zap.Int("kept", len(matches)))
	return matches, nil
}
