package rank

import (
	"go.uber.org/zap"

	"harshagw/searchrank/internal/score"
)

// Ranker validates input before ranking and logs through its config's
// logger. The zero value is not usable; call New.
type Ranker struct {
	cfg    Config
	logger *zap.Logger
	lev    *score.Levenshtein
}

// New creates a Ranker. A nil cfg.Logger disables logging.
func New(cfg Config) *Ranker {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{
		cfg:    cfg,
		logger: logger,
		lev:    score.NewLevenshtein(logger),
	}
}

// Rank validates its input and returns Rank(query, candidates).
func (r *Ranker) Rank(query string, candidates []string) ([]string, error) {
	if err := Validate(query, candidates); err != nil {
		return nil, err
	}

	ranked := Rank(query, candidates)
	r.logger.Debug("ranked candidates",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)))
	return ranked, nil
}

// Hybrid runs HybridTop with the configured Top.
func (r *Ranker) Hybrid(query string, candidates []string) ([]Match, error) {
	return r.HybridTop(query, candidates, r.cfg.Top)
}

// Distance returns the traced edit distance between query and candidate.
func (r *Ranker) Distance(query, candidate string) int {
	return r.lev.Distance(query, candidate)
}
