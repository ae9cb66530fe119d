package rank

import "go.uber.org/zap"

// Config holds settings for a Ranker.
type Config struct {
	// Top is the number of candidates Hybrid keeps.
	Top    int
	Logger *zap.Logger
}

// DefaultConfig returns a config that keeps ten hybrid results and does not
// log.
func DefaultConfig() Config {
	return Config{
		Top:    10,
		Logger: zap.NewNop(),
	}
}
