// Package score implements relevance and similarity measures between a
// query and a single candidate string.
package score

// Func scores one candidate against a query. Higher is more relevant.
type Func func(query, candidate string) float32

// NoMatch is the score Substring assigns to candidates that do not contain
// the query at all.
const NoMatch float32 = -1
