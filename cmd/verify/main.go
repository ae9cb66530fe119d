package main

import (
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"harshagw/searchrank/internal/rank"
	"harshagw/searchrank/internal/score"
)

// TestCase is a named check that reports a failure message or "".
type TestCase struct {
	Name  string
	Check func() string
}

// Category groups related test cases.
type Category struct {
	Name  string
	Cases []TestCase
}

const (
	randomRounds = 500
	seed         = 42
)

func main() {
	fmt.Println("Search Rank Verification")
	fmt.Println("========================")
	fmt.Println()

	passed := 0
	failed := 0

	for _, category := range getTestCategories() {
		fmt.Printf("\n%s\n", category.Name)
		fmt.Println(strings.Repeat("-", len(category.Name)))

		for _, tc := range category.Cases {
			if runTestCase(tc) {
				passed++
			} else {
				failed++
			}
		}
	}

	// Summary
	fmt.Println()
	fmt.Println("========================================")
	fmt.Printf("Results: %d passed, %d failed, %d total\n", passed, failed, passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
	fmt.Println("\nAll tests passed!")
}

func runTestCase(tc TestCase) bool {
	if msg := tc.Check(); msg != "" {
		fmt.Printf("  ✗ %s\n", tc.Name)
		fmt.Printf("    %s\n", msg)
		return false
	}
	fmt.Printf("  ✓ %s\n", tc.Name)
	return true
}

func expectRank(query string, candidates, expected []string) func() string {
	return func() string {
		got := rank.Rank(query, candidates)
		if !slices.Equal(got, expected) {
			return fmt.Sprintf("Expected: %v\n    Got:      %v", expected, got)
		}
		return ""
	}
}

func expectDistance(a, b string, expected int) func() string {
	return func() string {
		if got := score.EditDistance(a, b); got != expected {
			return fmt.Sprintf("Expected: %d, Got: %d", expected, got)
		}
		return ""
	}
}

func expectJaccard(a, b string, expected float32) func() string {
	return func() string {
		if got := score.Jaccard(a, b); got != expected {
			return fmt.Sprintf("Expected: %f, Got: %f", expected, got)
		}
		return ""
	}
}

func getTestCategories() []Category {
	return []Category{
		{
			Name: "Ranking",
			Cases: []TestCase{
				{
					Name:  `rank("berlin", [])`,
					Check: expectRank("berlin", []string{}, []string{}),
				},
				{
					Name: "no match keeps input order",
					Check: expectRank("berlin",
						[]string{"washington", "london", "chicago", "rio", "moscow", "mumbai", "tokyo"},
						[]string{"washington", "london", "chicago", "rio", "moscow", "mumbai", "tokyo"}),
				},
				{
					Name: "prefix > containment > miss",
					Check: expectRank("berlin",
						[]string{"berlino", "mo-berlin", "potsdam", "berlin wannsee", "berlin", "weder", "alt berlin"},
						[]string{"berlin", "berlino", "berlin wannsee", "mo-berlin", "alt berlin", "potsdam", "weder"}),
				},
				{
					Name:  fmt.Sprintf("random permutations (%d rounds)", randomRounds),
					Check: checkRandomPermutations,
				},
			},
		},
		{
			Name: "Jaccard",
			Cases: []TestCase{
				{Name: `jaccard("hello", "hello")`, Check: expectJaccard("hello", "hello", 1)},
				{Name: `jaccard("hello", "hell")`, Check: expectJaccard("hello", "hell", 0.75)},
				{Name: `jaccard("", "hello")`, Check: expectJaccard("", "hello", 0)},
				{Name: `jaccard("hello", "")`, Check: expectJaccard("hello", "", 0)},
				{Name: "symmetry", Check: checkJaccardSymmetry},
			},
		},
		{
			Name: "Levenshtein",
			Cases: []TestCase{
				{Name: `distance("berlin", "berlino")`, Check: expectDistance("berlin", "berlino", 1)},
				{Name: `distance("hello", "world")`, Check: expectDistance("hello", "world", 4)},
				{Name: `distance("kITTen", "sitting")`, Check: expectDistance("kITTen", "sitting", 3)},
				{Name: `distance("café", "caffè")`, Check: expectDistance("café", "caffè", 2)},
				{Name: `distance("", "test")`, Check: expectDistance("", "test", 4)},
				{Name: `distance("test", "")`, Check: expectDistance("test", "", 4)},
				{Name: "symmetry", Check: checkDistanceSymmetry},
			},
		},
	}
}

// checkRandomPermutations ranks random candidate lists and checks that every
// input position is returned exactly once.
func checkRandomPermutations() string {
	rng := rand.New(rand.NewSource(seed))

	for round := 0; round < randomRounds; round++ {
		query := randomWord(rng, 1+rng.Intn(3))
		candidates := make([]string, rng.Intn(40))
		for i := range candidates {
			candidates[i] = randomWord(rng, 1+rng.Intn(8))
		}

		if msg := checkPermutation(candidates, rank.Rank(query, candidates)); msg != "" {
			return fmt.Sprintf("round %d, query %q: %s", round, query, msg)
		}
	}
	return ""
}

// checkPermutation maps every ranked text back to an unused input position.
// Duplicate texts claim positions in input order.
func checkPermutation(candidates, ranked []string) string {
	if len(ranked) != len(candidates) {
		return fmt.Sprintf("length %d, want %d", len(ranked), len(candidates))
	}

	positions := make(map[string]*roaring.Bitmap)
	for i, c := range candidates {
		if positions[c] == nil {
			positions[c] = roaring.New()
		}
		positions[c].Add(uint32(i))
	}

	claimed := roaring.New()
	for _, text := range ranked {
		free := positions[text]
		if free == nil || free.IsEmpty() {
			return fmt.Sprintf("unexpected candidate %q", text)
		}
		pos := free.Minimum()
		free.Remove(pos)
		claimed.Add(pos)
	}

	if claimed.GetCardinality() != uint64(len(candidates)) {
		return fmt.Sprintf("%d of %d positions returned", claimed.GetCardinality(), len(candidates))
	}
	return ""
}

func checkJaccardSymmetry() string {
	words := []string{"hello", "hell", "berlin", "berlino", "café", "tokyo", "kyoto"}
	for _, a := range words {
		for _, b := range words {
			if score.Jaccard(a, b) != score.Jaccard(b, a) {
				return fmt.Sprintf("jaccard(%q, %q) != jaccard(%q, %q)", a, b, b, a)
			}
		}
	}
	return ""
}

func checkDistanceSymmetry() string {
	words := []string{"hello", "World", "berlin", "Berlino", "café", "caffè", "kitten", "sitting"}
	for _, a := range words {
		for _, b := range words {
			if score.EditDistance(a, b) != score.EditDistance(b, a) {
				return fmt.Sprintf("distance(%q, %q) != distance(%q, %q)", a, b, b, a)
			}
		}
	}
	return ""
}

func randomWord(rng *rand.Rand, n int) string {
	const alphabet = "abc"
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return sb.String()
}
