package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"harshagw/searchrank/internal/rank"
	"harshagw/searchrank/internal/score"
)

func main() {
	app := &cli.App{
		Name:  "searchrank",
		Usage: "rank candidate strings against a search term",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug traces to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "rank",
				Usage:     "order candidates by prefix/substring relevance",
				ArgsUsage: "<query> <candidate>...",
				Action:    cmdRank,
			},
			{
				Name:      "hybrid",
				Usage:     "keep the candidates most similar by character set",
				ArgsUsage: "<query> <candidate>...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Value: rank.DefaultConfig().Top,
						Usage: "number of candidates to keep",
					},
				},
				Action: cmdHybrid,
			},
			{
				Name:      "jaccard",
				Usage:     "character-set Jaccard index of two strings",
				ArgsUsage: "<a> <b>",
				Action:    cmdJaccard,
			},
			{
				Name:      "distance",
				Usage:     "case-insensitive Levenshtein distance of two strings",
				ArgsUsage: "<a> <b>",
				Action:    cmdDistance,
			},
			{
				Name:   "repl",
				Usage:  "interactive session over a candidate list",
				Action: cmdREPL,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRanker builds a ranker whose logger honours --verbose.
func newRanker(c *cli.Context, top int) (*rank.Ranker, error) {
	cfg := rank.DefaultConfig()
	cfg.Top = top

	if c.Bool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		cfg.Logger = logger
	}
	return rank.New(cfg), nil
}

func cmdRank(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: searchrank rank <query> <candidate>...", 2)
	}

	r, err := newRanker(c, rank.DefaultConfig().Top)
	if err != nil {
		return err
	}

	ranked, err := r.Rank(c.Args().First(), c.Args().Tail())
	if err != nil {
		return err
	}
	printRanked(c.Args().First(), ranked)
	return nil
}

func cmdHybrid(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: searchrank hybrid [--top=N] <query> <candidate>...", 2)
	}

	r, err := newRanker(c, c.Int("top"))
	if err != nil {
		return err
	}

	matches, err := r.Hybrid(c.Args().First(), c.Args().Tail())
	if err != nil {
		return err
	}
	printMatches(matches)
	return nil
}

func cmdJaccard(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("Usage: searchrank jaccard <a> <b>", 2)
	}
	fmt.Printf("%.4f\n", score.Jaccard(c.Args().Get(0), c.Args().Get(1)))
	return nil
}

func cmdDistance(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("Usage: searchrank distance <a> <b>", 2)
	}

	r, err := newRanker(c, rank.DefaultConfig().Top)
	if err != nil {
		return err
	}
	fmt.Println(r.Distance(c.Args().Get(0), c.Args().Get(1)))
	return nil
}

func cmdREPL(c *cli.Context) error {
	r, err := newRanker(c, rank.DefaultConfig().Top)
	if err != nil {
		return err
	}
	runREPL(r)
	return nil
}

func printRanked(query string, ranked []string) {
	for i, text := range ranked {
		fmt.Printf("  %d. %-30s (score: %.4f)\n", i+1, text, score.Substring(query, text))
	}
}

func printMatches(matches []rank.Match) {
	for i, m := range matches {
		fmt.Printf("  %d. %-30s (jaccard: %.4f, distance: %d)\n", i+1, m.Text, m.Similarity, m.Distance)
	}
}
