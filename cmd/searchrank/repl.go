package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"harshagw/searchrank/internal/rank"
	"harshagw/searchrank/internal/score"
)

type REPL struct {
	ranker     *rank.Ranker
	candidates []string
}

var commands = []prompt.Suggest{
	{Text: "add", Description: "Add a candidate"},
	{Text: "list", Description: "List candidates"},
	{Text: "clear", Description: "Remove all candidates"},
	{Text: "rank", Description: "Rank candidates against a query"},
	{Text: "hybrid", Description: "Top candidates by character similarity"},
	{Text: "help", Description: "Show help"},
	{Text: "quit", Description: "Exit"},
}

func runREPL(ranker *rank.Ranker) {
	fmt.Println("Search Rank REPL")
	fmt.Println()
	printHelp()
	fmt.Println()

	r := &REPL{ranker: ranker}
	p := prompt.New(
		r.executor,
		r.completer,
		prompt.OptionPrefix("searchrank >> "),
		prompt.OptionTitle("searchrank"),
	)
	p.Run()
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  add <candidate>              - Add a candidate (rest of line, spaces allowed)")
	fmt.Println("  list                         - List candidates in insertion order")
	fmt.Println("  clear                        - Remove all candidates")
	fmt.Println("  rank <query>                 - Rank candidates by prefix/substring match")
	fmt.Println("  hybrid [--top=N] <query>     - Top N candidates by Jaccard similarity")
	fmt.Println("  help                         - Show this help")
	fmt.Println("  quit                         - Exit")
}

func (r *REPL) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "add":
		r.cmdAdd(rest)
	case "list":
		r.cmdList()
	case "clear":
		r.candidates = nil
		fmt.Println("Cleared")
	case "rank":
		r.cmdRank(rest)
	case "hybrid":
		r.cmdHybrid(rest)
	case "help":
		printHelp()
	case "quit", "exit":
		fmt.Println("Goodbye!")
		os.Exit(0)
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
	}
}

func (r *REPL) cmdAdd(candidate string) {
	if candidate == "" {
		fmt.Println("Usage: add <candidate>")
		return
	}
	r.candidates = append(r.candidates, candidate)
	fmt.Printf("Added %q (%d candidates)\n", candidate, len(r.candidates))
}

func (r *REPL) cmdList() {
	if len(r.candidates) == 0 {
		fmt.Println("No candidates")
		return
	}
	for i, c := range r.candidates {
		fmt.Printf("  %d. %s\n", i+1, c)
	}
}

func (r *REPL) cmdRank(query string) {
	ranked, err := r.ranker.Rank(query, r.candidates)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printRanked(query, ranked)
}

func (r *REPL) cmdHybrid(args string) {
	top := rank.DefaultConfig().Top
	if strings.HasPrefix(args, "--top=") {
		flag, rest, _ := strings.Cut(args, " ")
		n, err := strconv.Atoi(strings.TrimPrefix(flag, "--top="))
		if err != nil {
			fmt.Printf("Invalid --top: %v\n", err)
			return
		}
		top = n
		args = strings.TrimSpace(rest)
	}

	matches, err := r.ranker.HybridTop(args, r.candidates, top)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printMatches(matches)
}

// completer suggests commands for the first word and, after rank or hybrid,
// the stored candidates that contain the word being typed, best match first.
func (r *REPL) completer(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	if !strings.Contains(text, " ") {
		return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
	}

	cmd, _, _ := strings.Cut(text, " ")
	word := d.GetWordBeforeCursor()
	if (cmd != "rank" && cmd != "hybrid") || word == "" || len(r.candidates) == 0 {
		return nil
	}

	var suggestions []prompt.Suggest
	for _, sc := range rank.RankScored(word, r.candidates, score.Substring) {
		if sc.Score == score.NoMatch {
			break
		}
		suggestions = append(suggestions, prompt.Suggest{
			Text:        sc.Text,
			Description: fmt.Sprintf("score %.2f", sc.Score),
		})
	}
	return suggestions
}
