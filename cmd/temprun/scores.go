package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkositsyn/temprun/internal/platform/tui"
	"github.com/mkositsyn/temprun/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the run history",
	Long: `Open the interactive run history browser, or print the top 10 runs
with --plain.

Examples:
  temprun scores
  temprun scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print the top runs instead of the interactive browser")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Temple Runner - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'temprun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-8s  %s\n", "Rank", "Score", "Coins", "Length", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-8s  %s\n", "----", "-----", "-----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10d  %-7d  %-8s  %s\n",
			i+1, r.Score, r.Coins,
			fmt.Sprintf("%.0fs", r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.GetStats(); statsErr == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Total coins: %d   Runs: %d\n",
			stats.HighScore, stats.TotalCoins, stats.RunCount)
	}
}
