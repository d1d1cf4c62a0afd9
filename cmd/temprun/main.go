// temprun is a terminal endless runner in the Temple Run style.
//
// Usage:
//
//	temprun play             - Play in the current terminal
//	temprun scores           - Browse the run history
//	temprun serve            - Start SSH server for remote play
//	temprun web              - Serve the scores JSON API over HTTP
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.temprun/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "temprun",
	Short: "Temple Runner - an endless runner in your terminal",
	Long: `Temple Runner is a terminal endless runner: jump over rocks and fires,
collect coins, and survive as the temple speeds up around you.

Available commands:
  play     - Play in the current terminal
  scores   - Browse the run history
  serve    - Start SSH server for remote play
  web      - Serve the scores JSON API over HTTP

Examples:
  temprun play
  temprun play --gestures
  temprun scores
  temprun serve --ssh :2222
  temprun web --http :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.temprun/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}
