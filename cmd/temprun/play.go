package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkositsyn/temprun/internal/audio"
	"github.com/mkositsyn/temprun/internal/config"
	"github.com/mkositsyn/temprun/internal/core"
	"github.com/mkositsyn/temprun/internal/gesture"
	"github.com/mkositsyn/temprun/internal/platform/tui"
	"github.com/mkositsyn/temprun/internal/storage"
)

var (
	flagConfig   string
	flagNoAudio  bool
	flagGestures bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/W/Up - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  M          - Toggle audio
  G          - Toggle gesture input
  Q/Ctrl+C   - Quit

With gesture input enabled, F simulates a fist (jump), I an index finger
(crouch) and O an open palm (idle).

Examples:
  temprun play
  temprun play --gestures
  temprun play --no-audio --seed 42
  temprun play --config ./my-runner.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects and music")
	playCmd.Flags().BoolVar(&flagGestures, "gestures", false, "Start with gesture input enabled")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "temprun",
	})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagNoAudio {
		gameCfg.Audio.Enabled = false
	}
	if flagGestures {
		gameCfg.Gesture.Enabled = true
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sounds := audio.NewOrNop(gameCfg.Audio, logger)
	defer sounds.Close()

	ctrl := gesture.Probe(nil,
		gameCfg.Gesture.HistorySize,
		gameCfg.Gesture.MinConfidence,
		time.Duration(gameCfg.Gesture.Cooldown*float64(time.Second)),
		logger,
	)
	defer ctrl.Close()

	runErr := tui.Run(tui.Options{
		Config:  &gameCfg,
		Runtime: runtime,
		Store:   store,
		Sounds:  sounds,
		Gesture: ctrl,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
