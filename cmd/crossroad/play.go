package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/crossroad-arcade/crossroad/internal/core"
	"github.com/crossroad-arcade/crossroad/internal/games/crossing"
	"github.com/crossroad-arcade/crossroad/internal/platform/tui"
	"github.com/crossroad-arcade/crossroad/internal/registry"
	"github.com/crossroad-arcade/crossroad/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Crossroad.

Controls:
  Arrows/WASD - Move the frog
  P           - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Examples:
  crossroad play
  crossroad play --fps 30
  crossroad play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom theme config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossroad",
	})

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	crossing.SetConfigPath(flagConfig)

	game, err := registry.Create("crossing")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, playing without score history", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
