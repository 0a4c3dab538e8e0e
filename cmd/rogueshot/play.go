package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/platform/tui"
	"github.com/vovakirdan/rogue-shot/internal/storage"
)

var (
	flagWatch   bool
	flagLogFile string
	flagHold    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  A/D, Left/Right  - Move
  W/Up/Space       - Jump
  S/Down           - Fast fall
  Mouse            - Aim (click to fire)
  F                - Fire at the last aim point
  P/Esc            - Pause
  R                - New level
  ` + "`" + `                - Debug overlay
  H                - Spawn a health pack (debug only)
  Q/Ctrl+C         - Quit (the run is saved)

With --watch the config file is reloaded whenever it changes; the match
restarts with the same seed so tuning changes are easy to compare.

Examples:
  rogueshot play
  rogueshot play --difficulty easy
  rogueshot play --config ./configs/rogueshot.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write gameplay log to this file")
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a movement key stays held after each press")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err == nil {
			if f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				defer f.Close()
				logOut = f
			}
		}
	}
	logger, err := newLogger(logOut, "rogueshot")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config:     cfg,
		Difficulty: string(preset),
		Logger:     logger,
		HoldTicks:  flagHold,
	}

	if flagWatch {
		path := source
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file (use --config); running without reload")
		} else {
			w, werr := config.NewWatcher(path)
			if werr != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", werr)
			} else {
				defer w.Close()
				opts.Reloads = w.Events
				logger.Info("watching config", "path", w.Path())
			}
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	opts.Store = store

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
