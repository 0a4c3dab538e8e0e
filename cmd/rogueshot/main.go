// rogueshot runs the Rogue Shot arena shooter in the terminal, headless for
// tuning, or over SSH.
//
// Usage:
//
//	rogueshot play               - Play in the terminal
//	rogueshot sim                - Run a headless match with an autopilot
//	rogueshot runs               - Show stored runs
//	rogueshot serve              - Start SSH server for remote play
//	rogueshot config dump        - Print the effective configuration
//	rogueshot config validate    - Check a configuration file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.rogueshot/runs.db)
//	--config <path>       - Load a custom configuration file
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rogue-shot/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rogueshot",
	Short: "Rogue Shot - a side-on arena shooter in your terminal",
	Long: `Rogue Shot pits you against a single enemy on a procedurally built
arena of static and moving platforms. Health packs drop from the sky;
the enemy will go for them too when it is hurt.

Available commands:
  play     - Play in the terminal
  sim      - Headless match with a scripted player, for tuning
  runs     - Show stored runs
  serve    - Start SSH server for remote play
  config   - Print or validate configuration

Examples:
  rogueshot play
  rogueshot play --difficulty hard --watch
  rogueshot sim --ticks 36000 --seed 42
  rogueshot runs --recent
  rogueshot serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rogueshot/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration file and applies the difficulty preset.
func loadConfig() (config.Config, config.DifficultyPreset, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, preset, "", err
	}
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, preset, source, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, source, nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}
