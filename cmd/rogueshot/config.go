package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rogue-shot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a match would use: the file found by the
usual search (or --config), with the --difficulty preset applied.

Search order:
  --config <path>
  ~/.rogueshot/config.yaml
  ./configs/rogueshot.yaml
  built-in defaults

Examples:
  rogueshot config dump > ~/.rogueshot/config.yaml
  rogueshot config dump --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigValidate,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg, _, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}

func runConfigValidate(_ *cobra.Command, args []string) {
	if _, err := config.LoadFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "%s is invalid:\n", args[0])
		// Validation joins every problem; print them one per line.
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				fmt.Fprintf(os.Stderr, "  - %v\n", e)
			}
		} else {
			fmt.Fprintf(os.Stderr, "  - %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("%s is valid\n", args[0])
}
