package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rogue-shot/internal/platform/tui"
	"github.com/vovakirdan/rogue-shot/internal/storage"
)

var (
	flagRecent      bool
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show stored runs",
	Long: `Display the best (or most recent) stored runs.

Examples:
  rogueshot runs
  rogueshot runs --recent --limit 20
  rogueshot runs -i
  rogueshot runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent runs instead of the best")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	runsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	view := tui.RunsTop
	if flagRecent {
		view = tui.RunsRecent
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRunsBrowser(store, view, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(view)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rogueshot play' or 'rogueshot sim --save' to record one!")
		return
	}

	header := []string{"#", "Score", "K/D", "Acc", "Time", "Diff", "Seed", "Date"}
	fmt.Printf("  %-4s %-7s %-7s %-5s %-7s %-7s %-20s %s\n", toAny(header)...)
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s %-7s %-7s %-5s %-7s %-7s %-20s %s\n", toAny(row)...)
	}

	fmt.Println()
	if sum, err := store.Summary(); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Total kills: %d\n",
			sum.Runs, sum.BestScore, sum.AvgScore, sum.TotalKills)
	}
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
