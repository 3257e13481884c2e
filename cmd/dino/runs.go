package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagTop   bool
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show runs recorded in a journal",
	Long: `Display runs recorded in a journal file. The journal is in-memory unless
'dino play --journal <path>' was used, so this needs the same --journal path.

On a terminal the runs open in an interactive table; otherwise they are printed.

Examples:
  dino runs --journal ~/.dino/runs.db
  dino runs --journal ~/.dino/runs.db --top --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagTop, "top", false, "Order by score instead of recency")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runRuns(cmd *cobra.Command, args []string) error {
	if flagJournal == "" || flagJournal == storage.MemoryPath {
		return errors.New("runs needs a journal file: pass --journal <path>")
	}

	store, err := storage.Open(flagJournal)
	if err != nil {
		return fmt.Errorf("error opening journal: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("error clearing journal: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Journal cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.ShowRuns(context.Background(), store, width, height, tableOptions())
	}
	return printRuns(cmd.OutOrStdout(), store, flagTop, flagLimit)
}

// tableOptions carries --top and --limit into the interactive table.
func tableOptions() tui.RunsOptions {
	return tui.RunsOptions{Top: flagTop, Limit: flagLimit}
}

func printRuns(out io.Writer, store *storage.Store, top bool, limit int) error {
	var runs []storage.Run
	var err error
	if top {
		runs, err = store.TopRuns(limit)
	} else {
		runs, err = store.RecentRuns(limit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %-7s  %s\n", "Run", "Score", "Ticks", "Time", "Backend", "Ended")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %-7s  %s\n", "---", "-----", "-----", "----", "-------", "-----")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-8s  %-7s  %s\n",
			r.ID, r.Score, r.Ticks, r.Duration.Round(100*time.Millisecond), r.Backend, r.EndedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Best: %d  Avg: %.1f\n", stats.Runs, stats.BestScore, stats.AvgScore)
	}
	return nil
}
