package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently played runs",
	Long: `List recent runs, newest first. This is a play log, not a ranking.

Examples:
  blockfall history
  blockfall history --plain --limit 5
  blockfall history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	return printHistory(store, flagLimit)
}

func printHistory(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to record the first run!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %-10s  %s\n", "Date", "Lines", "Pieces", "Time", "End", "Via")
	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "------", "----", "---", "---")

	for _, r := range runs {
		fmt.Printf("  %-16s  %-6d  %-6d  %-8s  %-10s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Lines, r.Pieces,
			r.Duration.Round(time.Second).String(),
			strings.ReplaceAll(r.EndReason, "_", " "),
			r.Frontend,
		)
	}

	summary, err := store.Summary()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d runs, %d lines, %d pieces\n", summary.Runs, summary.TotalLines, summary.TotalPieces)
		if !summary.LastPlayed.IsZero() {
			fmt.Printf("Last played: %s\n", summary.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
