package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfighter/internal/platform/tui"
	"github.com/vovakirdan/skyfighter/internal/session"
	"github.com/vovakirdan/skyfighter/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best runs recorded in the history database.
In a terminal an interactive table is shown; use --plain for text output.

Examples:
  skyfighter scores
  skyfighter scores --limit 20 --plain`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, flagLimit, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Skyfighter - Best Runs")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'skyfighter play' to set the first record!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-12s  %-9s  %s\n", "Rank", "Kills", "Reached", "Outcome", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-12s  %-9s  %s\n", "----", "-----", "-------", "-------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-12s  %-9s  %s\n", i+1, r.Kills, r.Level, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(session.OutcomeWon)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Wins: %d  Best: %d\n", stats.Runs, stats.Wins, stats.BestKills)
	}
	return nil
}
