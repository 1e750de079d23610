package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsPlain bool
	flagRunsClear bool
)

var errJournalDisabled = errors.New("journal disabled")

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Show recently finished runs: when they ended, how they ended, final
length, ticks survived and grid size.

On a terminal this opens an interactive browser; use --plain for text.

Examples:
  snake runs
  snake runs --plain --limit 20
  snake runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 50, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain table instead of the browser")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
}

func runRuns(cmd *cobra.Command, _ []string) {
	cfg, _ := loadConfig(cmd)

	store, err := openJournal(cfg)
	if errors.Is(err, errJournalDisabled) {
		fmt.Println("Run journal disabled.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run journal cleared.")
		return
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdout.Fd())
	if !flagRunsPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunRunsBrowser(runs, stats, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printRuns(runs, stats)
}

// openJournal opens the configured run journal, or returns
// errJournalDisabled when there is none.
func openJournal(cfg config.SnakeConfig) (*storage.Store, error) {
	if !cfg.Journal.Enabled || cfg.Journal.Path == "" {
		return nil, errJournalDisabled
	}
	return storage.Open(cfg.Journal.Path)
}

func printRuns(runs []storage.RunRecord, stats *storage.Stats) {
	fmt.Println("Run Journal")
	fmt.Println(tui.StatsLine(stats))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record the first run!")
		return
	}

	fmt.Printf("  %-16s  %-16s  %-8s  %6s  %6s  %s\n", "Ended", "Origin", "Cause", "Length", "Ticks", "Grid")
	fmt.Printf("  %-16s  %-16s  %-8s  %6s  %6s  %s\n", "-----", "------", "-----", "------", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-16s  %-8s  %6d  %6d  %dx%d\n",
			r.EndedAt.Format("2006-01-02 15:04"), r.Origin, r.Cause, r.Length, r.Ticks, r.GridW, r.GridH)
	}
}
