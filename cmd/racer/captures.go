package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-racer/internal/platform/tui"
)

var (
	flagLimit  int
	flagDelete string
	flagPlain  bool
)

var capturesCmd = &cobra.Command{
	Use:   "captures",
	Short: "Browse recorded capture runs",
	Long: `List the runs in the capture database. On a terminal this opens an
interactive browser with a preview of every frame; otherwise a plain table
is printed.

Examples:
  racer captures
  racer captures --plain --limit 5
  racer captures --delete 0c7f5b1e-...`,
	Args: cobra.NoArgs,
	RunE: runCaptures,
}

func init() {
	capturesCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum runs to print in plain mode")
	capturesCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the run with this ID")
	capturesCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table even on a terminal")
}

func runCaptures(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagDelete != "" {
		if err := store.DeleteRun(flagDelete); err != nil {
			return err
		}
		fmt.Printf("Deleted run %s\n", flagDelete)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunCaptures(store, width, height)
	}

	runs, err := store.Runs(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No captures recorded yet.")
		fmt.Println()
		fmt.Println("Run 'racer capture <scenario>' to record one.")
		return nil
	}

	fmt.Printf("  %-36s  %-14s  %-6s  %-8s  %s\n", "Run", "Scenario", "Frames", "Size", "Date")
	fmt.Printf("  %-36s  %-14s  %-6s  %-8s  %s\n", "---", "--------", "------", "----", "----")
	for _, r := range runs {
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		fmt.Printf("  %-36s  %-14s  %-6d  %-8s  %s\n", r.RunID, r.Scenario, r.Frames, size, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
