package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-racer/internal/capture"
	"github.com/vovakirdan/term-racer/internal/storage"
)

var flagRunID string

var verifyCmd = &cobra.Command{
	Use:   "verify <scenario>",
	Short: "Check a recorded run against fresh renders",
	Long: `Re-render every frame of a recorded run and compare digests. Exits with
status 1 when any frame differs.

By default the newest run of the scenario is checked.

Examples:
  racer verify highway
  racer verify highway --run 0c7f5b1e-...`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&flagRunID, "run", "", "Run ID to verify (default: newest run)")
}

func runVerify(_ *cobra.Command, args []string) error {
	sc, err := findScenario(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var stored []storage.Capture
	if flagRunID != "" {
		stored, err = store.Run(flagRunID)
	} else {
		stored, err = store.LatestRun(sc.ID)
	}
	if errors.Is(err, storage.ErrNoRun) {
		return fmt.Errorf("no recorded run for %s; run 'racer capture %s' first", sc.ID, sc.ID)
	}
	if err != nil {
		return err
	}
	if stored[0].Scenario != sc.ID {
		return fmt.Errorf("run %s belongs to scenario %s, not %s", stored[0].RunID, stored[0].Scenario, sc.ID)
	}

	mismatches, err := capture.Verify(&sc, stored)
	if err != nil {
		return err
	}

	runID := stored[0].RunID
	if len(mismatches) == 0 {
		fmt.Printf("OK: %d frames of run %s match\n", len(stored), runID)
		return nil
	}

	fmt.Printf("Run %s: %d of %d frames differ\n", runID, len(mismatches), len(stored))
	fmt.Println()
	fmt.Printf("  %-6s  %-12s  %s\n", "Tick", "Stored", "Rendered")
	fmt.Printf("  %-6s  %-12s  %s\n", "----", "------", "--------")
	for _, m := range mismatches {
		fmt.Printf("  %-6d  %-12.12s  %.12s\n", m.Frame, m.Want, m.Got)
	}
	return fmt.Errorf("%d frames differ", len(mismatches))
}
