package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-racer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scenarios and display backends",
	Long:  `Shows the built-in scenarios, those found in the configured scenario directory, and the registered display backends.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	scenarios, err := loadScenarios()
	if err != nil {
		return err
	}

	fmt.Println("Scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, sc := range scenarios {
		maxIDLen = max(maxIDLen, len(sc.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")
	for _, sc := range scenarios {
		name := sc.Label()
		if sc.FilePath != "" {
			name += " (" + sc.FilePath + ")"
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, sc.ID, name)
	}

	fmt.Println()
	fmt.Println("Backends:")
	fmt.Println()
	for _, b := range registry.List() {
		marker := " "
		if b.Name == cfg.Display.Backend {
			marker = "*"
		}
		fmt.Printf(" %s %-10s  %s\n", marker, b.Name, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'racer watch <id>' to play a scenario.")
	return nil
}
