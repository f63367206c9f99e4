package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start interactive scenario picker",
	Long: `Opens a menu to pick a scenario. Press M while watching to come back
to the menu, Q to quit.

Examples:
  racer menu
  racer menu --backend tcell`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runBackend("")
	},
}
