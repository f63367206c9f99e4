// racer is a terminal viewer for lane-based racing scenes.
//
// Usage:
//
//	racer list                    - List scenarios and display backends
//	racer watch <scenario>        - Play a scenario
//	racer menu                    - Pick a scenario interactively
//	racer serve                   - Serve the picker over SSH
//	racer capture <scenario>      - Record frames into the capture archive
//	racer verify <scenario>       - Re-render a recorded run and compare
//	racer captures                - Browse recorded runs
//
// Global flags:
//
//	--config <path>      - Configuration file (default: search ~/.racer, ./configs)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-racer/internal/config"
	"github.com/vovakirdan/term-racer/internal/scenario"

	// Import front ends to register them
	_ "github.com/vovakirdan/term-racer/internal/platform/tcellui"
	_ "github.com/vovakirdan/term-racer/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Set by the root command before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Term Racer - watch lane racing scenes in your terminal",
	Long: `Term Racer draws lane-based racing scenes with text characters and
terminal colors: traffic, obstacles, weather, split screen and more.

Available commands:
  list      - Show scenarios and display backends
  watch     - Play a scenario directly
  menu      - Interactive scenario picker
  serve     - Start SSH server for remote viewing
  capture   - Record rendered frames
  verify    - Check a recorded run against fresh renders
  captures  - Browse recorded runs

Examples:
  racer list
  racer watch highway
  racer watch split --backend tcell
  racer serve
  racer capture city --frames 120 --size 100x40
  racer verify city`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to racer.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(capturesCmd)
}

// setup loads the configuration and builds the root logger.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer",
		Level:           level,
	})

	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"backend", cfg.Display.Backend,
		"tick_rate", cfg.Display.TickRate,
		"scenarios", cfg.Scenarios.Dir,
	)
	return nil
}

// loadScenarios returns the built-ins plus the configured scenario directory.
func loadScenarios() ([]scenario.Scenario, error) {
	return scenario.Catalog(cfg.Scenarios.Dir)
}

// findScenario resolves a scenario ID against the catalog.
func findScenario(id string) (scenario.Scenario, error) {
	list, err := loadScenarios()
	if err != nil {
		return scenario.Scenario{}, err
	}
	return scenario.Find(list, id)
}
