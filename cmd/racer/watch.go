package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-racer/internal/registry"
)

var flagBackend string

var watchCmd = &cobra.Command{
	Use:   "watch <scenario>",
	Short: "Play a scenario",
	Long: `Play the specified scenario in the terminal.

Controls:
  Left/Right, A/D  - Move player 1 across lanes
  J/L              - Move player 2 across lanes
  + / -            - Playback speed
  P                - Pause
  M                - Back to the scenario picker
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Examples:
  racer watch highway
  racer watch tunnel-night --backend tcell`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend (default from config)")
	menuCmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend (default from config)")
}

func runWatch(_ *cobra.Command, args []string) error {
	// Fail before the terminal switches to the alternate screen
	if _, err := findScenario(args[0]); err != nil {
		return err
	}
	return runBackend(args[0])
}

// runBackend starts the selected front end until the user quits or the
// process is interrupted.
func runBackend(start string) error {
	name := flagBackend
	if name == "" {
		name = cfg.Display.Backend
	}
	backend, err := registry.Get(name)
	if err != nil {
		return err
	}

	scenarios, err := loadScenarios()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting backend", "backend", backend.Name, "start", start)
	return backend.Run(ctx, registry.RunOptions{
		Scenarios:     scenarios,
		Start:         start,
		TickInterval:  cfg.Display.TickInterval(),
		ScreenshotDir: cfg.Display.ScreenshotDir,
		Logger:        logger,
	})
}
