package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-racer/internal/registry"
)

// BackendName is the registry name of the Bubble Tea front end.
const BackendName = "bubbletea"

func init() {
	registry.Register(registry.Backend{
		Name:  BackendName,
		Title: "Bubble Tea with lipgloss styling",
		Run:   Run,
	})
}

// Run shows the picker (or opts.Start directly) until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts registry.RunOptions) error {
	model := NewSessionModel(SessionOptions{
		Scenarios:     opts.Scenarios,
		Start:         opts.Start,
		TickInterval:  opts.TickInterval,
		ScreenshotDir: opts.ScreenshotDir,
		Width:         80,
		Height:        24, // replaced by the first WindowSizeMsg
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if opts.Logger != nil {
		opts.Logger.Debug("starting viewer", "backend", BackendName, "scenarios", len(opts.Scenarios))
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
