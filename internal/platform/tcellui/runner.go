package tcellui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-racer/internal/capture"
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/glyph"
	"github.com/vovakirdan/term-racer/internal/playback"
	"github.com/vovakirdan/term-racer/internal/registry"
	"github.com/vovakirdan/term-racer/internal/render"
	"github.com/vovakirdan/term-racer/internal/scenario"
)

// BackendName is the registry name of the tcell front end.
const BackendName = "tcell"

// defaultTickInterval is used when no interval is configured.
const defaultTickInterval = time.Second / 60

func init() {
	registry.Register(registry.Backend{
		Name:  BackendName,
		Title: "tcell direct cell drawing",
		Run:   Run,
	})
}

// Run opens the terminal and shows the picker (or opts.Start directly) until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, opts registry.RunOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot init screen: %w", err)
	}
	defer screen.Fini()

	r := newRunner(screen, opts)
	defer r.source.Close()
	return r.run(ctx)
}

// runner drives the picker and the viewer on one screen.
type runner struct {
	surface   *Surface
	source    *Source
	logger    *log.Logger
	scenarios []scenario.Scenario
	options   []string
	interval  time.Duration
	shotDir   string
	cursor    int
	player    *playback.Player // nil while the picker is shown
}

func newRunner(screen tcell.Screen, opts registry.RunOptions) *runner {
	r := &runner{
		surface:   NewSurface(screen),
		source:    NewSource(screen),
		logger:    opts.Logger,
		scenarios: opts.Scenarios,
		interval:  opts.TickInterval,
		shotDir:   opts.ScreenshotDir,
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if r.interval <= 0 {
		r.interval = defaultTickInterval
	}

	r.options = make([]string, len(opts.Scenarios))
	for i, sc := range opts.Scenarios {
		r.options[i] = sc.Label()
	}

	if opts.Start != "" {
		sc, err := scenario.Find(opts.Scenarios, opts.Start)
		if err != nil {
			r.logger.Warn("start scenario not found, showing picker", "err", err)
		} else {
			r.play(sc)
		}
	}
	return r
}

// run is the frame loop: draw, wait for a key until the next tick is due,
// then advance playback.
func (r *runner) run(ctx context.Context) error {
	next := time.Now().Add(r.interval)
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := r.draw(); err != nil {
			if !errors.Is(err, render.ErrSurfaceUnavailable) {
				return fmt.Errorf("tcellui: %w", err)
			}
			r.logger.Debug("frame skipped", "err", err)
		}

		name, err := r.source.PollKey(time.Until(next))
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if name != "" && r.handleKey(name) {
			return nil
		}

		if now := time.Now(); !now.Before(next) {
			if r.player != nil {
				r.player.Advance()
			}
			next = now.Add(r.interval)
		}
	}
}

func (r *runner) draw() error {
	if r.player != nil {
		return r.player.Draw(r.surface)
	}
	return render.RenderMenu(r.surface, glyph.MenuTitle, r.options, r.cursor)
}

func (r *runner) play(sc scenario.Scenario) {
	p := playback.New(sc)
	r.player = &p
	r.logger.Debug("playing scenario", "id", sc.ID)
}

// handleKey applies one key and reports whether to quit.
func (r *runner) handleKey(name string) bool {
	if name == "ctrl+c" {
		return true
	}
	if r.player == nil {
		return r.menuKey(name)
	}
	return r.viewerKey(name)
}

func (r *runner) menuKey(name string) bool {
	switch name {
	case "q", "Q", "esc":
		return true
	case "up", "w", "k":
		r.cursor = max(r.cursor-1, 0)
	case "down", "s", "j":
		r.cursor = max(min(r.cursor+1, len(r.scenarios)-1), 0)
	case "enter", " ":
		if len(r.scenarios) > 0 {
			r.play(r.scenarios[r.cursor])
		}
	}
	return false
}

func (r *runner) viewerKey(name string) bool {
	switch name {
	case "ctrl+s":
		r.screenshot()
		return false
	case "+", "=":
		r.player.Faster()
		return false
	case "-", "_":
		r.player.Slower()
		return false
	}

	in := core.MapKey(name)
	switch {
	case in.Quit:
		return true
	case in.Menu:
		r.player = nil
	case in.Pause:
		r.player.TogglePause()
	default:
		r.player.Steer(in)
	}
	return false
}

// screenshot renders the current frame off screen and saves it as text.
func (r *runner) screenshot() {
	w, h := r.surface.Size()
	buf := core.NewScreen(w, h)
	if err := r.player.Draw(buf); err != nil {
		r.logger.Error("screenshot failed", "err", err)
		return
	}

	sc := r.player.Scenario()
	path, err := capture.WriteScreenshot(r.shotDir, sc.ID, r.player.Tick(), buf)
	if err != nil {
		r.logger.Warn("screenshot not saved", "err", err)
		return
	}
	r.logger.Info("screenshot saved", "path", path)
}
