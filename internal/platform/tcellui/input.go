package tcellui

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-racer/internal/core"
)

// ErrInputClosed is returned by Poll once the screen has been finalized.
var ErrInputClosed = errors.New("tcellui: input closed")

// eventBuffer is the number of events read ahead of Poll.
const eventBuffer = 100

// Source reads keys from a tcell screen. It implements core.InputSource.
type Source struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

var _ core.InputSource = (*Source)(nil)

// NewSource starts reading events from screen. The reader stops when the
// screen is finalized or Close is called.
func NewSource(screen tcell.Screen) *Source {
	return newSource(screen, eventBuffer)
}

func newSource(screen tcell.Screen, buffer int) *Source {
	s := &Source{
		screen: screen,
		events: make(chan tcell.Event, buffer),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go s.pump()
	return s
}

func (s *Source) pump() {
	defer close(s.exited)
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close stops the reader. A reader blocked in PollEvent returns once the
// screen is finalized. Close is safe to call more than once.
func (s *Source) Close() {
	s.once.Do(func() { close(s.done) })
}

// PollKey waits up to timeout for the next event and returns the key name,
// or "" when the wait timed out or the event was not a key. Resize events
// resynchronize the screen.
func (s *Source) PollKey(timeout time.Duration) (string, error) {
	timer := time.NewTimer(max(timeout, 0))
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		if !ok {
			return "", ErrInputClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return KeyName(ev), nil
		case *tcell.EventResize:
			s.screen.Sync()
		}
		return "", nil

	case <-timer.C:
		return "", nil
	}
}

// Poll waits up to timeout for one key and maps it with the racing key
// table. A timeout returns an empty state and no error.
func (s *Source) Poll(timeout time.Duration) (core.InputState, error) {
	name, err := s.PollKey(timeout)
	if err != nil {
		return core.InputState{}, err
	}
	return core.MapKey(name), nil
}

// KeyName returns the Bubble Tea style name of a key event, so one key table
// serves both front ends.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	}
	return strings.ToLower(ev.Name())
}
