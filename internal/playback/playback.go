// Package playback holds the state of a scenario being watched: the current
// tick, speed, pause flag and the lane overrides steered from the keyboard.
// Front ends feed it key input and draw whatever Snapshot returns.
package playback

import (
	"github.com/vovakirdan/term-racer/internal/core"
	"github.com/vovakirdan/term-racer/internal/render"
	"github.com/vovakirdan/term-racer/internal/scenario"
	"github.com/vovakirdan/term-racer/internal/snapshot"
)

// Speed bounds in ticks per frame.
const (
	MinSpeed = 1
	MaxSpeed = 8
)

// maxShift lets a driver cross the whole road from any scripted lane.
const maxShift = render.Lanes - 1

// Player plays one scenario. The zero value is not usable; call New.
type Player struct {
	scenario scenario.Scenario
	tick     int
	speed    int
	paused   bool
	shift    [2]int
}

// New starts sc at tick 0 and normal speed.
func New(sc scenario.Scenario) Player {
	return Player{scenario: sc, speed: MinSpeed}
}

// Advance moves playback forward one frame unless paused.
func (p *Player) Advance() {
	if !p.paused {
		p.tick += p.speed
	}
}

// Faster raises the speed by one step and returns the new speed.
func (p *Player) Faster() int {
	p.speed = min(p.speed+1, MaxSpeed)
	return p.speed
}

// Slower lowers the speed by one step and returns the new speed.
func (p *Player) Slower() int {
	p.speed = max(p.speed-1, MinSpeed)
	return p.speed
}

// TogglePause flips the pause flag and returns the new state.
func (p *Player) TogglePause() bool {
	p.paused = !p.paused
	return p.paused
}

// Steer moves each driver's lane override one lane per key press.
func (p *Player) Steer(in core.InputState) {
	p.steer(0, in.P1)
	p.steer(1, in.P2)
}

func (p *Player) steer(i int, in core.PlayerInput) {
	switch {
	case in.Left:
		p.shift[i]--
	case in.Right:
		p.shift[i]++
	default:
		return
	}
	p.shift[i] = core.Clamp(p.shift[i], -maxShift, maxShift)
}

// Snapshot returns the frame for the current tick with lane overrides
// applied.
func (p Player) Snapshot() snapshot.Snapshot {
	snap := p.scenario.At(p.tick)
	snap.Player.Lane = core.Clamp(snap.Player.Lane+p.shift[0], 0, render.Lanes-1)
	snap.Player2.Lane = core.Clamp(snap.Player2.Lane+p.shift[1], 0, render.Lanes-1)
	return snap
}

// Draw renders the current frame onto s, with the pause box when paused.
func (p Player) Draw(s render.Surface) error {
	snap := p.Snapshot()
	if p.paused {
		return render.RenderPaused(&snap, s)
	}
	return render.Render(&snap, s)
}

// Scenario returns the scenario being played.
func (p Player) Scenario() scenario.Scenario { return p.scenario }

// Tick returns the current scenario tick.
func (p Player) Tick() int { return p.tick }

// Speed returns the number of ticks advanced per frame.
func (p Player) Speed() int { return p.speed }

// Paused reports whether playback is paused.
func (p Player) Paused() bool { return p.paused }

// Shift returns the lane override of player 1 or 2.
func (p Player) Shift(player int) int {
	if player < 1 || player > 2 {
		return 0
	}
	return p.shift[player-1]
}
