package core

import "time"

// PlayerInput holds the control flags for one player during one poll.
type PlayerInput struct {
	Left  bool
	Right bool
	Accel bool
	Brake bool
	Boost bool
}

// Any reports whether any flag is set.
func (p PlayerInput) Any() bool {
	return p.Left || p.Right || p.Accel || p.Brake || p.Boost
}

// InputState is the button state produced by one input poll.
// Every poll returns a fresh record: flags never carry over between calls.
type InputState struct {
	P1    PlayerInput
	P2    PlayerInput
	Quit  bool
	Pause bool
	Menu  bool
}

// Empty reports whether no flag is set.
func (s InputState) Empty() bool {
	return !s.P1.Any() && !s.P2.Any() && !s.Quit && !s.Pause && !s.Menu
}

// InputSource delivers keyboard state to a front end.
// Poll blocks for at most timeout, consumes at most one key event and returns
// a fully reset InputState; a timeout is not an error.
type InputSource interface {
	Poll(timeout time.Duration) (InputState, error)
}

// MapKey applies the literal key table to a single key name and returns the
// resulting state. Key names follow Bubble Tea's KeyMsg.String() form
// ("left", "esc", " ", "a", ...). Unrecognized keys leave every flag false.
func MapKey(key string) InputState {
	var s InputState

	switch key {
	// Player 1: arrows or WASD, space boosts
	case "left", "a", "A":
		s.P1.Left = true
	case "right", "d", "D":
		s.P1.Right = true
	case "up", "w", "W":
		s.P1.Accel = true
	case "down", "s", "S":
		s.P1.Brake = true
	case " ", "space":
		s.P1.Boost = true

	// Player 2: IJKL, U boosts
	case "j", "J":
		s.P2.Left = true
	case "l", "L":
		s.P2.Right = true
	case "i", "I":
		s.P2.Accel = true
	case "k", "K":
		s.P2.Brake = true
	case "u", "U":
		s.P2.Boost = true

	// System
	case "q", "Q", "esc":
		s.Quit = true
	case "p", "P":
		s.Pause = true
	case "m", "M":
		s.Menu = true
	}

	return s
}
