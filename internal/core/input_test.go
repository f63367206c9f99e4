package core

import "testing"

func TestMapKey(t *testing.T) {
	tests := []struct {
		key      string
		expected InputState
	}{
		{"left", InputState{P1: PlayerInput{Left: true}}},
		{"a", InputState{P1: PlayerInput{Left: true}}},
		{"A", InputState{P1: PlayerInput{Left: true}}},
		{"right", InputState{P1: PlayerInput{Right: true}}},
		{"D", InputState{P1: PlayerInput{Right: true}}},
		{"up", InputState{P1: PlayerInput{Accel: true}}},
		{"w", InputState{P1: PlayerInput{Accel: true}}},
		{"down", InputState{P1: PlayerInput{Brake: true}}},
		{"S", InputState{P1: PlayerInput{Brake: true}}},
		{" ", InputState{P1: PlayerInput{Boost: true}}},
		{"j", InputState{P2: PlayerInput{Left: true}}},
		{"L", InputState{P2: PlayerInput{Right: true}}},
		{"i", InputState{P2: PlayerInput{Accel: true}}},
		{"K", InputState{P2: PlayerInput{Brake: true}}},
		{"u", InputState{P2: PlayerInput{Boost: true}}},
		{"q", InputState{Quit: true}},
		{"Q", InputState{Quit: true}},
		{"esc", InputState{Quit: true}},
		{"p", InputState{Pause: true}},
		{"M", InputState{Menu: true}},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := MapKey(tc.key); got != tc.expected {
				t.Errorf("MapKey(%q) = %+v, expected %+v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestMapKeyUnknown(t *testing.T) {
	for _, key := range []string{"", "x", "enter", "ctrl+c", "f1", "7"} {
		if got := MapKey(key); !got.Empty() {
			t.Errorf("MapKey(%q) should leave all flags false, got %+v", key, got)
		}
	}
}
