package core

import "sort"

// Direction identifies one of the four directional keys the runner reacts to.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Valid reports whether d is one of the four recognised directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection maps a host key name to a direction.
// Both terminal names ("up") and browser-style names ("ArrowUp") are accepted.
// Returns false for any other key.
func ParseDirection(key string) (Direction, bool) {
	switch key {
	case "up", "ArrowUp":
		return DirUp, true
	case "down", "ArrowDown":
		return DirDown, true
	case "left", "ArrowLeft":
		return DirLeft, true
	case "right", "ArrowRight":
		return DirRight, true
	}
	return DirNone, false
}

// InputState tracks which directional keys are currently held.
// It is mutated only by key-down/key-up signals from the host.
type InputState struct {
	held map[Direction]bool
}

// NewInputState creates an input state with no keys held.
func NewInputState() *InputState {
	return &InputState{held: make(map[Direction]bool, 4)}
}

// OnKeyDown records d as held. Repeats and unrecognised values are ignored.
func (s *InputState) OnKeyDown(d Direction) {
	if !d.Valid() {
		return
	}
	if s.held == nil {
		s.held = make(map[Direction]bool, 4)
	}
	s.held[d] = true
}

// OnKeyUp removes d from the held set. No-op if d is not held.
func (s *InputState) OnKeyUp(d Direction) {
	delete(s.held, d)
}

// IsHeld returns true if d is currently held.
func (s *InputState) IsHeld(d Direction) bool {
	if s == nil {
		return false
	}
	return s.held[d]
}

// Held returns the held directions in a stable order.
func (s *InputState) Held() []Direction {
	out := make([]Direction, 0, len(s.held))
	for d := range s.held {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of held directions.
func (s *InputState) Len() int {
	return len(s.held)
}

// Clear releases every held key.
func (s *InputState) Clear() {
	for d := range s.held {
		delete(s.held, d)
	}
}
