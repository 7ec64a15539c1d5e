package core

import (
	"reflect"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		key      string
		expected Direction
		ok       bool
	}{
		{"up", DirUp, true},
		{"ArrowUp", DirUp, true},
		{"down", DirDown, true},
		{"ArrowLeft", DirLeft, true},
		{"right", DirRight, true},
		{" ", DirNone, false},
		{"w", DirNone, false},
		{"", DirNone, false},
	}

	for _, tc := range tests {
		got, ok := ParseDirection(tc.key)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseDirection(%q) = (%v, %v), expected (%v, %v)", tc.key, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestInputStateDownUp(t *testing.T) {
	in := NewInputState()

	if in.IsHeld(DirUp) {
		t.Fatal("new input state should hold nothing")
	}

	in.OnKeyDown(DirUp)
	in.OnKeyDown(DirUp) // repeat is idempotent
	in.OnKeyDown(DirRight)

	if !in.IsHeld(DirUp) || !in.IsHeld(DirRight) {
		t.Error("Up and Right should be held")
	}
	if in.Len() != 2 {
		t.Errorf("Len() = %d, expected 2 (a key is recorded at most once)", in.Len())
	}

	in.OnKeyUp(DirUp)
	if in.IsHeld(DirUp) {
		t.Error("Up should be released")
	}

	// Releasing a key that is not held is a no-op
	in.OnKeyUp(DirLeft)
	if in.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", in.Len())
	}
}

func TestInputStateIgnoresUnknown(t *testing.T) {
	in := NewInputState()
	in.OnKeyDown(DirNone)
	in.OnKeyDown(Direction(42))

	if in.Len() != 0 {
		t.Errorf("unrecognised directions should be ignored, Len() = %d", in.Len())
	}
}

func TestInputStateHeldOrder(t *testing.T) {
	in := NewInputState()
	in.OnKeyDown(DirRight)
	in.OnKeyDown(DirUp)
	in.OnKeyDown(DirLeft)

	expected := []Direction{DirUp, DirLeft, DirRight}
	if got := in.Held(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Held() = %v, expected %v", got, expected)
	}

	in.Clear()
	if in.Len() != 0 {
		t.Error("Clear() should release every key")
	}
}

func TestInputStateZeroValue(t *testing.T) {
	var in InputState
	in.OnKeyDown(DirDown)
	if !in.IsHeld(DirDown) {
		t.Error("zero-value InputState should be usable")
	}

	var nilState *InputState
	if nilState.IsHeld(DirDown) {
		t.Error("nil InputState should hold nothing")
	}
}
