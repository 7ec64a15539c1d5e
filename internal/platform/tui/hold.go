package tui

import (
	"sort"

	"github.com/vovakirdan/sprite-runner/internal/core"
)

// holdTracker emulates key releases for terminals, which only report presses.
// A key counts as held from its first press until no press or auto-repeat
// has arrived for the hold timeout.
type holdTracker struct {
	timeout  float64                    // ms
	lastSeen map[core.Direction]float64 // ms timestamp of the latest press
}

func newHoldTracker(timeoutMs int) *holdTracker {
	return &holdTracker{
		timeout:  float64(timeoutMs),
		lastSeen: make(map[core.Direction]float64, 4),
	}
}

// Press records a press of d at now. Returns true if the key was not already
// held, meaning a key-down must be delivered.
func (h *holdTracker) Press(d core.Direction, now float64) bool {
	_, held := h.lastSeen[d]
	h.lastSeen[d] = now
	return !held
}

// Expire drops every key whose last press is older than the timeout and
// returns them in direction order for key-up delivery.
func (h *holdTracker) Expire(now float64) []core.Direction {
	var released []core.Direction
	for d, seen := range h.lastSeen {
		if now-seen >= h.timeout {
			released = append(released, d)
			delete(h.lastSeen, d)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Held reports whether d is currently considered held.
func (h *holdTracker) Held(d core.Direction) bool {
	_, ok := h.lastSeen[d]
	return ok
}
