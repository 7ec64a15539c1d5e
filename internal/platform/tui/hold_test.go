package tui

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/sprite-runner/internal/core"
)

func TestHoldTrackerPressAndRepeat(t *testing.T) {
	h := newHoldTracker(550)

	if !h.Press(core.DirRight, 0) {
		t.Error("first press should deliver key-down")
	}
	if h.Press(core.DirRight, 100) {
		t.Error("auto-repeat should not deliver a second key-down")
	}
	if !h.Held(core.DirRight) {
		t.Error("DirRight should be held")
	}
}

func TestHoldTrackerExpire(t *testing.T) {
	h := newHoldTracker(550)
	h.Press(core.DirRight, 0)
	h.Press(core.DirUp, 300)

	if got := h.Expire(549); len(got) != 0 {
		t.Errorf("Expire(549) = %v, expected nothing", got)
	}
	if got := h.Expire(550); !reflect.DeepEqual(got, []core.Direction{core.DirRight}) {
		t.Errorf("Expire(550) = %v, expected [Right]", got)
	}
	if h.Held(core.DirRight) {
		t.Error("DirRight should be released")
	}

	// A repeat pushes the release back
	h.Press(core.DirUp, 800)
	if got := h.Expire(1000); len(got) != 0 {
		t.Errorf("Expire(1000) = %v, expected Up still held", got)
	}
	if got := h.Expire(1350); !reflect.DeepEqual(got, []core.Direction{core.DirUp}) {
		t.Errorf("Expire(1350) = %v, expected [Up]", got)
	}

	// After release the next press is a new key-down
	if !h.Press(core.DirUp, 1400) {
		t.Error("press after release should deliver key-down")
	}
}

func TestHoldTrackerExpireOrder(t *testing.T) {
	h := newHoldTracker(10)
	h.Press(core.DirRight, 0)
	h.Press(core.DirLeft, 0)
	h.Press(core.DirUp, 0)

	expected := []core.Direction{core.DirUp, core.DirLeft, core.DirRight}
	if got := h.Expire(10); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expire() = %v, expected %v", got, expected)
	}
}
