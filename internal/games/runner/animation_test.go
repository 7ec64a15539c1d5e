package runner

import (
	"math/rand"
	"testing"
)

func TestAnimationAdvancesOncePastInterval(t *testing.T) {
	a := NewAnimation(20, 8) // 50ms per frame

	// 16+16+16 = 48 is not past 50, and the fourth call only accumulates to 64
	for i := 0; i < 4; i++ {
		if a.Advance(16) {
			t.Fatalf("Advance() call %d changed the frame early (timer %v)", i+1, a.Timer)
		}
	}
	if !a.Advance(16) {
		t.Fatal("Advance() should change the frame once the timer is past the interval")
	}
	if a.Frame != 1 {
		t.Errorf("Frame = %d, expected 1", a.Frame)
	}
	if a.Timer != 0 {
		t.Errorf("Timer = %v after advancing, expected 0", a.Timer)
	}
}

func TestAnimationWraps(t *testing.T) {
	a := NewAnimation(20, 5)
	a.Frame = 5
	a.Timer = a.Interval + 1

	a.Advance(16)
	if a.Frame != 0 {
		t.Errorf("Frame = %d after passing MaxFrame, expected 0", a.Frame)
	}
}

func TestAnimationNeverExceedsMaxFrame(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := NewAnimation(20, 8)

	for i := 0; i < 5000; i++ {
		// Switch rows now and then, as the player does on take-off and landing
		if i%97 == 0 {
			if a.Row == RowRun {
				a.SetRow(RowJump, 5)
			} else {
				a.SetRow(RowRun, 8)
			}
		}

		before := a.Frame
		changed := a.Advance(rng.Float64() * 40)

		if a.Frame < 0 || a.Frame > a.MaxFrame {
			t.Fatalf("step %d: Frame = %d outside [0, %d]", i, a.Frame, a.MaxFrame)
		}
		if changed && a.Frame != before+1 && a.Frame != 0 {
			t.Fatalf("step %d: frame moved %d -> %d, expected +1 or wrap", i, before, a.Frame)
		}
		if !changed && a.Frame != before {
			t.Fatalf("step %d: frame changed without reporting it", i)
		}
	}
}

func TestAnimationSetRowClampsFrame(t *testing.T) {
	a := NewAnimation(20, 8)
	a.Frame = 7

	a.SetRow(RowJump, 5)
	if a.Frame != 0 {
		t.Errorf("Frame = %d after switching to a shorter row, expected 0", a.Frame)
	}
	if a.Row != RowJump || a.MaxFrame != 5 {
		t.Errorf("row/max = %d/%d, expected %d/5", a.Row, a.MaxFrame, RowJump)
	}

	a.Frame = 3
	a.SetRow(RowRun, 8)
	if a.Frame != 3 {
		t.Errorf("Frame = %d, switching to a longer row should keep it", a.Frame)
	}
}
