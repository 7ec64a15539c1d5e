package runner

// Animation steps through the columns of one sprite-sheet row on a timer.
type Animation struct {
	Frame    int     // Current column
	Row      int     // Current row
	MaxFrame int     // Last valid column of the row
	Timer    float64 // Milliseconds accumulated since the last advance
	Interval float64 // Milliseconds per frame (1000 / fps)
}

// NewAnimation creates an animation on row 0 running at fps.
func NewAnimation(fps float64, maxFrame int) Animation {
	return Animation{
		MaxFrame: maxFrame,
		Interval: 1000 / fps,
	}
}

// Advance feeds dt milliseconds into the frame timer.
// Once the timer has exceeded the interval the next call moves to the next
// column, wrapping past MaxFrame back to 0, and restarts the timer; the dt of
// that call is not carried over. Returns true if the frame changed.
func (a *Animation) Advance(dt float64) bool {
	if a.Timer > a.Interval {
		if a.Frame >= a.MaxFrame {
			a.Frame = 0
		} else {
			a.Frame++
		}
		a.Timer = 0
		return true
	}
	a.Timer += dt
	return false
}

// SetRow switches to another sheet row with its own frame count.
// A frame index past the new MaxFrame restarts at 0 so it always names a
// valid cell.
func (a *Animation) SetRow(row, maxFrame int) {
	a.Row = row
	a.MaxFrame = maxFrame
	if a.Frame > maxFrame {
		a.Frame = 0
	}
}
