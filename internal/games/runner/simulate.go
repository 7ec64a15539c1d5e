package runner

import "github.com/vovakirdan/sprite-runner/internal/core"

// Simulate runs game headless for up to frames frames, dt milliseconds apart,
// holding Up for one frame every jumpEvery frames (0 = never). It stops early
// when the run ends and returns the final state.
func Simulate(game *Game, frames int, dt float64, jumpEvery int) core.GameState {
	list := core.NewDrawList()
	in := game.Input()

	for i := 0; i < frames; i++ {
		if jumpEvery > 0 && i%jumpEvery == 0 {
			in.OnKeyDown(core.DirUp)
		} else {
			in.OnKeyUp(core.DirUp)
		}
		if !game.Frame(float64(i)*dt, list) {
			break
		}
	}
	return game.State()
}
