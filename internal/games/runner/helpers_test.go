package runner

import (
	"github.com/vovakirdan/sprite-runner/internal/config"
	"github.com/vovakirdan/sprite-runner/internal/core"
)

// fixedRandom always returns the same value.
type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

// sequenceRandom returns its values in order, repeating the last one.
type sequenceRandom struct {
	values []float64
	i      int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.i]
	if r.i < len(r.values)-1 {
		r.i++
	}
	return v
}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func newTestPlayer() *Player {
	cfg := testConfig()
	return NewPlayer(cfg.Player, float64(cfg.Surface.Width), float64(cfg.Surface.Height))
}

func newTestEnemy() *Enemy {
	cfg := testConfig()
	return NewEnemy(cfg.Enemy, float64(cfg.Surface.Width), float64(cfg.Surface.Height))
}

// opKinds flattens a draw list into op kinds and image handles for ordering checks.
func opKinds(l *core.DrawList) []string {
	out := make([]string, 0, l.Len())
	for _, op := range l.Ops() {
		switch op.Kind {
		case core.OpClear:
			out = append(out, "clear")
		case core.OpImage:
			out = append(out, op.Image.String())
		case core.OpText:
			out = append(out, "text")
		}
	}
	return out
}
