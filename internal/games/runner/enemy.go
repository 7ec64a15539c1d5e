package runner

import (
	"github.com/vovakirdan/sprite-runner/internal/config"
	"github.com/vovakirdan/sprite-runner/internal/core"
)

// Enemy is an obstacle running leftward along the ground.
type Enemy struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
	Anim   Animation

	// MarkedForDeletion is set once, when the enemy has fully left the screen.
	MarkedForDeletion bool
}

// NewEnemy creates an enemy just past the right edge, standing on the ground.
func NewEnemy(cfg config.EnemyConfig, gameW, gameH float64) *Enemy {
	return &Enemy{
		X:      gameW,
		Y:      gameH - cfg.Height,
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
		Anim:   NewAnimation(cfg.FPS, cfg.MaxFrame),
	}
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// Update animates and moves the enemy. The frame its right edge passes the
// left boundary it marks itself for deletion and scores one point.
func (e *Enemy) Update(dt float64, st *State) {
	e.Anim.Advance(dt)

	e.X -= e.Speed
	if !e.MarkedForDeletion && e.X+e.Width < 0 {
		e.MarkedForDeletion = true
		st.Score++
	}
}

// Draw blits the current animation cell.
func (e *Enemy) Draw(dst core.Surface) {
	src := core.NewRectF(float64(e.Anim.Frame)*e.Width, 0, e.Width, e.Height)
	dst.DrawImage(core.ImageEnemy, src, e.Rect())
}
