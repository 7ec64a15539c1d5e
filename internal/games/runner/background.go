package runner

import (
	"github.com/vovakirdan/sprite-runner/internal/config"
	"github.com/vovakirdan/sprite-runner/internal/core"
)

// Background is the endlessly scrolling backdrop.
type Background struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
}

// NewBackground creates a background at offset 0.
func NewBackground(cfg config.BackgroundConfig) *Background {
	return &Background{
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
	}
}

// Update scrolls left, wrapping to 0 after a full tile width.
func (b *Background) Update() {
	b.X -= b.Speed
	if b.X < -b.Width {
		b.X = 0
	}
}

// Draw blits the tile twice, side by side, so the seam is never visible.
func (b *Background) Draw(dst core.Surface) {
	src := core.NewRectF(0, 0, b.Width, b.Height)
	dst.DrawImage(core.ImageBackground, src, core.NewRectF(b.X, b.Y, b.Width, b.Height))
	dst.DrawImage(core.ImageBackground, src, core.NewRectF(b.X+b.Width, b.Y, b.Width, b.Height))
}
