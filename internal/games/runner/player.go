package runner

import (
	"github.com/vovakirdan/sprite-runner/internal/config"
	"github.com/vovakirdan/sprite-runner/internal/core"
)

// Sprite sheet rows of the player.
const (
	RowRun  = 0
	RowJump = 1
)

// Player is the controllable runner sprite.
type Player struct {
	X, Y      float64 // Top-left corner in surface pixels
	VelocityY float64 // Vertical velocity, negative = up
	Speed     float64 // Horizontal speed applied this frame
	Width     float64
	Height    float64
	Anim      Animation

	cfg   config.PlayerConfig
	gameW float64
	gameH float64
}

// NewPlayer creates a player standing on the ground at the configured x.
func NewPlayer(cfg config.PlayerConfig, gameW, gameH float64) *Player {
	p := &Player{
		X:      cfg.X,
		Width:  cfg.Width,
		Height: cfg.Height,
		Anim:   NewAnimation(cfg.FPS, cfg.RunFrames),
		cfg:    cfg,
		gameW:  gameW,
		gameH:  gameH,
	}
	p.Y = p.Ground()
	return p
}

// Ground returns the y position at which the player stands on the ground.
func (p *Player) Ground() float64 {
	return p.gameH - p.Height
}

// OnGround reports whether the player is at ground level.
func (p *Player) OnGround() bool {
	return p.Y >= p.Ground()
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Collides reports whether e is close enough to end the run.
// Both sprites are treated as circles with a radius of half their width, so
// near box corners the result can differ from exact box overlap.
func (p *Player) Collides(e *Enemy) bool {
	px, py := p.Rect().Center()
	ex, ey := e.Rect().Center()
	return core.Distance(px, py, ex, ey) < e.Width/2+p.Width/2
}

// Update advances the player by one frame.
// Any collision with a live enemy latches st.GameOver.
func (p *Player) Update(in *core.InputState, dt float64, st *State) {
	for _, e := range st.Enemies {
		if p.Collides(e) {
			st.GameOver = true
		}
	}

	p.Anim.Advance(dt)

	// Right beats Left beats Up. The jump branch leaves Speed untouched, and
	// holding Up re-applies the impulse on every grounded frame.
	switch {
	case in.IsHeld(core.DirRight):
		p.Speed = p.cfg.Speed
	case in.IsHeld(core.DirLeft):
		p.Speed = -p.cfg.Speed
	case in.IsHeld(core.DirUp) && p.OnGround():
		p.VelocityY -= p.cfg.JumpImpulse
	default:
		p.Speed = 0
	}

	p.X = core.ClampF(p.X+p.Speed, 0, p.gameW-p.Width)

	p.Y += p.VelocityY
	if !p.OnGround() {
		p.VelocityY += p.cfg.Weight
		p.Anim.SetRow(RowJump, p.cfg.JumpFrames)
	} else {
		p.VelocityY = 0
		p.Anim.SetRow(RowRun, p.cfg.RunFrames)
	}
	p.Y = core.ClampF(p.Y, 0, p.Ground())
}

// Draw blits the current animation cell at the player's position.
func (p *Player) Draw(dst core.Surface) {
	src := core.NewRectF(float64(p.Anim.Frame)*p.Width, float64(p.Anim.Row)*p.Height, p.Width, p.Height)
	dst.DrawImage(core.ImagePlayer, src, p.Rect())
}
