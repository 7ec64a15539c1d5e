// Package runner implements a side-scrolling endless runner.
// The player runs and jumps over enemies approaching from the right; every
// enemy that leaves the screen scores a point and the first collision ends
// the run. The package is pure simulation: hosts supply timestamps, key
// signals and a drawing surface.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/sprite-runner/internal/config"
	"github.com/vovakirdan/sprite-runner/internal/core"
)

// ID and Title identify the game to hosts.
const (
	ID    = "runner"
	Title = "Sprite Runner"
)

// State is the mutable run state shared by the entities during a frame.
type State struct {
	Score    int
	GameOver bool // One-way latch, set by the first collision
	Enemies  []*Enemy
}

// Game drives one run, frame by frame.
type Game struct {
	cfg        config.RunnerConfig
	input      *core.InputState
	background *Background
	player     *Player
	spawner    *Spawner
	overlay    *Overlay
	state      State

	lastTime float64
	frames   int
	done     bool
}

// New creates a run using rng for spawn timing.
func New(cfg config.RunnerConfig, rng RandomSource) *Game {
	w := float64(cfg.Surface.Width)
	h := float64(cfg.Surface.Height)

	return &Game{
		cfg:        cfg,
		input:      core.NewInputState(),
		background: NewBackground(cfg.Background),
		player:     NewPlayer(cfg.Player, w, h),
		spawner:    NewSpawner(cfg.Spawner, cfg.Enemy, w, h, rng),
		overlay:    NewOverlay(cfg.Overlay, w),
		state: State{
			Enemies: make([]*Enemy, 0, 8),
		},
	}
}

// NewSeeded creates a run with a deterministic spawn sequence.
func NewSeeded(cfg config.RunnerConfig, seed int64) *Game {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

// Input returns the held-key state hosts feed key signals into.
func (g *Game) Input() *core.InputState {
	return g.input
}

// Config returns the configuration the run was created with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Frame runs one frame for the host timestamp ts (milliseconds) and draws it
// onto dst. The order is fixed: clear, background, player (drawn before it
// moves, so each frame shows the previous frame's position), enemies, then
// the overlay.
//
// Frame returns true if the host must schedule another frame. Once a frame
// has returned false the run is over and later calls change nothing.
func (g *Game) Frame(ts float64, dst core.Surface) bool {
	if g.done {
		return false
	}

	dt := ts - g.lastTime
	if dt < 0 {
		dt = 0
	}
	g.lastTime = ts
	g.frames++

	dst.Clear()
	g.background.Draw(dst)
	g.background.Update()
	g.player.Draw(dst)
	g.player.Update(g.input, dt, &g.state)
	g.spawner.Tick(dt, dst, &g.state)
	g.overlay.Draw(dst, &g.state)

	if g.state.GameOver {
		g.done = true
	}
	return !g.done
}

// State returns a snapshot of the run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Frames:   g.frames,
		Enemies:  len(g.state.Enemies),
		Spawned:  g.spawner.Spawned(),
	}
}
