package runner

import (
	"github.com/vovakirdan/sprite-runner/internal/config"
	"github.com/vovakirdan/sprite-runner/internal/core"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Spawner owns enemy creation cadence and the membership of State.Enemies.
type Spawner struct {
	timer     float64
	threshold float64
	spawned   int

	cfg   config.SpawnerConfig
	enemy config.EnemyConfig
	rng   RandomSource
	gameW float64
	gameH float64
}

// NewSpawner creates a spawner and draws the first spawn threshold.
func NewSpawner(cfg config.SpawnerConfig, enemy config.EnemyConfig, gameW, gameH float64, rng RandomSource) *Spawner {
	s := &Spawner{
		cfg:   cfg,
		enemy: enemy,
		rng:   rng,
		gameW: gameW,
		gameH: gameH,
	}
	s.threshold = s.nextThreshold()
	return s
}

// nextThreshold returns base + uniform[min, max) milliseconds.
func (s *Spawner) nextThreshold() float64 {
	spread := s.cfg.RandomMaxMs - s.cfg.RandomMinMs
	return s.cfg.BaseIntervalMs + s.cfg.RandomMinMs + s.rng.Float64()*spread
}

// Threshold returns the elapsed time the timer must exceed before the next spawn.
func (s *Spawner) Threshold() float64 {
	return s.threshold
}

// Spawned returns how many enemies have been created.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// full reports whether the configured enemy cap is reached.
func (s *Spawner) full(st *State) bool {
	return s.cfg.MaxEnemies > 0 && len(st.Enemies) >= s.cfg.MaxEnemies
}

// Tick runs the spawn check, then draws and updates every live enemy, then
// drops the ones that left the screen.
// While the cap is reached the timer keeps running, so the next enemy
// appears on the first tick with a free slot.
func (s *Spawner) Tick(dt float64, dst core.Surface, st *State) {
	if s.timer > s.threshold && !s.full(st) {
		st.Enemies = append(st.Enemies, NewEnemy(s.enemy, s.gameW, s.gameH))
		s.spawned++
		s.timer = 0
		s.threshold = s.nextThreshold()
	} else {
		s.timer += dt
	}

	for _, e := range st.Enemies {
		e.Draw(dst)
		e.Update(dt, st)
	}

	st.Enemies = prune(st.Enemies)
}

// prune compacts enemies in place, keeping order, and clears the vacated
// tail so removed enemies can be collected.
func prune(enemies []*Enemy) []*Enemy {
	live := enemies[:0]
	for _, e := range enemies {
		if !e.MarkedForDeletion {
			live = append(live, e)
		}
	}
	clear(enemies[len(live):])
	return live
}
