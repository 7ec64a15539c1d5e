// Package config provides YAML-based configuration loading for the runner.
// Every tunable constant of the simulation and the hosts lives here.
package config

// RunnerConfig contains all configuration for a run.
type RunnerConfig struct {
	Surface    SurfaceConfig    `yaml:"surface"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Background BackgroundConfig `yaml:"background"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Overlay    OverlayConfig    `yaml:"overlay"`
	Assets     AssetsConfig     `yaml:"assets"`
	Terminal   TerminalConfig   `yaml:"terminal"`
}

// SurfaceConfig defines the logical drawing surface in pixels.
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player sprite, its physics and animation.
type PlayerConfig struct {
	X           float64 `yaml:"x"`            // Starting horizontal position
	Width       float64 `yaml:"width"`        // Sprite cell width
	Height      float64 `yaml:"height"`       // Sprite cell height
	FPS         float64 `yaml:"fps"`          // Animation frames per second
	RunFrames   int     `yaml:"run_frames"`   // Max frame index of the run row
	JumpFrames  int     `yaml:"jump_frames"`  // Max frame index of the jump row
	Speed       float64 `yaml:"speed"`        // Horizontal speed per frame while Left/Right is held
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward velocity applied on jump
	Weight      float64 `yaml:"weight"`       // Gravity added to velocity per airborne frame
}

// EnemyConfig defines the enemy sprite and its movement.
type EnemyConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	FPS      float64 `yaml:"fps"`
	MaxFrame int     `yaml:"max_frame"`
	Speed    float64 `yaml:"speed"` // Leftward movement per frame
}

// BackgroundConfig defines the scrolling background tile.
type BackgroundConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SpawnerConfig defines the enemy spawn cadence.
type SpawnerConfig struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	RandomMinMs    float64 `yaml:"random_min_ms"` // Inclusive lower bound of the random extra delay
	RandomMaxMs    float64 `yaml:"random_max_ms"` // Exclusive upper bound of the random extra delay
	MaxEnemies     int     `yaml:"max_enemies"`   // 0 = unbounded
}

// OverlayConfig defines the score text and game-over banner placement.
type OverlayConfig struct {
	Font         string  `yaml:"font"`
	FontSize     float64 `yaml:"font_size"`
	ScoreX       float64 `yaml:"score_x"`
	ScoreY       float64 `yaml:"score_y"`
	BannerY      float64 `yaml:"banner_y"`
	ShadowOffset float64 `yaml:"shadow_offset"`
}

// AssetsConfig names the sprite sheet files, relative to the asset directory.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Player     string `yaml:"player"`
	Background string `yaml:"background"`
	Enemy      string `yaml:"enemy"`
}

// TerminalConfig tunes the terminal host.
type TerminalConfig struct {
	// KeyHoldMs is how long a key counts as held after its last press or
	// auto-repeat. Terminals never report key releases.
	KeyHoldMs int `yaml:"key_hold_ms"`
}
