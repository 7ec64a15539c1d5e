package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration can drive a simulation.
// All problems are reported together.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Surface.Width > 0 && c.Surface.Height > 0,
		"surface: size must be positive, got %dx%d", c.Surface.Width, c.Surface.Height)

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player: size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.Width <= float64(c.Surface.Width) && c.Player.Height <= float64(c.Surface.Height),
		"player: sprite %vx%v does not fit the surface", c.Player.Width, c.Player.Height)
	check(c.Player.FPS > 0, "player: fps must be positive, got %v", c.Player.FPS)
	check(c.Player.RunFrames >= 0 && c.Player.JumpFrames >= 0,
		"player: frame counts must not be negative")
	check(c.Player.Weight > 0, "player: weight must be positive, got %v", c.Player.Weight)

	check(c.Enemy.Width > 0 && c.Enemy.Height > 0,
		"enemy: size must be positive, got %vx%v", c.Enemy.Width, c.Enemy.Height)
	check(c.Enemy.FPS > 0, "enemy: fps must be positive, got %v", c.Enemy.FPS)
	check(c.Enemy.MaxFrame >= 0, "enemy: max_frame must not be negative")
	check(c.Enemy.Speed > 0, "enemy: speed must be positive, got %v", c.Enemy.Speed)

	check(c.Background.Width > 0 && c.Background.Height > 0,
		"background: size must be positive, got %vx%v", c.Background.Width, c.Background.Height)

	check(c.Spawner.BaseIntervalMs >= 0, "spawner: base_interval_ms must not be negative")
	check(c.Spawner.RandomMinMs >= 0 && c.Spawner.RandomMinMs <= c.Spawner.RandomMaxMs,
		"spawner: random range [%v, %v) is invalid", c.Spawner.RandomMinMs, c.Spawner.RandomMaxMs)
	check(c.Spawner.MaxEnemies >= 0, "spawner: max_enemies must not be negative")

	check(c.Terminal.KeyHoldMs > 0, "terminal: key_hold_ms must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// AssetPath returns the path of a sprite sheet file inside the asset directory.
func (c RunnerConfig) AssetPath(name string) string {
	if filepath.IsAbs(name) || c.Assets.Dir == "" {
		return name
	}
	return filepath.Join(c.Assets.Dir, name)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
