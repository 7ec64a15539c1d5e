package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 720,
		},
		Player: PlayerConfig{
			X:           10,
			Width:       200,
			Height:      200,
			FPS:         20,
			RunFrames:   8,
			JumpFrames:  5,
			Speed:       5,
			JumpImpulse: 32,
			Weight:      1,
		},
		Enemy: EnemyConfig{
			Width:    160,
			Height:   119,
			FPS:      20,
			MaxFrame: 5,
			Speed:    8,
		},
		Background: BackgroundConfig{
			Width:  2400,
			Height: 720,
			Speed:  7,
		},
		Spawner: SpawnerConfig{
			BaseIntervalMs: 1000,
			RandomMinMs:    500,
			RandomMaxMs:    1500,
			MaxEnemies:     16,
		},
		Overlay: OverlayConfig{
			Font:         "40px Helvetica",
			FontSize:     40,
			ScoreX:       20,
			ScoreY:       50,
			BannerY:      200,
			ShadowOffset: 2,
		},
		Assets: AssetsConfig{
			Dir:        "assets",
			Player:     "player.png",
			Background: "background.png",
			Enemy:      "enemy.png",
		},
		Terminal: TerminalConfig{
			KeyHoldMs: 550,
		},
	}
}
