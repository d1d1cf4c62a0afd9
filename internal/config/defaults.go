package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the built-in configuration.
// Kept as a hardcoded fallback in case the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  1024,
			Height: 768,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			JumpSpeed:    -18,
			MaxFallSpeed: 15,
		},
		Player: PlayerConfig{
			Width:        60,
			Height:       90,
			StartX:       150,
			GroundOffset: 100,
		},
		Obstacles: ObstacleConfig{
			BaseSpeed:     8,
			SpawnInterval: 1.5,
			BaseWidth:     50,
			BaseHeight:    60,
			BaseYOffset:   150,
			PerspectiveY:  50,
			MinDistance:   0.1,
		},
		Coins: CoinConfig{
			Size:          30,
			SpeedFactor:   0.8,
			SpawnInterval: 1.0,
			SpawnChance:   0.3,
			MaxXOffset:    200,
			MinYAbove:     100,
			MaxYAbove:     200,
			BobAmplitude:  0.5,
			SpinRate:      5,
		},
		Scoring: ScoringConfig{
			RatePerSecond: 10,
			SpeedSlope:    0.1,
			SpeedDivisor:  1000,
		},
		Collision: CollisionConfig{
			ErosionMargin: 5,
		},
		Effects: EffectsConfig{
			ShakeIntensity: 5,
			ShakeDecay:     0.9,
			ShakeFloor:     0.5,
			FlashIntensity: 255,
			FlashDecay:     0.8,
			FlashFloor:     5,
		},
		Gesture: GestureConfig{
			Enabled:       false,
			Cooldown:      0.5,
			MinConfidence: 0.6,
			HistorySize:   5,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SoundVolume: 0.7,
			MusicVolume: 0.5,
		},
	}
}
