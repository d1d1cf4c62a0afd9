// Package config provides YAML-based game configuration loading for the
// runner. All tuning constants live here so the simulation core stays free
// of magic numbers.
package config

// Config contains all tuning for the Temple Runner game.
// The simulation runs in a fixed virtual pixel space defined by World;
// the terminal renderer projects that space onto screen cells.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Coins     CoinConfig      `yaml:"coins"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Collision CollisionConfig `yaml:"collision"`
	Effects   EffectsConfig   `yaml:"effects"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Audio     AudioConfig     `yaml:"audio"`
}

// WorldConfig defines the virtual pixel space the simulation runs in.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines vertical kinematics, tuned for 60 updates/second.
// All per-tick constants are scaled by dt*60 at integration time so real
// elapsed time drives the simulation.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpSpeed    float64 `yaml:"jump_speed"` // Negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlayerConfig defines the player sprite geometry.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartX       float64 `yaml:"start_x"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance of feet above the world bottom
}

// GroundY returns the y-coordinate of the player's resting position
// (top of the sprite when standing on the ground line).
func (c Config) GroundY() float64 {
	return c.World.Height - c.Player.Height - c.Player.GroundOffset
}

// ObstacleConfig defines obstacle spawning and perspective geometry.
type ObstacleConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`     // World px per tick at 60 fps
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns at 1.0x speed
	BaseWidth     float64 `yaml:"base_width"`
	BaseHeight    float64 `yaml:"base_height"`
	BaseYOffset   float64 `yaml:"base_y_offset"`   // Distance of the far-plane base from the world bottom
	PerspectiveY  float64 `yaml:"perspective_y"`   // Upward shift per unit of scale growth
	MinDistance   float64 `yaml:"min_distance"`    // Nearest allowed pseudo-3D distance
}

// CoinConfig defines coin spawning and animation.
type CoinConfig struct {
	Size          float64 `yaml:"size"`
	SpeedFactor   float64 `yaml:"speed_factor"`   // Fraction of obstacle base speed
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between Bernoulli trials
	SpawnChance   float64 `yaml:"spawn_chance"`
	MaxXOffset    float64 `yaml:"max_x_offset"`  // Random horizontal offset past the right edge
	MinYAbove     float64 `yaml:"min_y_above"`   // Placement above the world bottom
	MaxYAbove     float64 `yaml:"max_y_above"`
	BobAmplitude  float64 `yaml:"bob_amplitude"` // Vertical float per tick
	SpinRate      float64 `yaml:"spin_rate"`     // Degrees per tick (cosmetic)
}

// ScoringConfig defines the continuous time-based score accumulator and the
// difficulty curve derived from it.
type ScoringConfig struct {
	RatePerSecond float64 `yaml:"rate_per_second"`
	SpeedSlope    float64 `yaml:"speed_slope"`   // speedMultiplier = 1 + score/Divisor*Slope
	SpeedDivisor  float64 `yaml:"speed_divisor"`
}

// SpeedMultiplier returns the difficulty scalar for a given score.
// Strictly non-decreasing with score.
func (s ScoringConfig) SpeedMultiplier(score float64) float64 {
	return 1.0 + (score/s.SpeedDivisor)*s.SpeedSlope
}

// CollisionConfig defines hitbox tolerances.
type CollisionConfig struct {
	ErosionMargin float64 `yaml:"erosion_margin"` // Pixels trimmed from obstacle hitboxes
}

// EffectsConfig defines camera shake and screen flash behavior.
type EffectsConfig struct {
	ShakeIntensity float64 `yaml:"shake_intensity"`
	ShakeDecay     float64 `yaml:"shake_decay"`
	ShakeFloor     float64 `yaml:"shake_floor"` // Snap to zero below this
	FlashIntensity float64 `yaml:"flash_intensity"`
	FlashDecay     float64 `yaml:"flash_decay"`
	FlashFloor     float64 `yaml:"flash_floor"`
}

// GestureConfig tunes the pluggable gesture input translator.
type GestureConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Cooldown      float64 `yaml:"cooldown"`       // Min seconds between two non-idle results
	MinConfidence float64 `yaml:"min_confidence"` // Results below this are suppressed
	HistorySize   int     `yaml:"history_size"`   // Smoothing window
}

// AudioConfig tunes sound effect and music volumes.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SoundVolume float64 `yaml:"sound_volume"`
	MusicVolume float64 `yaml:"music_volume"`
}
