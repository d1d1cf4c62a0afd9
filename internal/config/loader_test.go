package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := Default()
	if cfg.Physics.Gravity != def.Physics.Gravity {
		t.Errorf("gravity = %v, expected %v", cfg.Physics.Gravity, def.Physics.Gravity)
	}
	if cfg.Physics.JumpSpeed != def.Physics.JumpSpeed {
		t.Errorf("jump_speed = %v, expected %v", cfg.Physics.JumpSpeed, def.Physics.JumpSpeed)
	}
	if cfg.World.Width != 1024 || cfg.World.Height != 768 {
		t.Errorf("world = %vx%v, expected 1024x768", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Obstacles.SpawnInterval != 1.5 {
		t.Errorf("spawn_interval = %v, expected 1.5", cfg.Obstacles.SpawnInterval)
	}
	if cfg.Coins.SpawnChance != 0.3 {
		t.Errorf("spawn_chance = %v, expected 0.3", cfg.Coins.SpawnChance)
	}
	if cfg.Collision.ErosionMargin != 5 {
		t.Errorf("erosion_margin = %v, expected 5", cfg.Collision.ErosionMargin)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := []byte("physics:\n  gravity: 1.25\n  jump_speed: -20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.25 {
		t.Errorf("gravity = %v, expected 1.25", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpSpeed != -20 {
		t.Errorf("jump_speed = %v, expected -20", cfg.Physics.JumpSpeed)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestSpeedMultiplierFormula(t *testing.T) {
	s := Default().Scoring

	tests := []struct {
		score    float64
		expected float64
	}{
		{0, 1.0},
		{1000, 1.1},
		{2500, 1.25},
		{10000, 2.0},
	}

	for _, tc := range tests {
		if got := s.SpeedMultiplier(tc.score); got != tc.expected {
			t.Errorf("SpeedMultiplier(%v) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestGroundY(t *testing.T) {
	cfg := Default()
	// 768 - 90 - 100
	if got := cfg.GroundY(); got != 578 {
		t.Errorf("GroundY() = %v, expected 578", got)
	}
}
