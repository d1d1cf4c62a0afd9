// Package game implements the Temple Runner simulation core: player
// kinematics, obstacle/coin lifecycle, collision and scoring, and the
// session state machine. It is pure logic with no platform dependencies
// so every rule is testable without a terminal.
package game

import (
	"math/rand"

	"github.com/mkositsyn/temprun/internal/config"
	"github.com/mkositsyn/temprun/internal/core"
)

// Player is the runner sprite. Position is in world pixels with y growing
// downward; y is clamped to the ground line and velocity resets to zero
// exactly when the player lands.
type Player struct {
	X, Y   float64
	VelY   float64
	Width  float64
	Height float64

	isJumping bool
	isFalling bool

	// Transient visual shake, included in collision bounds so the hitbox
	// follows the sprite.
	shakeX, shakeY float64

	groundY float64
	phys    config.PhysicsConfig
	effects config.EffectsConfig
	rng     *rand.Rand
}

// NewPlayer creates a player at rest on the ground line.
func NewPlayer(cfg config.Config, rng *rand.Rand) *Player {
	return &Player{
		X:       cfg.Player.StartX,
		Y:       cfg.GroundY(),
		Width:   cfg.Player.Width,
		Height:  cfg.Player.Height,
		groundY: cfg.GroundY(),
		phys:    cfg.Physics,
		effects: cfg.Effects,
		rng:     rng,
	}
}

// Jump starts a jump and returns true, but only if the player is neither
// jumping nor falling. A second jump before landing is rejected.
func (p *Player) Jump() bool {
	if p.isJumping || p.isFalling {
		return false
	}
	p.VelY = p.phys.JumpSpeed
	p.isJumping = true
	return true
}

// Airborne reports whether the player is off the ground.
func (p *Player) Airborne() bool {
	return p.isJumping || p.isFalling
}

// Update advances vertical kinematics by dt seconds using explicit Euler,
// one step per tick. Per-tick constants are tuned for 60 updates/second, so
// the step is scaled uniformly by dt*60.
func (p *Player) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	step := dt * 60

	if p.isJumping || p.isFalling {
		p.VelY += p.phys.Gravity * step
		if p.VelY > p.phys.MaxFallSpeed {
			p.VelY = p.phys.MaxFallSpeed
		}
	}

	p.Y += p.VelY * step

	if p.Y >= p.groundY {
		p.Y = p.groundY
		if p.VelY >= 0 {
			p.VelY = 0
			p.isJumping = false
			p.isFalling = false
		}
	} else if p.VelY > 0 {
		// Moving downward while above ground: falling. Covers walking off
		// an implicit ledge, keeping jump arcs symmetric.
		p.isFalling = true
	}
}

// AddScreenShake kicks the sprite to a random offset in [-intensity, intensity]
// on both axes. The offset decays geometrically on every tick.
func (p *Player) AddScreenShake(intensity float64) {
	p.shakeX = (p.rng.Float64()*2 - 1) * intensity
	p.shakeY = (p.rng.Float64()*2 - 1) * intensity
}

// DecayShake applies one tick of geometric shake decay, snapping to zero
// below the configured floor. Runs independent of jump state.
func (p *Player) DecayShake() {
	p.shakeX *= p.effects.ShakeDecay
	p.shakeY *= p.effects.ShakeDecay
	if abs(p.shakeX) < p.effects.ShakeFloor {
		p.shakeX = 0
	}
	if abs(p.shakeY) < p.effects.ShakeFloor {
		p.shakeY = 0
	}
}

// ShakeOffset returns the current shake offset pair.
func (p *Player) ShakeOffset() (float64, float64) {
	return p.shakeX, p.shakeY
}

// Bounds returns the collision box including the shake offset, so shake
// causes only visual jitter, never phantom hits or misses.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X+p.shakeX, p.Y+p.shakeY, p.Width, p.Height)
}

// OnGround reports whether the player is resting on the ground line.
func (p *Player) OnGround() bool {
	return p.Y >= p.groundY && !p.isJumping && !p.isFalling
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
