package game

import (
	"math"

	"github.com/mkositsyn/temprun/internal/config"
	"github.com/mkositsyn/temprun/internal/core"
)

// ObstacleKind discriminates the obstacle variants.
type ObstacleKind int

const (
	KindRock ObstacleKind = iota
	KindFire
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	if k == KindFire {
		return "fire"
	}
	return "rock"
}

// Obstacle is a ground hazard approaching the player. Its pseudo-3D
// Distance in [minDistance, 1.0] shrinks as it moves left, driving a
// perspective scale and vertical shift; width/height/y are derived.
type Obstacle struct {
	Kind     ObstacleKind
	X        float64
	Distance float64
	Width    float64
	Height   float64
	Y        float64
}

// NewObstacle spawns an obstacle at the right edge of the world, at the
// far plane.
func NewObstacle(kind ObstacleKind, cfg *config.Config) Obstacle {
	o := Obstacle{
		Kind:     kind,
		X:        cfg.World.Width,
		Distance: 1.0,
	}
	o.applyPerspective(cfg)
	return o
}

// applyPerspective derives size and vertical position from Distance.
// scale = 2 - distance, so near obstacles (distance -> 0.1) draw ~1.9x base
// size and shift upward as they grow.
func (o *Obstacle) applyPerspective(cfg *config.Config) {
	scale := 2.0 - o.Distance
	o.Width = cfg.Obstacles.BaseWidth * scale
	o.Height = cfg.Obstacles.BaseHeight * scale

	baseY := cfg.World.Height - cfg.Obstacles.BaseYOffset
	o.Y = baseY - (scale-1.0)*cfg.Obstacles.PerspectiveY
}

// Update moves the obstacle left and recomputes its perspective transform.
// The x60 factor normalizes the per-tick speed constant, tuned for 60
// updates/second, to real elapsed time. Returns true once the obstacle is
// fully past the left edge; the manager is responsible for removal.
func (o *Obstacle) Update(dt, speedMultiplier float64, cfg *config.Config) bool {
	o.X -= cfg.Obstacles.BaseSpeed * speedMultiplier * dt * 60

	progress := (cfg.World.Width - o.X) / cfg.World.Width
	o.Distance = math.Max(cfg.Obstacles.MinDistance, 1.0-progress)
	o.applyPerspective(cfg)

	return o.X+o.Width < 0
}

// Bounds returns the collision box at the current perspective scale.
func (o *Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Width, o.Height)
}

// Coin is a collectible. Horizontal movement follows the obstacle law at a
// reduced speed; the vertical bob and rotation are cosmetic and excluded
// from collision.
type Coin struct {
	X, Y      float64
	Size      float64
	Rotation  float64
	Collected bool

	age float64
}

// NewCoin spawns a coin past the right edge with randomized placement.
// xOffset is in [0, maxXOffset); yAbove is the height above the world
// bottom, in [minYAbove, maxYAbove).
func NewCoin(cfg *config.Config, xOffset, yAbove float64) Coin {
	return Coin{
		X:    cfg.World.Width + xOffset,
		Y:    cfg.World.Height - yAbove,
		Size: cfg.Coins.Size,
	}
}

// Update moves the coin and advances its cosmetic animation. A collected
// coin stops participating and reports expired so the normal sweep removes
// it. Returns true when the coin should be culled.
func (c *Coin) Update(dt, speedMultiplier float64, cfg *config.Config) bool {
	if c.Collected {
		return true
	}

	step := dt * 60
	c.X -= cfg.Obstacles.BaseSpeed * cfg.Coins.SpeedFactor * speedMultiplier * step

	c.age += dt
	c.Rotation += cfg.Coins.SpinRate * step
	c.Y += math.Sin(c.age*3.5) * cfg.Coins.BobAmplitude * step

	return c.X+c.Size < 0
}

// Collect marks the coin as collected. Idempotent: the first call returns
// true, later calls false.
func (c *Coin) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	return true
}

// Bounds returns the collision box. Rotation and bob scale are cosmetic
// and do not affect it beyond the bob's effect on Y.
func (c *Coin) Bounds() core.RectF {
	return core.NewRectF(c.X, c.Y, c.Size, c.Size)
}
