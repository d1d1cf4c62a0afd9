package game

import (
	"math/rand"
	"sort"

	"github.com/mkositsyn/temprun/internal/config"
	"github.com/mkositsyn/temprun/internal/core"
)

// ObstacleManager owns the live obstacle and coin arenas, the two spawn
// timers, the score accumulator, and the difficulty scalar derived from it.
// One manager lives for the duration of one run.
type ObstacleManager struct {
	cfg *config.Config
	rng *rand.Rand

	obstacles []Obstacle
	coins     []Coin

	obstacleTimer float64
	coinTimer     float64

	score     float64 // Monotonically non-decreasing accumulator
	speedMult float64

	// Reusable removal mask: expiry is computed first, then the arena is
	// compacted in one pass, so entity updates never mutate the slice they
	// iterate.
	expired []bool
}

// NewObstacleManager creates an empty manager with a seeded RNG.
func NewObstacleManager(cfg *config.Config, seed int64) *ObstacleManager {
	m := &ObstacleManager{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 8),
		coins:     make([]Coin, 0, 8),
	}
	m.Reset(seed)
	return m
}

// Reset clears all entities, timers and score, and reseeds the RNG.
func (m *ObstacleManager) Reset(seed int64) {
	m.obstacles = m.obstacles[:0]
	m.coins = m.coins[:0]
	m.obstacleTimer = 0
	m.coinTimer = 0
	m.score = 0
	m.speedMult = 1.0
	m.rng = rand.New(rand.NewSource(seed))
}

// Update advances the manager by dt seconds: recompute the speed multiplier
// from the current score, run both spawn timers, move and cull entities,
// then accumulate time-based score.
func (m *ObstacleManager) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	m.speedMult = m.cfg.Scoring.SpeedMultiplier(m.score)

	m.runSpawnTimers(dt)
	m.updateObstacles(dt)
	m.updateCoins(dt)

	m.score += dt * m.cfg.Scoring.RatePerSecond * m.speedMult
}

// runSpawnTimers advances both independent timers and spawns entities.
// The obstacle interval shrinks as the speed multiplier grows, so difficulty
// ramps continuously. The coin timer runs a fixed-interval Bernoulli trial
// and resets regardless of the trial outcome.
func (m *ObstacleManager) runSpawnTimers(dt float64) {
	m.obstacleTimer += dt
	if m.obstacleTimer >= m.cfg.Obstacles.SpawnInterval/m.speedMult {
		kind := KindRock
		if m.rng.Intn(2) == 1 {
			kind = KindFire
		}
		m.obstacles = append(m.obstacles, NewObstacle(kind, m.cfg))
		m.obstacleTimer = 0
	}

	m.coinTimer += dt
	if m.coinTimer >= m.cfg.Coins.SpawnInterval {
		if m.rng.Float64() < m.cfg.Coins.SpawnChance {
			xOffset := m.rng.Float64() * m.cfg.Coins.MaxXOffset
			yAbove := m.cfg.Coins.MinYAbove +
				m.rng.Float64()*(m.cfg.Coins.MaxYAbove-m.cfg.Coins.MinYAbove)
			m.coins = append(m.coins, NewCoin(m.cfg, xOffset, yAbove))
		}
		m.coinTimer = 0
	}
}

func (m *ObstacleManager) updateObstacles(dt float64) {
	m.expired = m.expired[:0]
	for i := range m.obstacles {
		m.expired = append(m.expired, m.obstacles[i].Update(dt, m.speedMult, m.cfg))
	}

	keep := m.obstacles[:0]
	for i := range m.obstacles {
		if !m.expired[i] {
			keep = append(keep, m.obstacles[i])
		}
	}
	m.obstacles = keep
}

func (m *ObstacleManager) updateCoins(dt float64) {
	m.expired = m.expired[:0]
	for i := range m.coins {
		m.expired = append(m.expired, m.coins[i].Update(dt, m.speedMult, m.cfg))
	}

	keep := m.coins[:0]
	for i := range m.coins {
		if !m.expired[i] {
			keep = append(keep, m.coins[i])
		}
	}
	m.coins = keep
}

// CheckCollision tests the player box against every live obstacle.
// Obstacle hitboxes are eroded by the configured margin so corner grazes
// are forgiven. Returns true on the first qualifying overlap; the caller
// treats this as terminal.
func (m *ObstacleManager) CheckCollision(playerBounds core.RectF) bool {
	if !playerBounds.IsFinite() {
		return false
	}
	margin := m.cfg.Collision.ErosionMargin
	for i := range m.obstacles {
		if playerBounds.Intersects(m.obstacles[i].Bounds().Inset(margin)) {
			return true
		}
	}
	return false
}

// CheckCoinCollection marks every live, uncollected coin overlapping the
// player (strict, non-eroded AABB) as collected and returns the count.
// This is the only place a coin transitions to collected; Collect is
// idempotent, so a coin can never be counted twice.
func (m *ObstacleManager) CheckCoinCollection(playerBounds core.RectF) int {
	if !playerBounds.IsFinite() {
		return 0
	}
	collected := 0
	for i := range m.coins {
		c := &m.coins[i]
		if c.Collected {
			continue
		}
		if playerBounds.Intersects(c.Bounds()) && c.Collect() {
			collected++
		}
	}
	return collected
}

// Obstacles returns the live obstacle arena.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Coins returns the live coin arena.
func (m *ObstacleManager) Coins() []Coin {
	return m.coins
}

// DrawOrder returns the obstacles sorted by descending distance (farthest
// first) so near obstacles paint over far ones. This back-to-front ordering
// is part of the render contract, not an optimization.
func (m *ObstacleManager) DrawOrder() []Obstacle {
	ordered := make([]Obstacle, len(m.obstacles))
	copy(ordered, m.obstacles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Distance > ordered[j].Distance
	})
	return ordered
}

// Score returns the raw floating-point score accumulator.
func (m *ObstacleManager) Score() float64 {
	return m.score
}

// ScoreInt returns the score as displayed and persisted.
func (m *ObstacleManager) ScoreInt() int {
	return int(m.score)
}

// SpeedMultiplier returns the current difficulty scalar.
func (m *ObstacleManager) SpeedMultiplier() float64 {
	return m.speedMult
}
