package game

import (
	"math"
	"testing"

	"github.com/mkositsyn/temprun/internal/config"
)

func TestObstacleSpawnsAtFarPlane(t *testing.T) {
	cfg := config.Default()
	o := NewObstacle(KindRock, &cfg)

	if o.X != cfg.World.Width {
		t.Errorf("spawn x = %v, expected right edge %v", o.X, cfg.World.Width)
	}
	if o.Distance != 1.0 {
		t.Errorf("spawn distance = %v, expected 1.0", o.Distance)
	}
	if o.Width != cfg.Obstacles.BaseWidth || o.Height != cfg.Obstacles.BaseHeight {
		t.Errorf("spawn size = %vx%v, expected base %vx%v",
			o.Width, o.Height, cfg.Obstacles.BaseWidth, cfg.Obstacles.BaseHeight)
	}
}

func TestObstacleDistanceMonotone(t *testing.T) {
	cfg := config.Default()
	o := NewObstacle(KindFire, &cfg)

	prev := o.Distance
	for i := 0; i < 200; i++ {
		expired := o.Update(tick, 1.0, &cfg)
		if o.Distance > prev {
			t.Fatalf("distance rose from %v to %v at step %d", prev, o.Distance, i)
		}
		if o.Distance < cfg.Obstacles.MinDistance {
			t.Fatalf("distance %v fell below floor %v", o.Distance, cfg.Obstacles.MinDistance)
		}
		prev = o.Distance
		if expired {
			return
		}
	}
	t.Fatal("obstacle never crossed the screen")
}

func TestObstaclePerspectiveScale(t *testing.T) {
	cfg := config.Default()
	o := NewObstacle(KindRock, &cfg)

	// Drive the obstacle near the player: scale should approach 1.9x base.
	for i := 0; i < 200; i++ {
		if o.Update(tick, 1.0, &cfg) {
			break
		}
	}

	scale := 2.0 - o.Distance
	if math.Abs(o.Width-cfg.Obstacles.BaseWidth*scale) > 1e-9 {
		t.Errorf("width %v does not match scale %v", o.Width, scale)
	}
	if o.Distance != cfg.Obstacles.MinDistance {
		t.Errorf("distance at the left edge = %v, expected floor %v",
			o.Distance, cfg.Obstacles.MinDistance)
	}

	// Near obstacles sit higher on screen than far ones.
	far := NewObstacle(KindRock, &cfg)
	if o.Y >= far.Y {
		t.Errorf("near obstacle y %v should be above far obstacle y %v", o.Y, far.Y)
	}
}

func TestObstacleExpiresPastLeftEdge(t *testing.T) {
	cfg := config.Default()
	o := NewObstacle(KindRock, &cfg)

	expired := false
	for i := 0; i < 2000; i++ {
		if o.Update(tick, 1.0, &cfg) {
			expired = true
			break
		}
	}
	if !expired {
		t.Fatal("obstacle never expired")
	}
	if o.X+o.Width >= 0 {
		t.Errorf("expired obstacle still visible: right edge at %v", o.X+o.Width)
	}
}

func TestCoinCollectIdempotent(t *testing.T) {
	cfg := config.Default()
	c := NewCoin(&cfg, 0, 200)

	if !c.Collect() {
		t.Fatal("first Collect should return true")
	}
	if c.Collect() {
		t.Error("second Collect should return false")
	}
	if !c.Collected {
		t.Error("coin should be marked collected")
	}
}

func TestCollectedCoinExpires(t *testing.T) {
	cfg := config.Default()
	c := NewCoin(&cfg, 0, 200)
	c.Collect()

	x := c.X
	if !c.Update(tick, 1.0, &cfg) {
		t.Error("collected coin should report expired")
	}
	if c.X != x {
		t.Error("collected coin should stop moving")
	}
}

func TestCoinMovesSlowerThanObstacles(t *testing.T) {
	cfg := config.Default()
	c := NewCoin(&cfg, 0, 200)
	o := NewObstacle(KindRock, &cfg)

	for i := 0; i < 10; i++ {
		c.Update(tick, 1.0, &cfg)
		o.Update(tick, 1.0, &cfg)
	}

	coinTravel := cfg.World.Width - c.X
	obstacleTravel := cfg.World.Width - o.X
	if coinTravel >= obstacleTravel {
		t.Errorf("coin traveled %v, obstacle %v; coin should be slower",
			coinTravel, obstacleTravel)
	}
}
