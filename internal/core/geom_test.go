package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFInset(t *testing.T) {
	r := NewRectF(10, 20, 50, 60).Inset(5)

	if r.X != 15 || r.Y != 25 {
		t.Errorf("Inset origin = (%v, %v), expected (15, 25)", r.X, r.Y)
	}
	if r.W != 40 || r.H != 50 {
		t.Errorf("Inset size = (%v, %v), expected (40, 50)", r.W, r.H)
	}
}

func TestRectFInsetCollapses(t *testing.T) {
	// Margin larger than half the extent collapses to a zero-size rect
	// centered in the original; it must never go negative.
	r := NewRectF(0, 0, 6, 4).Inset(5)

	if r.W != 0 || r.H != 0 {
		t.Errorf("over-inset rect has size (%v, %v), expected (0, 0)", r.W, r.H)
	}
	if r.X != 3 || r.Y != 2 {
		t.Errorf("over-inset rect centered at (%v, %v), expected (3, 2)", r.X, r.Y)
	}
	if r.Intersects(NewRectF(0, 0, 100, 100)) {
		t.Error("zero-size rect should not intersect anything")
	}
}

func TestErosionMarginSemantics(t *testing.T) {
	// A 5px erosion means overlaps of less than 5px on all sides must not
	// register, while overlaps beyond 5px on both axes must.
	obstacle := NewRectF(100, 100, 50, 60)

	tests := []struct {
		name     string
		player   RectF
		expected bool
	}{
		{"4px corner overlap", NewRectF(54, 44, 50, 60), false},
		{"exactly 5px overlap", NewRectF(55, 45, 50, 60), false},
		{"6px overlap both axes", NewRectF(56, 46, 50, 60), true},
		{"deep overlap", NewRectF(90, 90, 50, 60), true},
		{"identical boxes", NewRectF(100, 100, 50, 60), true},
		{"deep x, shallow y", NewRectF(90, 44, 50, 60), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.player.Intersects(obstacle.Inset(5))
			if got != tc.expected {
				t.Errorf("eroded intersect = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIsFinite(t *testing.T) {
	if !NewRectF(1, 2, 3, 4).IsFinite() {
		t.Error("plain rect should be finite")
	}
	if NewRectF(math.NaN(), 2, 3, 4).IsFinite() {
		t.Error("NaN X should not be finite")
	}
	if NewRectF(1, math.Inf(1), 3, 4).IsFinite() {
		t.Error("Inf Y should not be finite")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
