package gesture

import (
	"sync"
	"testing"
	"time"
)

// fixedClock lets tests advance the recognizer's notion of time manually.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time {
	return c.t
}

func (c *fixedClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestRecognizer(historySize int, minConfidence float64, cooldown time.Duration) (*Recognizer, *fixedClock) {
	clock := &fixedClock{t: time.Unix(1000, 0)}
	r := NewRecognizer(historySize, minConfidence, cooldown)
	r.now = clock.now
	return r, clock
}

func TestRecognizerConfidenceThreshold(t *testing.T) {
	r, _ := newTestRecognizer(0, 0.6, 0)

	if got := r.Observe(Sample{Kind: KindJump, Confidence: 0.5}); got != KindNone {
		t.Errorf("low-confidence jump = %v, expected None", got)
	}
	if got := r.Observe(Sample{Kind: KindJump, Confidence: 0.9}); got != KindJump {
		t.Errorf("high-confidence jump = %v, expected Jump", got)
	}
}

func TestRecognizerIdleSuppressed(t *testing.T) {
	r, _ := newTestRecognizer(0, 0.0, 0)

	if got := r.Observe(Sample{Kind: KindIdle, Confidence: 1.0}); got != KindNone {
		t.Errorf("idle = %v, expected None", got)
	}
	if got := r.Observe(Sample{Kind: KindNone, Confidence: 1.0}); got != KindNone {
		t.Errorf("none = %v, expected None", got)
	}
}

func TestRecognizerCooldown(t *testing.T) {
	r, clock := newTestRecognizer(0, 0.0, 500*time.Millisecond)

	if got := r.Observe(Sample{Kind: KindJump, Confidence: 1.0}); got != KindJump {
		t.Fatalf("first jump = %v, expected Jump", got)
	}

	// Inside the cooldown window, actions are suppressed.
	clock.advance(200 * time.Millisecond)
	if got := r.Observe(Sample{Kind: KindJump, Confidence: 1.0}); got != KindNone {
		t.Errorf("jump inside cooldown = %v, expected None", got)
	}

	// After the cooldown elapses, actions pass again.
	clock.advance(400 * time.Millisecond)
	if got := r.Observe(Sample{Kind: KindCrouch, Confidence: 1.0}); got != KindCrouch {
		t.Errorf("crouch after cooldown = %v, expected Crouch", got)
	}
}

func TestRecognizerSmoothing(t *testing.T) {
	r, _ := newTestRecognizer(5, 0.0, 0)

	// A single noisy crouch among consistent jumps should not win.
	for i := 0; i < 4; i++ {
		r.Observe(Sample{Kind: KindJump, Confidence: 0.9})
	}
	if got := r.Observe(Sample{Kind: KindCrouch, Confidence: 0.9}); got != KindJump {
		t.Errorf("smoothed result = %v, expected Jump to dominate", got)
	}
}

func TestKeyboardBackend(t *testing.T) {
	k := NewKeyboard(0, 0.5, 0)

	if k.Name() != "keyboard" {
		t.Errorf("Name() = %q", k.Name())
	}

	// No key pressed: nothing to report.
	if got := k.Poll(); got != KindNone {
		t.Errorf("Poll without input = %v, expected None", got)
	}

	if !k.SetKey('f') {
		t.Error("SetKey('f') should be accepted")
	}
	if got := k.Poll(); got != KindJump {
		t.Errorf("Poll after F = %v, expected Jump", got)
	}

	// The slot drains on Poll.
	if got := k.Poll(); got != KindNone {
		t.Errorf("second Poll = %v, expected None", got)
	}

	// Open palm maps to idle, which is not actionable.
	k.SetKey('o')
	if got := k.Poll(); got != KindNone {
		t.Errorf("Poll after O = %v, expected None", got)
	}

	if k.SetKey('x') {
		t.Error("SetKey('x') should be rejected")
	}
}

func TestCellLastWriteWins(t *testing.T) {
	var c Cell

	c.Put(Sample{Kind: KindJump, Confidence: 0.5})
	c.Put(Sample{Kind: KindCrouch, Confidence: 0.8})

	s, ok := c.Take()
	if !ok {
		t.Fatal("Take() should return the stored sample")
	}
	if s.Kind != KindCrouch {
		t.Errorf("Take() = %v, expected the later Crouch write", s.Kind)
	}

	if _, ok := c.Take(); ok {
		t.Error("second Take() should find the slot empty")
	}
}

func TestCellConcurrentAccess(t *testing.T) {
	var c Cell
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Put(Sample{Kind: KindJump, Confidence: 1.0})
				c.Take()
			}
		}()
	}
	wg.Wait()
}
