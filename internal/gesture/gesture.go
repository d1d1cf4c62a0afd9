// Package gesture translates a continuous input signal (camera frames or
// simulated keys) into the discrete jump/crouch/idle action vocabulary the
// game consumes. The session only ever depends on the Controller interface;
// backends are probed once at startup and are freely interchangeable.
package gesture

import "time"

// Kind is a recognized gesture.
type Kind int

const (
	KindNone Kind = iota // Nothing recognized, or result suppressed
	KindIdle             // Open palm - no action
	KindJump             // Fist
	KindCrouch           // Index finger
)

// String returns a human-readable name for the gesture.
func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindJump:
		return "jump"
	case KindCrouch:
		return "crouch"
	default:
		return "none"
	}
}

// Controller is a pluggable gesture input backend. Poll is called once per
// simulation tick and must never block; it returns KindNone when nothing
// actionable was recognized, when confidence is below threshold, or while
// the cooldown since the last non-None result has not elapsed.
type Controller interface {
	// Poll returns the freshest recognized action, applying smoothing,
	// confidence gating and cooldown.
	Poll() Kind

	// Name identifies the backend for logs and the HUD.
	Name() string

	// Close releases any device resources.
	Close() error
}

// Sample is one raw recognition result before smoothing.
type Sample struct {
	Kind       Kind
	Confidence float64
}

// Recognizer applies the shared post-processing every backend needs:
// a weighted-history smoother, a confidence threshold, and a minimum
// interval between two consecutive actionable results.
type Recognizer struct {
	history       []Sample
	historySize   int
	minConfidence float64
	cooldown      time.Duration
	lastAction    time.Time
	now           func() time.Time
}

// NewRecognizer creates a recognizer with the given tuning.
// historySize <= 0 disables smoothing.
func NewRecognizer(historySize int, minConfidence float64, cooldown time.Duration) *Recognizer {
	return &Recognizer{
		historySize:   historySize,
		minConfidence: minConfidence,
		cooldown:      cooldown,
		now:           time.Now,
	}
}

// Observe feeds one raw sample and returns the actionable gesture, or
// KindNone if the result is idle, low-confidence, or inside the cooldown
// window.
func (r *Recognizer) Observe(s Sample) Kind {
	kind, confidence := r.smooth(s)

	if kind == KindNone || kind == KindIdle {
		return KindNone
	}
	if confidence < r.minConfidence {
		return KindNone
	}

	now := r.now()
	if !r.lastAction.IsZero() && now.Sub(r.lastAction) < r.cooldown {
		return KindNone
	}
	r.lastAction = now
	return kind
}

// smooth folds the sample into the history window and returns the dominant
// gesture weighted by occurrence count times accumulated confidence, with
// the mean confidence over the window.
func (r *Recognizer) smooth(s Sample) (Kind, float64) {
	if r.historySize <= 0 {
		return s.Kind, s.Confidence
	}

	r.history = append(r.history, s)
	if len(r.history) > r.historySize {
		r.history = r.history[1:]
	}

	counts := make(map[Kind]int)
	confidences := make(map[Kind]float64)
	total := 0.0
	for _, h := range r.history {
		counts[h.Kind]++
		confidences[h.Kind] += h.Confidence
		total += h.Confidence
	}

	best := KindNone
	bestScore := -1.0
	for kind, count := range counts {
		score := float64(count) * confidences[kind]
		if score > bestScore {
			best = kind
			bestScore = score
		}
	}

	return best, total / float64(len(r.history))
}
