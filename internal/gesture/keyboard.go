package gesture

import "time"

// Keyboard is the keyboard-simulated gesture backend: F maps to a fist
// (jump), I to an index finger (crouch), O to an open palm (idle). It exists
// so the gesture pipeline can be exercised without any capture device, and
// it is the terminal fallback in the startup probe chain.
type Keyboard struct {
	cell *Cell
	rec  *Recognizer
}

// NewKeyboard creates the keyboard backend.
func NewKeyboard(historySize int, minConfidence float64, cooldown time.Duration) *Keyboard {
	return &Keyboard{
		cell: &Cell{},
		rec:  NewRecognizer(historySize, minConfidence, cooldown),
	}
}

// SetKey records a simulated gesture key press. Returns false for keys that
// do not map to a gesture.
func (k *Keyboard) SetKey(key rune) bool {
	var kind Kind
	switch key {
	case 'f', 'F':
		kind = KindJump
	case 'i', 'I':
		kind = KindCrouch
	case 'o', 'O':
		kind = KindIdle
	default:
		return false
	}
	// Simulated input is unambiguous.
	k.cell.Put(Sample{Kind: kind, Confidence: 1.0})
	return true
}

// Poll drains the handoff cell and runs the shared recognizer pipeline.
func (k *Keyboard) Poll() Kind {
	s, ok := k.cell.Take()
	if !ok {
		return KindNone
	}
	return k.rec.Observe(s)
}

// Name identifies the backend.
func (k *Keyboard) Name() string {
	return "keyboard"
}

// Close releases nothing; the keyboard backend holds no device.
func (k *Keyboard) Close() error {
	return nil
}
