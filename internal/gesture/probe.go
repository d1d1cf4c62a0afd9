package gesture

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// ErrUnavailable is returned by a backend factory whose device or model
// cannot be used on this machine. The probe chain logs it and moves on;
// it is never fatal.
var ErrUnavailable = errors.New("gesture: backend unavailable")

// Factory constructs one backend, or reports it unavailable.
type Factory struct {
	Name string
	New  func() (Controller, error)
}

// Probe tries each factory in order and returns the first backend that
// initializes. Camera-based recognizers register themselves here when this
// build carries one; the keyboard simulator is always appended last, so
// Probe never returns nil and a missing camera degrades to keyboard-only
// control with a warning.
func Probe(factories []Factory, historySize int, minConfidence float64, cooldown time.Duration, logger *log.Logger) Controller {
	for _, f := range factories {
		ctrl, err := f.New()
		if err != nil {
			logger.Warn("gesture backend unavailable", "backend", f.Name, "error", err)
			continue
		}
		logger.Info("gesture backend selected", "backend", f.Name)
		return ctrl
	}
	logger.Info("gesture backend selected", "backend", "keyboard")
	return NewKeyboard(historySize, minConfidence, cooldown)
}
