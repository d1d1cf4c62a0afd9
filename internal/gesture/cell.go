package gesture

import "sync"

// Cell is a single-slot, last-write-wins handoff between the input side and
// the simulation. Only the freshest sample matters, so there is no queue and
// no backpressure: a new write simply replaces the previous value, and Take
// drains the slot.
type Cell struct {
	mu     sync.Mutex
	sample Sample
	full   bool
}

// Put stores a sample, replacing any value already present.
func (c *Cell) Put(s Sample) {
	c.mu.Lock()
	c.sample = s
	c.full = true
	c.mu.Unlock()
}

// Take removes and returns the stored sample, if any.
func (c *Cell) Take() (Sample, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.full {
		return Sample{}, false
	}
	c.full = false
	return c.sample, true
}
