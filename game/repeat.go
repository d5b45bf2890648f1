package game

import "time"

// Repeater fires an action at a fixed wall-clock interval while a control is
// held. The frame loop polls it; it never spawns timers of its own.
type Repeater struct {
	interval time.Duration
	action   func()
	next     time.Time
	active   bool
}

// NewRepeater returns a stopped repeater.
func NewRepeater(interval time.Duration, action func()) *Repeater {
	return &Repeater{interval: interval, action: action}
}

// Start arms the repeater. The first repeat is one interval after now.
func (r *Repeater) Start(now time.Time) {
	r.active = true
	r.next = now.Add(r.interval)
}

// Poll fires the action if an interval has elapsed and reports whether it did.
// At most one action runs per poll; a poll that falls behind resyncs to now.
func (r *Repeater) Poll(now time.Time) bool {
	if !r.active || now.Before(r.next) {
		return false
	}
	r.action()
	r.next = r.next.Add(r.interval)
	if !r.next.After(now) {
		r.next = now.Add(r.interval)
	}
	return true
}

// Stop disarms the repeater.
func (r *Repeater) Stop() {
	r.active = false
}

// Active reports whether the repeater is armed.
func (r *Repeater) Active() bool {
	return r.active
}
