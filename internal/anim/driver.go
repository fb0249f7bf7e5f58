package anim

import (
	"math"
	"time"
)

// Policy selects how a driver's phase behaves at cycle boundaries.
type Policy int

const (
	// PingPong oscillates 0→1 over one cycle then 1→0 over the next,
	// so the full period is twice the cycle duration.
	PingPong Policy = iota
	// Wrap rises 0→1 over one cycle then jumps back to 0 (sawtooth).
	// Used for rotation effects where wrap-around keeps visual continuity.
	Wrap
)

// Driver advances a phase in [0,1] from wall-clock time and pushes
// snapshots to subscribers. Each independently animated element owns
// exactly one driver; drivers are never shared, even with identical
// parameters, so elements drift freely out of phase with each other.
//
// A driver is single-goroutine: the owning element calls Tick once per
// rendered frame from the game loop. Nothing here locks.
type Driver struct {
	cycle  time.Duration
	policy Policy

	start   time.Time
	stopped bool

	subs   []subscription
	nextID int

	now func() time.Time // overridable in tests
}

type subscription struct {
	id int
	fn func(phase float64)
}

// StartDriver begins a new animation at phase 0.
func StartDriver(cycle time.Duration, policy Policy) *Driver {
	d := &Driver{
		cycle:  cycle,
		policy: policy,
		now:    time.Now,
	}
	d.start = d.now()
	return d
}

// Subscribe registers a callback invoked with the phase on every Tick.
// The returned closure removes the subscription and is safe to call more
// than once. Subscribing to a stopped driver is a no-op: the callback is
// never invoked and the returned closure does nothing.
func (d *Driver) Subscribe(fn func(phase float64)) (unsubscribe func()) {
	if d.stopped {
		return func() {}
	}
	id := d.nextID
	d.nextID++
	d.subs = append(d.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range d.subs {
			if s.id == id {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Tick advances the driver to the current wall-clock phase and notifies
// subscribers in subscription order. No-op after Stop. Callbacks may stop
// the driver or unsubscribe other subscriptions mid-tick; anything silenced
// that way is not invoked for the remainder of the tick.
func (d *Driver) Tick() {
	if d.stopped {
		return
	}
	phase := d.Phase()
	snapshot := make([]subscription, len(d.subs))
	copy(snapshot, d.subs)
	for _, s := range snapshot {
		if d.stopped {
			return
		}
		if !d.subscribed(s.id) {
			continue
		}
		s.fn(phase)
	}
}

func (d *Driver) subscribed(id int) bool {
	for _, s := range d.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

// Phase returns the current phase without notifying anyone. A stopped
// driver reports 0: its owner is being torn down and must not paint from
// it anyway.
func (d *Driver) Phase() float64 {
	if d.stopped {
		return 0
	}
	elapsed := d.now().Sub(d.start)
	t := elapsed.Seconds() / d.cycle.Seconds()
	switch d.policy {
	case Wrap:
		return t - math.Floor(t)
	default: // PingPong
		u := math.Mod(t, 2)
		if u < 0 {
			u += 2
		}
		if u <= 1 {
			return u
		}
		return 2 - u
	}
}

// Stop halts the driver. Idempotent and synchronous: once it returns, no
// subscriber callback will ever fire again. Owners call this exactly once
// on teardown; a forgotten Stop leaks a driver that keeps invoking
// callbacks against a dead element.
func (d *Driver) Stop() {
	d.stopped = true
	d.subs = nil
}

// Stopped reports whether Stop has been called.
func (d *Driver) Stopped() bool {
	return d.stopped
}
