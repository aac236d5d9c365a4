// Package driver holds the animation state machine: Stopped ⇄ Running,
// a continuous animation clock, and the single-pending-frame scheduling
// guard. It is deliberately free of goroutines and timers; the host's
// frame scheduler (bubbletea tick commands, or a plain loop in headless
// mode) drives it by calling Tick with wall-clock readings.
package driver

import "time"

// State is the driver lifecycle state.
type State int

const (
	// Stopped means no frames are being scheduled.
	Stopped State = iota
	// Running means each tick schedules the next.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Driver advances an animation clock while running. All methods must be
// called from the same goroutine; the model matches the single-threaded
// cooperative loop it drives.
type Driver struct {
	state   State
	clock   time.Duration // accumulated animation time
	mark    time.Time     // wall time of the last advance while running
	pending bool          // a frame callback is scheduled and not yet delivered

	deadline time.Time // zero means no auto-stop
}

// New returns a stopped driver with a zero clock.
func New() *Driver {
	return &Driver{}
}

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Running reports whether frames are being scheduled.
func (d *Driver) Running() bool { return d.state == Running }

// Seconds returns the animation clock in seconds. The clock only advances
// while running, so pausing freezes the scene rather than rewinding it.
func (d *Driver) Seconds() float64 { return d.clock.Seconds() }

// Start transitions to Running. Idempotent: starting a running driver
// changes nothing, and in particular does not reset the clock.
func (d *Driver) Start(now time.Time) {
	if d.state == Running {
		return
	}
	d.state = Running
	d.mark = now
}

// Stop transitions to Stopped. Idempotent and safe with no frame in
// flight; a frame already scheduled will still arrive but advances
// nothing.
func (d *Driver) Stop() {
	d.state = Stopped
}

// Reset stops the driver and rewinds the animation clock to zero.
func (d *Driver) Reset() {
	d.state = Stopped
	d.clock = 0
	d.pending = false
}

// SetDeadline arms the auto-stop: the first tick at or past the deadline
// performs a normal Stop. A zero time disarms it.
func (d *Driver) SetDeadline(t time.Time) {
	d.deadline = t
}

// ShouldSchedule reports whether the host should schedule a frame
// callback, and marks one pending when it says yes. While a frame is
// pending it keeps answering no, so rapid stop/start toggles between
// ticks can never stack callbacks.
func (d *Driver) ShouldSchedule() bool {
	if d.state != Running || d.pending {
		return false
	}
	d.pending = true
	return true
}

// Tick consumes the pending frame callback and advances the clock to now.
// It returns true when the scene should be redrawn. A tick arriving while
// stopped (scheduled just before a Stop) is absorbed without advancing
// anything.
func (d *Driver) Tick(now time.Time) bool {
	d.pending = false
	if d.state != Running {
		return false
	}

	if now.After(d.mark) {
		d.clock += now.Sub(d.mark)
		d.mark = now
	}

	if !d.deadline.IsZero() && !now.Before(d.deadline) {
		d.Stop()
	}
	return true
}
