package tableview

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into one call of the latest
// function, made once no trigger has arrived for the quiet period.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	seq     uint64
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger replaces the pending call with fn and restarts the quiet period
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = fn
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.pending == nil {
		// superseded by a later Trigger, Flush or Stop
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Flush runs the pending call now, on the caller's goroutine
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	d.cancelLocked()
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop drops the pending call
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.cancelLocked()
	d.mu.Unlock()
}

// Pending reports whether a call is waiting for the quiet period to end
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) cancelLocked() {
	d.pending = nil
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
