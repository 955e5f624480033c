package work

import (
	"sync"
	"time"
)

// Delayed is a one-shot delayable work item: a function that can be scheduled
// to run once after a delay. Scheduling again before the pending firing
// replaces it; there is never more than one pending firing per item.
type Delayed struct {
	mu    sync.Mutex
	fn    func()
	timer *time.Timer
}

func NewDelayed(fn func()) *Delayed {
	return &Delayed{fn: fn}
}

// Schedule arms the work item to fire once after delay, replacing any
// pending firing. It has no effect on a run already in progress.
func (d *Delayed) Schedule(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, d.fn)
}

// Cancel drops the pending firing, if any. It reports whether a firing was
// actually pending. A run already in progress is not interrupted.
func (d *Delayed) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
