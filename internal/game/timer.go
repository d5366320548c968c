package game

import (
	"time"
)

// Timer drives one per-question countdown. It is the sole progression
// clock in multiplayer mode: clients only render the broadcast value.
// At most one countdown is live at a time; Start cancels any prior run
// and Cancel is safe when nothing is running.
type Timer struct {
	interval time.Duration
	stop     chan struct{}
}

// NewTimer creates an idle timer ticking once per second.
func NewTimer() *Timer {
	return &Timer{interval: time.Second}
}

// NewTimerWithInterval creates a timer with a custom tick interval.
func NewTimerWithInterval(interval time.Duration) *Timer {
	return &Timer{interval: interval}
}

// Start begins a countdown from the given number of seconds. Every
// tick decrements and reports the remaining time; the tick that lands
// at zero or below fires onExpire exactly once and stops the run.
func (t *Timer) Start(seconds int, onTick func(remaining int), onExpire func()) {
	t.Cancel()

	stop := make(chan struct{})
	t.stop = stop
	go t.run(seconds, stop, onTick, onExpire)
}

func (t *Timer) run(seconds int, stop chan struct{}, onTick func(int), onExpire func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	remaining := seconds
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			remaining--
			onTick(remaining)
			if remaining <= 0 {
				onExpire()
				return
			}
		}
	}
}

// Cancel stops the current countdown without firing onExpire.
func (t *Timer) Cancel() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}
