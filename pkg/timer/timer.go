// Package timer implements the pomodoro countdown: a once-per-second tick
// over a single "seconds remaining" value, cancellable at any time with no
// side effects beyond stopping the tick.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// DefaultPomodoroSeconds is the classic 25-minute focus block.
const DefaultPomodoroSeconds = 1500

// Countdown counts seconds down from a configured duration.
type Countdown struct {
	mu        sync.Mutex
	duration  int
	remaining int
	running   bool
	stop      chan struct{}

	// Interval between ticks; overridable in tests.
	Interval time.Duration
}

// New returns a stopped countdown of the given length. Non-positive
// seconds fall back to the pomodoro default.
func New(seconds int) *Countdown {
	if seconds <= 0 {
		seconds = DefaultPomodoroSeconds
	}
	return &Countdown{duration: seconds, remaining: seconds, Interval: time.Second}
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Tick advances the countdown by one second and reports whether it just
// reached zero.
func (c *Countdown) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Start begins ticking. onTick is called after every tick with the seconds
// left; onDone fires once when the countdown reaches zero. Calling Start on
// a running or finished countdown is a no-op. Both callbacks may be nil.
func (c *Countdown) Start(onTick func(remaining int), onDone func()) {
	c.mu.Lock()
	if c.running || c.remaining <= 0 {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.stop = make(chan struct{})
	stop := c.stop
	interval := c.Interval
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				done := c.Tick()
				if onTick != nil {
					onTick(c.Remaining())
				}
				if done {
					c.Pause()
					if onDone != nil {
						onDone()
					}
					return
				}
			}
		}
	}()
}

// Pause stops ticking without touching the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.stop)
}

// Reset pauses the countdown and restores the full duration.
func (c *Countdown) Reset() {
	c.Pause()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.duration
}

// Display renders the remaining time as MM:SS.
func (c *Countdown) Display() string {
	r := c.Remaining()
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}
