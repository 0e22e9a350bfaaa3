package engine

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Clock is a restartable once-per-interval ticker. Every Start and Stop
// moves it to a new generation; ticks carry the generation they were
// started under so late deliveries can be told apart.
type Clock struct {
	clk      clock.Clock
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	gen  uint64
}

// NewClock ticks every second on clk. A nil clk uses the wall clock.
func NewClock(clk clock.Clock) *Clock {
	if clk == nil {
		clk = clock.New()
	}
	return &Clock{clk: clk, interval: time.Second}
}

// Start stops any running ticker and starts a new one calling fn on each
// tick. It returns the new generation.
func (c *Clock) Start(fn func(gen uint64)) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()

	c.gen++
	gen := c.gen
	stop := make(chan struct{})
	c.stop = stop
	ticker := c.clk.Ticker(c.interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case <-stop:
					return
				default:
				}
				fn(gen)
			}
		}
	}()
	return gen
}

// Stop halts the ticker. Stopping a stopped clock does nothing.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Clock) stopLocked() {
	if c.stop == nil {
		return
	}
	close(c.stop)
	c.stop = nil
	c.gen++
}

// Running reports whether a ticker is active.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// IsCurrent reports whether gen belongs to the running ticker.
func (c *Clock) IsCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil && gen == c.gen
}
