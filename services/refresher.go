package services

import (
	"sync"
	"time"
)

// DefaultRefreshInterval is how often a view's query window is moved forward
const DefaultRefreshInterval = 5 * time.Minute

// Ticker is the subset of *time.Ticker the refresher depends on
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerFactory creates a running ticker with the given period
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// NewTimeTicker wraps time.NewTicker
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Refresher calls onTick on every tick until stopped
type Refresher struct {
	interval time.Duration
	ticker   Ticker
	onTick   func(now time.Time)

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
	exited  chan struct{}
}

// NewRefresher starts a refresher. Stop must be called to release the ticker.
func NewRefresher(interval time.Duration, newTicker TickerFactory, onTick func(now time.Time)) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if newTicker == nil {
		newTicker = NewTimeTicker
	}

	r := &Refresher{
		interval: interval,
		ticker:   newTicker(interval),
		onTick:   onTick,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Refresher) run() {
	defer close(r.exited)
	for {
		select {
		case <-r.done:
			return
		case now := <-r.ticker.C():
			// Stop may have raced with the tick
			select {
			case <-r.done:
				return
			default:
			}
			r.onTick(now)
		}
	}
}

// Reset restarts the countdown to the next tick
func (r *Refresher) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.ticker.Reset(r.interval)
}

// Stop clears the ticker and waits for the refresh goroutine to exit. It is safe to call more than once.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		<-r.exited
		return
	}
	r.stopped = true
	r.ticker.Stop()
	close(r.done)
	r.mu.Unlock()

	<-r.exited
}

// Interval returns the refresh period
func (r *Refresher) Interval() time.Duration {
	return r.interval
}
