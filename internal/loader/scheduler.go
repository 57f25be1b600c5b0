package loader

import (
	"context"
	"sync"
	"time"
)

// Scheduler owns the periodic refresh ticker. Start and Stop bound its
// lifetime explicitly so repeated activations never leak a timer; both are
// safe to call from any goroutine.
type Scheduler struct {
	loader   *Loader
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewScheduler creates a scheduler; a non-positive interval defaults to one
// minute.
func NewScheduler(l *Loader, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{loader: l, interval: interval}
}

// Start begins polling. A tick that lands while a refresh is still running
// starts another one; there is no overlap guard because snapshot publication
// is last-write-wins.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	go func(stop <-chan struct{}) {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				// Background context: Stop only halts future triggers,
				// it never cancels a refresh already under way.
				go s.loader.Refresh(context.Background())
			case <-stop:
				return
			}
		}
	}(s.stop)
}

// Stop ends periodic polling. In-flight refreshes are not cancelled; they
// finish and publish normally.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}
