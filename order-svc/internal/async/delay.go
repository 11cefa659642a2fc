// Package async models the simulated network latency in front of payment and
// reservation completion.
package async

import (
	"context"
	"sync"
	"time"
)

// Pending is a completion scheduled to run after a delay.
type Pending struct {
	mu        sync.Mutex
	timer     *time.Timer
	done      chan struct{}
	cancelled bool
	fired     bool
}

// After runs fn once d has elapsed unless Cancel is called first.
func After(d time.Duration, fn func()) *Pending {
	p := &Pending{done: make(chan struct{})}
	p.timer = time.AfterFunc(d, func() {
		p.mu.Lock()
		if p.cancelled {
			p.mu.Unlock()
			return
		}
		p.fired = true
		p.mu.Unlock()

		defer close(p.done)
		fn()
	})
	return p
}

// Cancel prevents the completion from running. It returns false when the
// completion already started.
func (p *Pending) Cancel() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fired || p.cancelled {
		return false
	}
	p.cancelled = true
	p.timer.Stop()
	close(p.done)
	return true
}

// Done is closed once the completion has finished or was cancelled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks for d, returning early with ctx.Err() if the caller goes away.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
