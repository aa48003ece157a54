package ratelimit

import (
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
)

type record struct {
	count       int
	windowStart time.Time
}

// Result of a limiter check. Message and RetryAfter are only set on
// rejection.
type Result struct {
	Allowed    bool
	Message    string
	RetryAfter time.Duration
}

// Limiter tracks per-client request counts in a fixed time window. It is
// an explicitly-owned store handed to request handlers, never a package
// singleton: state lives for the process lifetime and is lost on
// restart, which is acceptable for this best-effort, single-process
// policy.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*record
	limit   int
	window  time.Duration
	logger  *zap.Logger

	// now is swappable so tests can advance the clock.
	now func() time.Time

	sweepOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
}

func New(limit int, window time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{
		records: make(map[string]*record),
		limit:   limit,
		window:  window,
		logger:  logger,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
}

// Check records one request attempt for clientKey and reports whether it
// is allowed. The read-modify-write on a record is a single atomic unit
// under the mutex: two concurrent requests can never both observe
// "count still under limit" and both proceed.
func (l *Limiter) Check(clientKey string) Result {
	if clientKey == "" {
		// Without an identity there is nothing to limit against.
		l.logger.Warn("rate limiter: client key not provided, allowing request")
		return Result{Allowed: true}
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, exists := l.records[clientKey]
	if !exists || now.Sub(rec.windowStart) >= l.window {
		l.records[clientKey] = &record{count: 1, windowStart: now}
		return Result{Allowed: true}
	}

	if rec.count >= l.limit {
		remaining := l.window - now.Sub(rec.windowStart)
		minutes := int(math.Ceil(remaining.Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		return Result{
			Allowed:    false,
			Message:    fmt.Sprintf("You have exceeded the request limit. Please try again in about %d minutes.", minutes),
			RetryAfter: remaining,
		}
	}

	rec.count++
	return Result{Allowed: true}
}

// StartSweep launches the background cleanup goroutine that deletes
// expired records every half window to bound memory. Tests that do not
// exercise the sweep must not call it.
func (l *Limiter) StartSweep() {
	l.sweepOnce.Do(func() {
		go l.sweepLoop()
	})
}

func (l *Limiter) sweepLoop() {
	ticker := time.NewTicker(l.window / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, rec := range l.records {
		if now.Sub(rec.windowStart) >= l.window {
			delete(l.records, key)
		}
	}
}

// Stop terminates the sweep goroutine if it was started.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// Len reports the number of tracked client records.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
