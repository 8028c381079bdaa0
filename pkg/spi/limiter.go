package spi

import (
	"sync"
	"sync/atomic"
	"time"
)

// TPSLimiter is the token-bucket collaborator sample from §4.7: per
// (name, rate, interval), tokens reset to rate once interval has elapsed
// since the last reset, and each admission attempt consumes one token via
// compare-and-swap. It is not wired into request handling here — the
// concrete transport it would gate is out of scope (§1) — but demonstrates
// the collaborator contract the Activate Selector and Filter Assembly
// compose around.
type TPSLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tpsBucket
}

type tpsBucket struct {
	tokens    atomic.Int64
	lastReset atomic.Int64 // UnixNano
}

// NewTPSLimiter returns an empty limiter; buckets are created lazily per
// name on first Allow call.
func NewTPSLimiter() *TPSLimiter {
	return &TPSLimiter{buckets: make(map[string]*tpsBucket)}
}

// Allow attempts to admit one call under name's bucket, configured with
// rate tokens per interval. The reset window is coarse and not aligned to
// wall-clock boundaries (§4.7): it starts counting from the first access,
// not from a fixed epoch.
func (l *TPSLimiter) Allow(name string, rate int64, interval time.Duration) bool {
	b := l.bucketFor(name, rate)

	now := time.Now().UnixNano()
	if last := b.lastReset.Load(); now-last > interval.Nanoseconds() {
		if b.lastReset.CompareAndSwap(last, now) {
			b.tokens.Store(rate)
		}
	}

	for {
		cur := b.tokens.Load()
		if cur <= 0 {
			return false
		}
		if b.tokens.CompareAndSwap(cur, cur-1) {
			return true
		}
	}
}

func (l *TPSLimiter) bucketFor(name string, rate int64) *tpsBucket {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[name]
	if !ok {
		b = &tpsBucket{}
		b.tokens.Store(rate)
		b.lastReset.Store(time.Now().UnixNano())
		l.buckets[name] = b
	}
	return b
}
