package spi

import "sync"

// Holder is a lazily-populated single cell used for double-checked
// initialization of singletons (§3 Data Model). GetOrInit runs build at most
// once; if build fails, the failure is cached and re-raised on every
// subsequent call without re-running build — this is what makes adaptive
// synthesis failures (§4.5, §5) sticky.
type Holder[V any] struct {
	mu     sync.Mutex
	once   bool
	value  V
	err    error
	failed bool
}

// GetOrInit returns the cached value, building it via build() on first call.
// Concurrent callers block on the same Holder until the first build
// completes; all observe the same result, success or failure.
func (h *Holder[V]) GetOrInit(build func() (V, error)) (V, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.once {
		return h.value, h.err
	}
	if h.failed {
		return h.value, h.err
	}

	v, err := build()
	if err != nil {
		h.failed = true
		h.err = err
		return h.value, h.err
	}

	h.value = v
	h.once = true
	return h.value, nil
}

// Loaded returns the published value and whether GetOrInit has successfully
// completed at least once, without triggering a build (§4.4 GetLoaded).
func (h *Holder[V]) Loaded() (V, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.value, h.once
}

// Reset clears a previously cached success so the next GetOrInit rebuilds.
// Sticky failures are NOT cleared by Reset — a StickyAdaptiveFailure is
// deliberately permanent per §5; callers that need to retry after fixing a
// root cause must construct a new Holder.
func (h *Holder[V]) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failed {
		return
	}
	var zero V
	h.value = zero
	h.once = false
}
