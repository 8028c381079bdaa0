package spi

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestHolderBuildsOnce(t *testing.T) {
	var h Holder[int]
	var calls atomic.Int32

	build := func() (int, error) {
		calls.Add(1)
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			v, err := h.GetOrInit(build)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[idx] = v
		}(i)
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("build ran %d times, want 1", calls.Load())
	}
	for _, v := range results {
		if v != 42 {
			t.Fatalf("got %d, want 42", v)
		}
	}
}

func TestHolderStickyFailure(t *testing.T) {
	var h Holder[int]
	var calls atomic.Int32
	sentinel := newBadArgument("boom")

	build := func() (int, error) {
		calls.Add(1)
		return 0, sentinel
	}

	_, err1 := h.GetOrInit(build)
	_, err2 := h.GetOrInit(build)

	if err1 != sentinel || err2 != sentinel {
		t.Fatalf("want identical sentinel error both times, got %v / %v", err1, err2)
	}
	if calls.Load() != 1 {
		t.Fatalf("build ran %d times after failure, want 1 (no retry)", calls.Load())
	}
}

func TestHolderLoaded(t *testing.T) {
	var h Holder[int]
	if _, ok := h.Loaded(); ok {
		t.Fatal("Loaded should report false before any GetOrInit")
	}
	h.GetOrInit(func() (int, error) { return 7, nil })
	v, ok := h.Loaded()
	if !ok || v != 7 {
		t.Fatalf("Loaded() = %v, %v; want 7, true", v, ok)
	}
}

func TestHolderResetDoesNotClearFailure(t *testing.T) {
	var h Holder[int]
	sentinel := newBadArgument("boom")
	h.GetOrInit(func() (int, error) { return 0, sentinel })
	h.Reset()
	_, err := h.GetOrInit(func() (int, error) { return 99, nil })
	if err != sentinel {
		t.Fatalf("Reset must not clear a sticky failure, got err=%v", err)
	}
}
