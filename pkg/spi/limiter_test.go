package spi

import (
	"sync"
	"testing"
	"time"
)

func TestTPSLimiterAllowsUpToRate(t *testing.T) {
	l := NewTPSLimiter()
	for i := 0; i < 3; i++ {
		if !l.Allow("greet", 3, time.Minute) {
			t.Fatalf("call %d unexpectedly denied", i)
		}
	}
	if l.Allow("greet", 3, time.Minute) {
		t.Fatal("4th call within the window should be denied")
	}
}

func TestTPSLimiterResetsAfterInterval(t *testing.T) {
	l := NewTPSLimiter()
	if !l.Allow("greet", 1, 10*time.Millisecond) {
		t.Fatal("first call should be allowed")
	}
	if l.Allow("greet", 1, 10*time.Millisecond) {
		t.Fatal("second call before the window elapses should be denied")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Allow("greet", 1, 10*time.Millisecond) {
		t.Fatal("call after the window elapses should be allowed again")
	}
}

func TestTPSLimiterBucketsAreIndependentPerName(t *testing.T) {
	l := NewTPSLimiter()
	if !l.Allow("a", 1, time.Minute) {
		t.Fatal("bucket a should allow its first call")
	}
	if !l.Allow("b", 1, time.Minute) {
		t.Fatal("bucket b must not share a's exhausted token")
	}
}

func TestTPSLimiterConcurrentAdmitsExactlyRate(t *testing.T) {
	l := NewTPSLimiter()
	const rate = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("greet", rate, time.Minute) {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != rate {
		t.Fatalf("admitted = %d, want exactly %d under concurrent load", admitted, rate)
	}
}
