package spi

import "testing"

func TestWarmupWeightNegativePassthrough(t *testing.T) {
	if got := WarmupWeight(100, 1000, -1); got != -1 {
		t.Fatalf("WarmupWeight = %d, want passthrough -1", got)
	}
}

func TestWarmupWeightBeforeUptime(t *testing.T) {
	if got := WarmupWeight(0, 1000, 100); got != 100 {
		t.Fatalf("WarmupWeight at uptime=0 = %d, want configured weight 100", got)
	}
}

func TestWarmupWeightAfterWarmupWindow(t *testing.T) {
	if got := WarmupWeight(2000, 1000, 100); got != 100 {
		t.Fatalf("WarmupWeight past warmupMs = %d, want configured weight 100", got)
	}
}

func TestWarmupWeightRampsWithinWindow(t *testing.T) {
	got := WarmupWeight(500, 1000, 100)
	if got < 1 || got > 100 {
		t.Fatalf("WarmupWeight mid-ramp = %d, want within [1, 100]", got)
	}
	// Roughly half the configured weight at the halfway point.
	if got < 40 || got > 60 {
		t.Fatalf("WarmupWeight at 50%% uptime = %d, want near 50", got)
	}
}

func TestWarmupWeightNeverBelowOne(t *testing.T) {
	if got := WarmupWeight(1, 1000000, 100); got < 1 {
		t.Fatalf("WarmupWeight = %d, must never ramp below 1", got)
	}
}

func TestWarmupWeightZeroWarmupWindow(t *testing.T) {
	if got := WarmupWeight(10, 0, 100); got != 100 {
		t.Fatalf("WarmupWeight with warmupMs=0 = %d, want configured weight passthrough", got)
	}
}
