package spi

import "math"

// WarmupWeight implements the load-balancer warmup weight contract (§4.6a):
// while 0 < uptimeMs < warmupMs, the effective weight ramps linearly from 1
// up to configuredWeight; outside that window the configured weight applies
// unchanged. A negative configuredWeight passes through untouched — callers
// treat negative as "disabled".
func WarmupWeight(uptimeMs, warmupMs int64, configuredWeight int) int {
	if configuredWeight < 0 {
		return configuredWeight
	}
	if uptimeMs <= 0 || uptimeMs >= warmupMs || warmupMs <= 0 {
		return configuredWeight
	}

	ramp := int(math.Round(float64(uptimeMs) / (float64(warmupMs) / float64(configuredWeight))))
	if ramp < 1 {
		return 1
	}
	if ramp > configuredWeight {
		return configuredWeight
	}
	return ramp
}
