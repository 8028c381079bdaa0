package spi

import "extframe/pkg/logging"

// logInjectionFailure records a best-effort injection error (§4.3, §7): the
// framework logs and discards it, the caller of Get/GetAdaptive never sees
// it.
func logInjectionFailure(typeName string, err error) {
	logging.Warn("Injector", "injection into %s failed and was skipped: %v", typeName, err)
}

func logLoadError(typeName, line, msg string) {
	logging.Warn("ResourceReader", "%s: failed to load %q: %s", typeName, line, msg)
}

func logStickyAdaptiveFailure(typeName string, err error) {
	logging.Error("Adaptive", err, "adaptive construction for %s failed and will not be retried", typeName)
}
