package greeter

import (
	"extframe/pkg/logging"
	"extframe/pkg/spi"
)

// loggingWrapper decorates every named Greeter with an info-level log line,
// demonstrating a wrapper class composed around named instances in
// registration order (§4.2, §4.4).
type loggingWrapper struct {
	inner Greeter
}

func (w *loggingWrapper) Greet(url *spi.URL) string {
	result := w.inner.Greet(url)
	logging.Info("Greeter", "greeted %q -> %q", url.Param("name", ""), result)
	return result
}
