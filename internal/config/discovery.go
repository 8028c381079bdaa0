package config

import (
	"io/fs"

	"extframe/pkg/logging"
	"extframe/pkg/spi"
)

// DefaultSources assembles the three fixed search locations (§4.1) in their
// fixed probe order: embedded, shared, user. A failure to determine the
// user's home directory is logged and the user location is simply omitted,
// rather than failing discovery for the other two locations.
func DefaultSources(embedded fs.ReadFileFS, embeddedPrefix string) []spi.Source {
	sources := []spi.Source{
		NewEmbeddedSource(embedded, embeddedPrefix),
		NewDirectorySource("shared", SharedConfigDir()),
	}

	userDir, err := UserConfigDir()
	if err != nil {
		logging.Warn("ConfigDiscovery", "could not determine user config directory, skipping: %v", err)
		return sources
	}
	return append(sources, NewDirectorySource("user", userDir))
}
