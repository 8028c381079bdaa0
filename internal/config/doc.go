// Package config provides the concrete Source adapters that back
// extframe/pkg/spi's Resource Reader (§4.1): locating the fixed search
// directories, parsing their resource files, and validating and applying
// the records they contain to an ExtensionPoint.
//
// # Search Locations
//
// The Resource Reader (§4.1) probes three fixed locations, in this fixed
// order, and combines every match rather than letting a later one shadow an
// earlier one:
//
//  1. Embedded — compiled into the binary via embed.FS, the extension
//     loader's own shipped defaults.
//  2. Shared — a deployment-wide directory (/etc/extframe by default),
//     for operator-managed, host-wide overrides.
//  3. User — a per-user directory (~/.config/extframe), for personal
//     overrides.
//
// DefaultSources assembles all three into the []spi.Source slice
// spi.LoadExtensionRecords expects. A source that doesn't exist on disk is
// not an error — Read simply reports found=false for every resource name.
//
// # Hot Reload
//
// ResourceWatcher watches the shared and user directories with fsnotify and
// debounces bursts of filesystem activity into a single OnChange call. The
// expected callback re-runs LoadAndApply against the same ExtensionPoint;
// this is safe to call repeatedly since re-registering an unchanged
// name/implementation pair is a no-op.
//
// # Diagnostics
//
// LoadAndApply validates every parsed record's names (ValidateEntityName)
// and checks that its implementation id is non-empty (ValidateRequired)
// before registration, and resolves {{ .Env.X }}
// placeholders in implementation ids before handing records to
// spi.ApplyRecords. Every parse, validation, or template failure is both
// recorded non-fatally on the ExtensionPoint (visible via a later
// NoSuchExtensionError's LoadErrors) and collected into a
// ConfigurationErrorCollection, whose summary is logged once per call.
package config
