// Package logging provides leveled, slog-backed logging for the extension
// loader and its CLI.
//
// Call InitForCLI once at startup, then log through the package-level
// Debug/Info/Warn/Error/Audit functions, tagging each call with a subsystem
// name ("ResourceReader", "ExtensionPoint", "Adaptive", "Activate", ...).
// Injection failures are logged here rather than returned, per the loader's
// best-effort injection contract. Sticky adaptive-synthesis errors are logged
// once, when they first occur, and are still returned to every caller.
package logging
