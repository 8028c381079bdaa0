// Package greeter is a small, fully wired example ExtensionPoint built on
// top of extframe/pkg/spi: one interface (Greeter), two named
// implementations discovered via a resource record, a logging wrapper, a
// dependency-injected implementation, an adaptive dispatcher, and two
// activate-tagged candidates for the Activate Selector.
//
// It exists to exercise every layer of the loader end to end against a
// realistic, if tiny, domain rather than spi's own synthetic test fixtures:
// discovery, injection, wrapping, adaptive dispatch, and activation all meet
// here in one package.
//
// Usage:
//
//	reg := spi.NewRegistry()
//	ep, err := greeter.Register(reg)
//	g := ep.MustGetAdaptive()
//	g.Greet(spi.NewURL("greeter", map[string]string{"greeter.type": "formal"}))
package greeter
