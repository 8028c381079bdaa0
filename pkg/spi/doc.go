// Package spi is the extension loader at the heart of this module: discovery,
// instantiation, decoration, activation, and adaptive dispatch of named
// implementations of a Go interface, driven by a URL-shaped configuration
// carrier.
//
// # Concepts
//
// An ExtensionPoint[T] is a registration scope for one interface type T. Its
// implementations partition into three mutually exclusive kinds:
//
//   - named: registered under one or more short names, built on first use
//   - wrapper: decorates another T via a single-argument constructor
//   - adaptive: a static implementation that itself decides, per call, which
//     named implementation to delegate to; at most one per ExtensionPoint
//
// An implementation may additionally be activate-tagged: enlisted into an
// ordered chain automatically when a URL's parameters and a caller-supplied
// group match its predicate (see GetActivate).
//
// Go cannot conjure a new concrete type satisfying an arbitrary interface at
// runtime, so there is no reflect.MakeFunc-style universal proxy here.
// Instead DispatchAdaptive holds the entire decision algorithm (URL
// discovery by getter-scanning, last-to-first key fallback, the "protocol"
// special case, sticky-failure caching via Holder), and each adaptive
// interface gets one mechanically trivial hand-written forwarding type,
// registered like any other implementation via RegisterAdaptive, that calls
// DispatchAdaptive and forwards to the result.
//
// # Usage
//
//	type Greeter interface { Greet(url *spi.URL) string }
//
//	type adaptiveGreeter struct{ ep *spi.ExtensionPoint[Greeter] }
//
//	func (p *adaptiveGreeter) Greet(url *spi.URL) string {
//	    impl, err := p.ep.DispatchAdaptive("Greet", nil, url)
//	    if err != nil {
//	        panic(err)
//	    }
//	    return impl.Greet(url)
//	}
//
//	reg := spi.NewRegistry()
//	ep, _ := spi.ForType[Greeter](reg, spi.Descriptor{
//	    DefaultName:     "friendly",
//	    AdaptiveMethods: map[string][]string{"Greet": {"greeter.type"}},
//	})
//	ep.RegisterNamed("friendly", "friendly-impl", func() Greeter { return &friendlyGreeter{} })
//	ep.RegisterAdaptive("greeter-adaptive", func() Greeter { return &adaptiveGreeter{ep: ep} })
//	g := ep.MustGetAdaptive()
//	g.Greet(spi.NewURL("greeter", map[string]string{"greeter.type": "friendly"}))
package spi
