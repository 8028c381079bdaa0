package greeter

import "extframe/pkg/spi"

// Greeter is the demo extension point's interface: produce a greeting for
// the caller described by url.
type Greeter interface {
	Greet(url *spi.URL) string
}

// Signature is a second, smaller extension point that a Greeter
// implementation can depend on via Injectable, demonstrating the Injector
// (§4.3) resolving one ExtensionPoint's instance as another's dependency.
type Signature interface {
	SignOff() string
}

// descriptor declares formalGreeter/friendlyGreeter as Greet-adaptive on the
// "greeter.type" URL parameter, falling back to "friendly" when absent.
func descriptor() spi.Descriptor {
	return spi.Descriptor{
		DefaultName:     "friendly",
		AdaptiveMethods: map[string][]string{"Greet": {"greeter.type"}},
	}
}

// builtinRecords is the equivalent of a resource file shipped inside the
// binary (§4.1's embedded search location): names bound to implementation
// identifiers, parsed the same way a file on disk would be.
const builtinRecords = `
# built-in Greeter implementations
friendly = greeter.FriendlyGreeter
formal   = greeter.FormalGreeter
`

// Register wires a complete Greeter ExtensionPoint into reg: resource
// discovery, named registration, the logging wrapper, activate tags, and the
// adaptive dispatcher. It also registers the supporting Signature
// ExtensionPoint that formalGreeter resolves through injection.
func Register(reg *spi.Registry) (*spi.ExtensionPoint[Greeter], error) {
	sigEP, err := spi.ForType[Signature](reg, spi.Descriptor{DefaultName: "default"})
	if err != nil {
		return nil, err
	}
	if err := sigEP.RegisterNamed("default", "greeter.DefaultSignature", func() Signature {
		return &defaultSignature{}
	}); err != nil {
		return nil, err
	}

	ep, err := spi.ForType[Greeter](reg, descriptor())
	if err != nil {
		return nil, err
	}

	records, parseErrs := spi.ParseResourceFile("builtin/Greeter", builtinRecords, nil)
	for _, perr := range parseErrs {
		ep.RecordLoadError("builtin/Greeter", perr.Error())
	}

	constructors := map[string]func() Greeter{
		"greeter.FriendlyGreeter": func() Greeter { return &friendlyGreeter{} },
		"greeter.FormalGreeter":   func() Greeter { return &formalGreeter{} },
	}
	if err := spi.ApplyRecords(ep, records, constructors); err != nil {
		return nil, err
	}

	if err := ep.RegisterWrapper("greeter.LoggingWrapper", func(inner Greeter) Greeter {
		return &loggingWrapper{inner: inner}
	}); err != nil {
		return nil, err
	}

	ep.SetActivate("friendly", spi.ActivateSpec{Value: []string{"greeter.announce"}, Order: 1})
	ep.SetActivate("formal", spi.ActivateSpec{Value: []string{"greeter.announce"}, Order: 2, After: []string{"friendly"}})

	if err := ep.RegisterAdaptive("greeter.AdaptiveGreeter", func() Greeter {
		return &adaptiveGreeter{ep: ep}
	}); err != nil {
		return nil, err
	}

	return ep, nil
}
