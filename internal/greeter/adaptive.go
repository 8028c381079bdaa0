package greeter

import "extframe/pkg/spi"

// adaptiveGreeter is the hand-written forwarding shim for Greeter (§4.5):
// DispatchAdaptive carries the actual decision algorithm, this type just
// locates the URL argument and forwards to whichever named implementation
// was resolved.
type adaptiveGreeter struct {
	ep *spi.ExtensionPoint[Greeter]
}

func (p *adaptiveGreeter) Greet(url *spi.URL) string {
	impl, err := p.ep.DispatchAdaptive("Greet", nil, url)
	if err != nil {
		panic(err)
	}
	return impl.Greet(url)
}
