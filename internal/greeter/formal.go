package greeter

import (
	"reflect"

	"extframe/pkg/spi"
)

var signatureType = reflect.TypeOf((*Signature)(nil)).Elem()

// formalGreeter is the second named implementation. It implements
// spi.Injectable to pull its Signature dependency from whatever
// ExtensionFactory the owning Registry hands it, rather than constructing
// one itself (§4.3).
type formalGreeter struct {
	signature Signature
}

func (g *formalGreeter) InjectExtensions(factory spi.ExtensionFactory) error {
	if factory == nil {
		return nil
	}
	if v, ok := factory.GetExtension(signatureType, "default"); ok {
		if sig, ok := v.(Signature); ok {
			g.signature = sig
		}
	}
	return nil
}

func (g *formalGreeter) Greet(url *spi.URL) string {
	who := url.Param("name", "Sir or Madam")
	greeting := "Good day, " + who + "."
	if g.signature != nil {
		greeting += " " + g.signature.SignOff() + "."
	}
	return greeting
}
