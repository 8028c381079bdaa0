package spi

import (
	"errors"
	"testing"
)

type adaptiveGreeter struct {
	ep *ExtensionPoint[Greeter]
}

func (p *adaptiveGreeter) Greet() string { return "" } // never invoked directly in tests

func (p *adaptiveGreeter) GreetWithURL(url *URL) string {
	impl, err := p.ep.DispatchAdaptive("GreetWithURL", nil, url)
	if err != nil {
		panic(err)
	}
	return impl.Greet()
}

type URLCarrier struct{ url *URL }

func (c *URLCarrier) GetURL() *URL { return c.url }

func newAdaptiveTestPoint(t *testing.T, defaultName string, keys []string) *ExtensionPoint[Greeter] {
	t.Helper()
	reg := NewRegistry()
	ep, err := ForType[Greeter](reg, Descriptor{
		DefaultName:     defaultName,
		AdaptiveMethods: map[string][]string{"GreetWithURL": keys},
	})
	if err != nil {
		t.Fatal(err)
	}
	ep.RegisterNamed("friendly", "friendly-impl", func() Greeter { return &friendlyGreeter{} })
	return ep
}

func TestGetAdaptiveIsSingleton(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type"})
	var builds int
	ep.RegisterAdaptive("adaptive", func() Greeter {
		builds++
		return &adaptiveGreeter{ep: ep}
	})

	a, err := ep.GetAdaptive()
	if err != nil {
		t.Fatal(err)
	}
	b, err := ep.GetAdaptive()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("GetAdaptive must return the same singleton across calls")
	}
	if builds != 1 {
		t.Fatalf("adaptive constructor ran %d times, want 1", builds)
	}
}

func TestGetAdaptiveNoAdaptiveMethod(t *testing.T) {
	reg := NewRegistry()
	ep, err := ForType[Greeter](reg, Descriptor{DefaultName: "friendly"})
	if err != nil {
		t.Fatal(err)
	}
	ep.RegisterAdaptive("adaptive", func() Greeter { return &adaptiveGreeter{ep: ep} })

	_, err = ep.GetAdaptive()
	var target *NoAdaptiveMethodError
	if !errors.As(err, &target) {
		t.Fatalf("want NoAdaptiveMethodError, got %v", err)
	}
}

// Sticky adaptive failure (§8 scenario 6): the second call returns the
// identical error value as the first, without retrying construction.
func TestGetAdaptiveStickyFailureIsIdentical(t *testing.T) {
	reg := NewRegistry()
	ep, err := ForType[Greeter](reg, Descriptor{DefaultName: "friendly"})
	if err != nil {
		t.Fatal(err)
	}
	// Descriptor has no AdaptiveMethods and no RegisterAdaptive call is made:
	// nAdaptive == 0 -> NoAdaptiveMethodError.

	_, err1 := ep.GetAdaptive()
	_, err2 := ep.GetAdaptive()

	if err1 == nil || err2 == nil {
		t.Fatal("expected both calls to fail")
	}
	if err1 != err2 {
		t.Fatalf("want identical error on repeated calls, got %v / %v", err1, err2)
	}
	if err1.Error() != err2.Error() {
		t.Fatalf("error messages differ: %q vs %q", err1.Error(), err2.Error())
	}
}

func TestCheckAdaptiveMethodRejectsUnknownMethod(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type"})
	err := ep.CheckAdaptiveMethod("SomeOtherMethod")
	var target *UnsupportedOperationError
	if !errors.As(err, &target) {
		t.Fatalf("want UnsupportedOperationError, got %v", err)
	}
}

func TestFindURLDirectArgument(t *testing.T) {
	url := NewURL("greeter", map[string]string{"greeter.type": "friendly"})
	got, err := FindURL("Greeter", "GreetWithURL", []interface{}{url})
	if err != nil {
		t.Fatal(err)
	}
	if got != url {
		t.Fatal("FindURL did not return the direct *URL argument")
	}
}

func TestFindURLViaGetter(t *testing.T) {
	url := NewURL("greeter", map[string]string{"greeter.type": "friendly"})
	carrier := &URLCarrier{url: url}
	got, err := FindURL("Greeter", "GreetWithURL", []interface{}{carrier})
	if err != nil {
		t.Fatal(err)
	}
	if got != url {
		t.Fatal("FindURL did not discover the URL via the carrier's getter method")
	}
}

func TestFindURLNoneFound(t *testing.T) {
	_, err := FindURL("Greeter", "GreetWithURL", []interface{}{42, "nope"})
	var target *NoURLInCallError
	if !errors.As(err, &target) {
		t.Fatalf("want NoURLInCallError, got %v", err)
	}
}

func TestResolveAdaptiveNamePublicWrapperMatchesInternal(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type"})
	ep.RegisterNamed("formal", "formal-impl", func() Greeter { return &friendlyGreeter{} })
	url := NewURL("greeter", map[string]string{"greeter.type": "formal"})

	name, err := ep.ResolveAdaptiveName("GreetWithURL", url)
	if err != nil {
		t.Fatal(err)
	}
	if name != "formal" {
		t.Fatalf("ResolveAdaptiveName = %q, want %q", name, "formal")
	}
}

func TestResolveAdaptiveNamePublicWrapperRejectsUnknownMethod(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type"})
	url := NewURL("greeter", nil)
	if _, err := ep.ResolveAdaptiveName("NoSuchMethod", url); err == nil {
		t.Fatal("expected an error for an adaptive-unconfigured method")
	}
}

func TestResolveAdaptiveNameFallsBackToDefault(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type"})
	url := NewURL("greeter", nil)
	name, err := ep.resolveAdaptiveName("GreetWithURL", url, nil)
	if err != nil {
		t.Fatal(err)
	}
	if name != "friendly" {
		t.Fatalf("resolveAdaptiveName = %q, want default %q", name, "friendly")
	}
}

func TestResolveAdaptiveNameFromURLParam(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type"})
	ep.RegisterNamed("formal", "formal-impl", func() Greeter { return &friendlyGreeter{} })
	url := NewURL("greeter", map[string]string{"greeter.type": "formal"})
	name, err := ep.resolveAdaptiveName("GreetWithURL", url, nil)
	if err != nil {
		t.Fatal(err)
	}
	if name != "formal" {
		t.Fatalf("resolveAdaptiveName = %q, want %q", name, "formal")
	}
}

func TestResolveAdaptiveNameProtocolSpecialCase(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"protocol"})
	url := NewURL("formal", nil)
	ep.RegisterNamed("formal", "formal-impl", func() Greeter { return &friendlyGreeter{} })
	name, err := ep.resolveAdaptiveName("GreetWithURL", url, nil)
	if err != nil {
		t.Fatal(err)
	}
	if name != "formal" {
		t.Fatalf("resolveAdaptiveName = %q, want protocol-derived %q", name, "formal")
	}
}

func TestResolveAdaptiveNamePerMethodOverride(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type"})
	ep.RegisterNamed("formal", "formal-impl", func() Greeter { return &friendlyGreeter{} })

	url := NewURL("greeter", map[string]string{"greeter.type": "friendly"}).
		WithMethodParam("GreetWithURL", "greeter.type", "formal")
	inv := NewInvocation("GreetWithURL")

	name, err := ep.resolveAdaptiveName("GreetWithURL", url, inv)
	if err != nil {
		t.Fatal(err)
	}
	if name != "formal" {
		t.Fatalf("resolveAdaptiveName = %q, want per-method override %q", name, "formal")
	}
}

func TestResolveAdaptiveNameKeysEvaluatedLastToFirst(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type", "greeter.alias"})
	ep.RegisterNamed("formal", "formal-impl", func() Greeter { return &friendlyGreeter{} })

	// Only the earlier key (greeter.type) is set; the later key
	// (greeter.alias) has no value, so its absence falls through to the
	// default, which the earlier key then overrides.
	url := NewURL("greeter", map[string]string{"greeter.type": "formal"})
	name, err := ep.resolveAdaptiveName("GreetWithURL", url, nil)
	if err != nil {
		t.Fatal(err)
	}
	if name != "formal" {
		t.Fatalf("resolveAdaptiveName = %q, want %q", name, "formal")
	}
}

func TestResolveAdaptiveNameNoExtensionNameInURL(t *testing.T) {
	reg := NewRegistry()
	ep, err := ForType[Greeter](reg, Descriptor{
		AdaptiveMethods: map[string][]string{"GreetWithURL": {"greeter.type"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	url := NewURL("greeter", nil)
	_, err = ep.resolveAdaptiveName("GreetWithURL", url, nil)
	var target *NoExtensionNameInURLError
	if !errors.As(err, &target) {
		t.Fatalf("want NoExtensionNameInURLError, got %v", err)
	}
}

func TestDispatchAdaptiveEndToEnd(t *testing.T) {
	ep := newAdaptiveTestPoint(t, "friendly", []string{"greeter.type"})
	ep.RegisterAdaptive("adaptive", func() Greeter { return &adaptiveGreeter{ep: ep} })

	g := ep.MustGetAdaptive()
	url := NewURL("greeter", map[string]string{"greeter.type": "friendly"})
	if got := g.(*adaptiveGreeter).GreetWithURL(url); got != "hi" {
		t.Fatalf("GreetWithURL() = %q, want %q", got, "hi")
	}
}
