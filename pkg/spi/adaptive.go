package spi

import (
	"reflect"
	"strings"
	"unicode"
)

var urlPtrType = reflect.TypeOf((*URL)(nil))

// GetAdaptive returns the singleton adaptive instance for T (§4.5),
// constructing it on first call via the registered RegisterAdaptive
// constructor. Construction failure — no adaptive method declared in the
// Descriptor, or no adaptive implementation registered at all — is sticky
// (§5, §7): the cause is wrapped in a StickyAdaptiveFailureError once, and
// that same wrapped error is cached and replayed on every subsequent call
// without retrying construction.
func (ep *ExtensionPoint[T]) GetAdaptive() (T, error) {
	first := ep.adaptiveAttempted.CompareAndSwap(false, true)

	v, err := ep.adaptiveHolder.GetOrInit(func() (T, error) {
		var zero T

		ep.mu.RLock()
		nAdaptive := len(ep.descriptor.AdaptiveMethods)
		ctor := ep.adaptiveCtor
		ep.mu.RUnlock()

		if nAdaptive == 0 {
			cause := &NoAdaptiveMethodError{TypeName: ep.interfaceType.String()}
			return zero, &StickyAdaptiveFailureError{TypeName: ep.interfaceType.String(), Cause: cause}
		}
		if ctor == nil {
			cause := &InstantiationFailedError{
				TypeName: ep.interfaceType.String(),
				Name:     "<adaptive>",
				Cause:    newBadArgument("no adaptive implementation registered for %s", ep.interfaceType.String()),
			}
			return zero, &StickyAdaptiveFailureError{TypeName: ep.interfaceType.String(), Cause: cause}
		}

		instance := ctor()
		ep.inject(instance)
		return instance, nil
	})

	// The Holder caches and replays this exact error on every subsequent
	// call without re-running the build closure above (§5, §8 scenario 6):
	// same message, same cause, every time. first only gates the log line
	// so a sticky failure isn't logged on every call site that hits it.
	if err != nil && first {
		logStickyAdaptiveFailure(ep.interfaceType.String(), err)
	}
	return v, err
}

// MustGetAdaptive is GetAdaptive with a panic on error, mirroring
// getAdaptive's "raises IllegalState" contract (§6) for callers that treat a
// missing adaptive dispatcher as a programmer error.
func (ep *ExtensionPoint[T]) MustGetAdaptive() T {
	v, err := ep.GetAdaptive()
	if err != nil {
		panic(err)
	}
	return v
}

// CheckAdaptiveMethod reports whether methodName participates in adaptive
// dispatch for T, returning UnsupportedOperation if not (§4.5 step 1). The
// hand-written adaptive shim for T calls this at the top of every
// non-adaptive method and panics with the result.
func (ep *ExtensionPoint[T]) CheckAdaptiveMethod(methodName string) error {
	ep.mu.RLock()
	_, ok := ep.descriptor.AdaptiveMethods[methodName]
	ep.mu.RUnlock()
	if !ok {
		return &UnsupportedOperationError{TypeName: ep.interfaceType.String(), MethodName: methodName}
	}
	return nil
}

// DispatchAdaptive runs the full per-call adaptive resolution algorithm
// (§4.5 steps 2-6) for methodName and returns the resolved named
// implementation. inv may be nil when the call has no per-method override.
// args are the adaptive method's own arguments, used to locate a URL.
func (ep *ExtensionPoint[T]) DispatchAdaptive(methodName string, inv *Invocation, args ...interface{}) (T, error) {
	var zero T

	if err := ep.CheckAdaptiveMethod(methodName); err != nil {
		return zero, err
	}

	url, err := FindURL(ep.interfaceType.String(), methodName, args)
	if err != nil {
		return zero, err
	}

	name, err := ep.resolveAdaptiveName(methodName, url, inv)
	if err != nil {
		return zero, err
	}

	return ep.Get(name)
}

// FindURL locates a *URL among args: either a direct argument, or reachable
// via a zero-argument public getter on an argument's type whose name starts
// with "Get" or is longer than three characters and which returns *URL
// (§4.5 step 2). typeName/methodName are used only to build the error.
func FindURL(typeName, methodName string, args []interface{}) (*URL, error) {
	for _, a := range args {
		if u, ok := a.(*URL); ok {
			if u == nil {
				return nil, newBadArgument("%s.%s: URL argument is nil", typeName, methodName)
			}
			return u, nil
		}
	}

	for _, a := range args {
		if a == nil {
			continue
		}
		v := reflect.ValueOf(a)
		t := v.Type()
		for i := 0; i < t.NumMethod(); i++ {
			m := t.Method(i)
			if !looksLikeURLGetter(m.Name) {
				continue
			}
			if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
				continue
			}
			if m.Type.Out(0) != urlPtrType {
				continue
			}
			out := v.Method(i).Call(nil)
			if u, ok := out[0].Interface().(*URL); ok {
				if u == nil {
					return nil, newBadArgument("%s.%s: URL getter %s returned nil", typeName, methodName, m.Name)
				}
				return u, nil
			}
		}
	}

	return nil, &NoURLInCallError{TypeName: typeName, MethodName: methodName}
}

func looksLikeURLGetter(name string) bool {
	return strings.HasPrefix(name, "Get") || len(name) > 3
}

// ResolveAdaptiveName exposes the name resolution half of DispatchAdaptive
// without building anything, for callers (the CLI's `adaptive` command)
// that want to report which extension a call would dispatch to.
func (ep *ExtensionPoint[T]) ResolveAdaptiveName(methodName string, url *URL) (string, error) {
	if err := ep.CheckAdaptiveMethod(methodName); err != nil {
		return "", err
	}
	return ep.resolveAdaptiveName(methodName, url, nil)
}

// resolveAdaptiveName implements §4.5 step 4-5: keys are evaluated last to
// first so each earlier key's default is the result of the later one;
// "protocol" resolves via URL.Protocol(), falling back to the running value
// when the URL carries no protocol; an Invocation routes non-protocol keys
// through per-method parameter lookup; the outermost key falls back to the
// Descriptor's default name.
func (ep *ExtensionPoint[T]) resolveAdaptiveName(methodName string, url *URL, inv *Invocation) (string, error) {
	ep.mu.RLock()
	keys, hasEntry := ep.descriptor.adaptiveKeysFor(methodName)
	defaultName := ep.descriptor.DefaultName
	ifaceType := ep.interfaceType
	ep.mu.RUnlock()

	if !hasEntry || len(keys) == 0 {
		keys = []string{deriveAdaptiveKey(ifaceType)}
	}

	lookupMethod := methodName
	if inv != nil && inv.MethodName != "" {
		lookupMethod = inv.MethodName
	}

	value := defaultName
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]
		switch {
		case key == "protocol":
			if p := url.Protocol(); p != "" {
				value = p
			}
		case inv != nil:
			value = url.MethodParam(lookupMethod, key, value)
		default:
			value = url.Param(key, value)
		}
	}

	if value == "" {
		return "", &NoExtensionNameInURLError{
			TypeName:   ifaceType.String(),
			MethodName: methodName,
			KeysTried:  keys,
			URL:        url.String(),
		}
	}
	return value, nil
}

// deriveAdaptiveKey derives a URL parameter key from T's short name by
// inserting "." before each interior uppercase letter and lowercasing
// (§4.5 step 4, used when Adaptive declares no explicit keys).
func deriveAdaptiveKey(t reflect.Type) string {
	name := t.Name()
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('.')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
