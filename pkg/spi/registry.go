package spi

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry is the process-singleton home for all ExtensionPoints
// (EXTENSION_LOADERS, §5), exposed as an explicit constructible value rather
// than only package-level globals, per §9's testability guidance.
type Registry struct {
	mu       sync.RWMutex
	boxes    map[reflect.Type]interface{} // interface type -> *ExtensionPoint[T]
	external ExtensionFactory
}

// anyExtensionPoint is the type-erased facet every *ExtensionPoint[T]
// satisfies, letting ExtensionFactory resolve a dependency by its
// reflect.Type without the factory itself being generic over T.
type anyExtensionPoint interface {
	getAny(name string) (interface{}, error)
}

// NewRegistry constructs an empty Registry. Production code typically keeps
// one for the process lifetime; tests construct a fresh one per case to
// avoid cross-test state leakage.
func NewRegistry() *Registry {
	return &Registry{boxes: make(map[reflect.Type]interface{})}
}

// ForType returns the ExtensionPoint for interface T, creating it on first
// request and caching it for the life of reg (§3: "created on first request
// for T and lives for the process").
//
// T must be an interface type; passing a non-interface, or a Descriptor whose
// DefaultName lists more than one comma-separated name, is a
// NotAnExtensionPoint error, surfaced via the returned error. Descriptor
// supplies what the Java source obtained by reflecting over class
// annotations — ForType never inspects T's method set to recover it.
func ForType[T any](reg *Registry, d Descriptor) (*ExtensionPoint[T], error) {
	if reg == nil {
		return nil, newBadArgument("nil Registry passed to ForType")
	}

	ifaceType := reflect.TypeOf((*T)(nil)).Elem()
	if ifaceType.Kind() != reflect.Interface {
		return nil, &NotAnExtensionPointError{
			TypeName: ifaceType.String(),
			Reason:   "T must be an interface type",
		}
	}
	for _, r := range d.DefaultName {
		if r == ',' {
			return nil, &NotAnExtensionPointError{
				TypeName: ifaceType.String(),
				Reason:   fmt.Sprintf("more than one default extension name: %q", d.DefaultName),
			}
		}
	}

	reg.mu.RLock()
	if box, ok := reg.boxes[ifaceType]; ok {
		reg.mu.RUnlock()
		return box.(*ExtensionPoint[T]), nil
	}
	reg.mu.RUnlock()

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if box, ok := reg.boxes[ifaceType]; ok {
		return box.(*ExtensionPoint[T]), nil
	}

	ep := newExtensionPoint[T](reg, ifaceType, d)
	reg.boxes[ifaceType] = ep
	return ep, nil
}

// MustForType is ForType with a panic on error, for package-level var
// initialization where a NotAnExtensionPoint indicates a programmer error
// that should fail fast at startup.
func MustForType[T any](reg *Registry, d Descriptor) *ExtensionPoint[T] {
	ep, err := ForType[T](reg, d)
	if err != nil {
		panic(err)
	}
	return ep
}
