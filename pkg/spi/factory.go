package spi

import "reflect"

// LoaderExtensionFactory resolves dependencies by asking the owning
// Registry's own ExtensionPoints — the "ask the Extension Loader" variant of
// C7.
type LoaderExtensionFactory struct {
	registry *Registry
}

// NewLoaderExtensionFactory builds the loader-backed ExtensionFactory
// variant for reg.
func NewLoaderExtensionFactory(reg *Registry) *LoaderExtensionFactory {
	return &LoaderExtensionFactory{registry: reg}
}

// GetExtension resolves propertyName as a named extension of paramType,
// returning ok=false on any miss (unknown type, unknown name, or a build
// error) rather than propagating the error — the injector treats a miss as
// "skip this dependency" (§4.3).
func (f *LoaderExtensionFactory) GetExtension(paramType reflect.Type, propertyName string) (interface{}, bool) {
	if f == nil || f.registry == nil || propertyName == "" {
		return nil, false
	}

	f.registry.mu.RLock()
	box, ok := f.registry.boxes[paramType]
	f.registry.mu.RUnlock()
	if !ok {
		return nil, false
	}

	aep, ok := box.(anyExtensionPoint)
	if !ok {
		return nil, false
	}

	v, err := aep.getAny(propertyName)
	if err != nil {
		return nil, false
	}
	return v, true
}

// ExternalContainerFactory adapts an external dependency-injection container
// into an ExtensionFactory — the "defers to an external DI container"
// variant of C7. Lookup is supplied by the embedding application; a nil
// Lookup always misses.
type ExternalContainerFactory struct {
	Lookup func(paramType reflect.Type, propertyName string) (interface{}, bool)
}

func (f *ExternalContainerFactory) GetExtension(paramType reflect.Type, propertyName string) (interface{}, bool) {
	if f == nil || f.Lookup == nil {
		return nil, false
	}
	return f.Lookup(paramType, propertyName)
}

// CompositeExtensionFactory is the default adaptive composite from C7: it
// tries each configured factory in registration order and returns the first
// hit.
type CompositeExtensionFactory struct {
	factories []ExtensionFactory
}

// NewCompositeExtensionFactory builds a composite trying factories in order.
func NewCompositeExtensionFactory(factories ...ExtensionFactory) *CompositeExtensionFactory {
	return &CompositeExtensionFactory{factories: factories}
}

func (f *CompositeExtensionFactory) GetExtension(paramType reflect.Type, propertyName string) (interface{}, bool) {
	if f == nil {
		return nil, false
	}
	for _, inner := range f.factories {
		if inner == nil {
			continue
		}
		if v, ok := inner.GetExtension(paramType, propertyName); ok {
			return v, true
		}
	}
	return nil, false
}

// Factory returns reg's default ExtensionFactory: a composite of the
// loader-backed variant plus any external container registered via
// SetExternalFactory, tried in that order.
func (reg *Registry) Factory() ExtensionFactory {
	reg.mu.RLock()
	external := reg.external
	reg.mu.RUnlock()

	loader := NewLoaderExtensionFactory(reg)
	if external == nil {
		return loader
	}
	return NewCompositeExtensionFactory(loader, external)
}

// SetExternalFactory registers an external-container ExtensionFactory to be
// consulted after the loader-backed one in reg.Factory()'s composite.
func (reg *Registry) SetExternalFactory(f ExtensionFactory) {
	reg.mu.Lock()
	reg.external = f
	reg.mu.Unlock()
}
