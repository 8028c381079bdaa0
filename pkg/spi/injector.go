package spi

import "reflect"

// ExtensionFactory resolves a dependency by its parameter type and a
// property name, standing in for the reflective "find a setter, ask the
// factory, invoke the setter" loop described in §4.3. paramType is the
// dependency's static interface type (obtained via reflect.TypeOf on a nil
// interface pointer, e.g. reflect.TypeOf((*Greeter)(nil)).Elem()).
//
// A miss is reported via the boolean, not an error: an unresolved dependency
// is skipped (§4.3 "on null, skip"), not a hard failure.
type ExtensionFactory interface {
	GetExtension(paramType reflect.Type, propertyName string) (interface{}, bool)
}

// Injectable is implemented by extensions that want post-construction
// dependency injection. This is the capability-trait replacement for
// reflection-driven setter scanning that §9 calls for: the instance itself
// states what it needs and how to accept it, instead of the framework
// enumerating set* methods via reflection.
//
// Implementations should treat a nil factory (the circular-bootstrap
// sentinel for ExtensionPoint[ExtensionFactory] itself, §4.3) as "no
// dependencies available yet" and degrade gracefully.
type Injectable interface {
	InjectExtensions(factory ExtensionFactory) error
}

var extensionFactoryType = reflect.TypeOf((*ExtensionFactory)(nil)).Elem()

// inject runs best-effort injection on instance: errors are logged and
// swallowed (§4.3, §7), never propagated to the caller of Get/GetAdaptive.
func (ep *ExtensionPoint[T]) inject(instance T) {
	injectable, ok := any(instance).(Injectable)
	if !ok {
		return
	}

	var factory ExtensionFactory
	if ep.registry != nil && ep.interfaceType != extensionFactoryType {
		factory = ep.registry.Factory()
	}

	if err := injectable.InjectExtensions(factory); err != nil {
		logInjectionFailure(ep.interfaceType.String(), err)
	}
}
