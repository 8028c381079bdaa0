package spi

import (
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

type namedEntry[T any] struct {
	implID      string
	constructor func() T
}

type wrapperEntry[T any] struct {
	implID      string
	constructor func(T) T
}

// ExtensionPoint is a registration scope for one interface type T (§3). It
// owns the class registry (named/wrapper/adaptive buckets, activate tags)
// and the instance cache (raw singletons by implementation identity, and
// decorated singletons by name) for T.
//
// Construct one via ForType, never directly.
type ExtensionPoint[T any] struct {
	registry      *Registry
	interfaceType reflect.Type

	mu         sync.RWMutex
	descriptor Descriptor
	named      map[string]namedEntry[T]
	wrappers   []wrapperEntry[T]
	activates  map[string]ActivateSpec

	adaptiveCtor   func() T
	adaptiveImplID string

	loadErrors []string

	rawMu   sync.Mutex
	rawByID map[string]*Holder[T]

	namedMu      sync.Mutex
	namedHolders map[string]*Holder[T]

	adaptiveHolder    Holder[T]
	adaptiveAttempted atomic.Bool

	loaded sync.Map
}

func newExtensionPoint[T any](reg *Registry, ifaceType reflect.Type, d Descriptor) *ExtensionPoint[T] {
	return &ExtensionPoint[T]{
		registry:      reg,
		interfaceType: ifaceType,
		descriptor:    d,
		named:         make(map[string]namedEntry[T]),
		activates:     make(map[string]ActivateSpec),
		rawByID:       make(map[string]*Holder[T]),
		namedHolders:  make(map[string]*Holder[T]),
	}
}

// InterfaceType returns T's reflected interface type.
func (ep *ExtensionPoint[T]) InterfaceType() reflect.Type { return ep.interfaceType }

// DefaultName returns the descriptor's configured default name, or "" if
// none was set (§4.4, CLI introspection).
func (ep *ExtensionPoint[T]) DefaultName() string {
	ep.mu.RLock()
	defer ep.mu.RUnlock()
	return ep.descriptor.DefaultName
}

// RegisterNamed binds a single name to implID's constructor (§4.2 named
// class). Calling it twice for the same name with a differing implID is a
// DuplicateName error; calling it again with the same implID is a no-op.
func (ep *ExtensionPoint[T]) RegisterNamed(name, implID string, constructor func() T) error {
	return ep.RegisterNames([]string{name}, implID, constructor)
}

// RegisterNames binds every name in names to implID's constructor in one
// step, matching the Resource Reader's comma/whitespace-separated multi-name
// record (§4.1, §6).
func (ep *ExtensionPoint[T]) RegisterNames(names []string, implID string, constructor func() T) error {
	if len(names) == 0 {
		return newBadArgument("RegisterNames requires at least one name")
	}
	if implID == "" {
		return newBadArgument("RegisterNames requires a non-empty implementation id")
	}

	ep.mu.Lock()
	defer ep.mu.Unlock()

	for _, name := range names {
		if name == "" {
			return newBadArgument("RegisterNames: empty name")
		}
		if existing, ok := ep.named[name]; ok && existing.implID != implID {
			return &DuplicateNameError{
				TypeName: ep.interfaceType.String(),
				Name:     name,
				First:    existing.implID,
				Second:   implID,
			}
		}
	}
	for _, name := range names {
		ep.named[name] = namedEntry[T]{implID: implID, constructor: constructor}
	}
	return nil
}

// RegisterWrapper registers a decorator class (§4.2 wrapper class). Wrappers
// decorate a built instance in registration order (§4.4, §9 open question
// resolution: order is registration order, not unspecified).
func (ep *ExtensionPoint[T]) RegisterWrapper(implID string, constructor func(T) T) error {
	if implID == "" {
		return newBadArgument("RegisterWrapper requires a non-empty implementation id")
	}

	ep.mu.Lock()
	defer ep.mu.Unlock()

	for _, w := range ep.wrappers {
		if w.implID == implID {
			return nil
		}
	}
	ep.wrappers = append(ep.wrappers, wrapperEntry[T]{implID: implID, constructor: constructor})
	return nil
}

// RegisterAdaptive installs the adaptive class (§4.2): at most one per
// ExtensionPoint, registering a second distinct one is AmbiguousAdaptive.
func (ep *ExtensionPoint[T]) RegisterAdaptive(implID string, constructor func() T) error {
	if implID == "" {
		return newBadArgument("RegisterAdaptive requires a non-empty implementation id")
	}

	ep.mu.Lock()
	defer ep.mu.Unlock()

	if ep.adaptiveCtor != nil && ep.adaptiveImplID != implID {
		return &AmbiguousAdaptiveError{
			TypeName: ep.interfaceType.String(),
			First:    ep.adaptiveImplID,
			Second:   implID,
		}
	}
	ep.adaptiveCtor = constructor
	ep.adaptiveImplID = implID
	return nil
}

// SetActivate tags a registered name with an activation predicate (§4.2
// "Activate annotation", §4.6).
func (ep *ExtensionPoint[T]) SetActivate(name string, spec ActivateSpec) {
	ep.mu.Lock()
	ep.activates[name] = spec
	ep.mu.Unlock()
}

// RecordLoadError accumulates a Resource Reader failure (§4.1, §7),
// surfaced later in NoSuchExtension messages.
func (ep *ExtensionPoint[T]) RecordLoadError(line, message string) {
	ep.mu.Lock()
	ep.loadErrors = append(ep.loadErrors, line+": "+message)
	ep.mu.Unlock()
	logLoadError(ep.interfaceType.String(), line, message)
}

func (ep *ExtensionPoint[T]) snapshotLoadErrors() []string {
	ep.mu.RLock()
	defer ep.mu.RUnlock()
	out := make([]string, len(ep.loadErrors))
	copy(out, ep.loadErrors)
	return out
}

// AddExtension registers name as a test-only override (§6), failing if name
// already resolves to a different implementation.
func (ep *ExtensionPoint[T]) AddExtension(name, implID string, constructor func() T) error {
	return ep.RegisterNamed(name, implID, constructor)
}

// ReplaceExtension force-overwrites name's binding and evicts any cached
// instance for it (§6, test-only).
func (ep *ExtensionPoint[T]) ReplaceExtension(name, implID string, constructor func() T) {
	ep.mu.Lock()
	ep.named[name] = namedEntry[T]{implID: implID, constructor: constructor}
	ep.mu.Unlock()

	ep.namedMu.Lock()
	delete(ep.namedHolders, name)
	ep.namedMu.Unlock()
}

// HasExtension reports whether name is registered, without building it.
func (ep *ExtensionPoint[T]) HasExtension(name string) bool {
	ep.mu.RLock()
	defer ep.mu.RUnlock()
	_, ok := ep.named[name]
	return ok
}

// ImplID returns the implementation identifier name is bound to, for CLI
// introspection (`extframe get`).
func (ep *ExtensionPoint[T]) ImplID(name string) (string, bool) {
	ep.mu.RLock()
	defer ep.mu.RUnlock()
	entry, ok := ep.named[name]
	if !ok {
		return "", false
	}
	return entry.implID, true
}

// SupportedExtensions returns every registered name, sorted.
func (ep *ExtensionPoint[T]) SupportedExtensions() []string {
	ep.mu.RLock()
	defer ep.mu.RUnlock()
	names := make([]string, 0, len(ep.named))
	for name := range ep.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadedExtensions returns the names already built, sorted, without
// triggering any build (§4.4 getLoaded).
func (ep *ExtensionPoint[T]) LoadedExtensions() []string {
	var names []string
	ep.loaded.Range(func(k, _ interface{}) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	return names
}

// Get resolves name to a singleton T, building it on first use (§4.4).
// name == "true" is the reserved "use the default" sentinel.
func (ep *ExtensionPoint[T]) Get(name string) (T, error) {
	var zero T
	if name == "" {
		return zero, newBadArgument("empty extension name")
	}
	if name == "true" {
		if v, ok := ep.GetDefault(); ok {
			return v, nil
		}
		return zero, &NoSuchExtensionError{
			TypeName:   ep.interfaceType.String(),
			Name:       "true (default)",
			LoadErrors: ep.snapshotLoadErrors(),
		}
	}

	h := ep.namedHolder(name)
	return h.GetOrInit(func() (T, error) {
		return ep.build(name)
	})
}

// getAny is the type-erased facet of Get used by ExtensionFactory
// implementations that resolve dependencies by reflect.Type.
func (ep *ExtensionPoint[T]) getAny(name string) (interface{}, error) {
	v, err := ep.Get(name)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// GetDefault resolves the descriptor's default name, reporting absence via
// the boolean rather than an error (§4.4, §6).
func (ep *ExtensionPoint[T]) GetDefault() (T, bool) {
	var zero T
	ep.mu.RLock()
	name := ep.descriptor.DefaultName
	ep.mu.RUnlock()
	if name == "" {
		return zero, false
	}
	v, err := ep.Get(name)
	if err != nil {
		return zero, false
	}
	return v, true
}

func (ep *ExtensionPoint[T]) build(name string) (T, error) {
	var zero T

	ep.mu.RLock()
	entry, ok := ep.named[name]
	wrappers := append([]wrapperEntry[T](nil), ep.wrappers...)
	ep.mu.RUnlock()

	if !ok {
		return zero, &NoSuchExtensionError{
			TypeName:   ep.interfaceType.String(),
			Name:       name,
			LoadErrors: ep.snapshotLoadErrors(),
		}
	}

	raw, err := ep.buildRaw(entry.implID, entry.constructor)
	if err != nil {
		return zero, err
	}

	current := raw
	for _, w := range wrappers {
		if w.constructor == nil {
			return zero, &InstantiationFailedError{
				TypeName: ep.interfaceType.String(),
				Name:     w.implID,
				Cause:    newBadArgument("wrapper %s has no constructor", w.implID),
			}
		}
		wrapped := w.constructor(current)
		ep.inject(wrapped)
		current = wrapped
	}

	ep.loaded.Store(name, struct{}{})
	return current, nil
}

// buildRaw returns the single raw instance for implID, process-wide (§4.4
// "one instance per class"), constructing and injecting it at most once.
func (ep *ExtensionPoint[T]) buildRaw(implID string, constructor func() T) (T, error) {
	h := ep.rawHolder(implID)
	return h.GetOrInit(func() (T, error) {
		var zero T
		if constructor == nil {
			return zero, &InstantiationFailedError{
				TypeName: ep.interfaceType.String(),
				Name:     implID,
				Cause:    newBadArgument("%s has no no-argument constructor", implID),
			}
		}
		instance := constructor()
		ep.inject(instance)
		return instance, nil
	})
}

func (ep *ExtensionPoint[T]) rawHolder(implID string) *Holder[T] {
	ep.rawMu.Lock()
	defer ep.rawMu.Unlock()
	h, ok := ep.rawByID[implID]
	if !ok {
		h = &Holder[T]{}
		ep.rawByID[implID] = h
	}
	return h
}

func (ep *ExtensionPoint[T]) namedHolder(name string) *Holder[T] {
	ep.namedMu.Lock()
	defer ep.namedMu.Unlock()
	h, ok := ep.namedHolders[name]
	if !ok {
		h = &Holder[T]{}
		ep.namedHolders[name] = h
	}
	return h
}
