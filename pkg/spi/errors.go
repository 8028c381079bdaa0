package spi

import (
	"fmt"
	"strings"
)

// BadArgumentError covers a nil interface to ForType, a nil/empty name, or a
// nil URL where one is required.
type BadArgumentError struct {
	Message string
}

func (e *BadArgumentError) Error() string { return "bad argument: " + e.Message }

func newBadArgument(format string, args ...interface{}) error {
	return &BadArgumentError{Message: fmt.Sprintf(format, args...)}
}

// NotAnExtensionPointError covers a non-interface T, or a Descriptor (the
// stand-in for the Java SPI marker annotation) whose DefaultName lists more
// than one comma-separated name.
type NotAnExtensionPointError struct {
	TypeName string
	Reason   string
}

func (e *NotAnExtensionPointError) Error() string {
	return fmt.Sprintf("%s is not an extension point: %s", e.TypeName, e.Reason)
}

// NoSuchExtensionError is raised when a requested name is unknown. It
// enumerates load errors accumulated during resource discovery (§4.1, §7).
type NoSuchExtensionError struct {
	TypeName   string
	Name       string
	LoadErrors []string
}

func (e *NoSuchExtensionError) Error() string {
	msg := fmt.Sprintf("no such extension %q for %s", e.Name, e.TypeName)
	if len(e.LoadErrors) > 0 {
		msg += fmt.Sprintf(" (load errors: %s)", strings.Join(e.LoadErrors, "; "))
	}
	return msg
}

// AmbiguousAdaptiveError is raised when a second, distinct adaptive
// implementation is registered for the same ExtensionPoint.
type AmbiguousAdaptiveError struct {
	TypeName string
	First    string
	Second   string
}

func (e *AmbiguousAdaptiveError) Error() string {
	return fmt.Sprintf("ambiguous adaptive implementation for %s: %s and %s", e.TypeName, e.First, e.Second)
}

// DuplicateNameError is raised when the same name is bound to two distinct
// implementation identities, whether within one resource file or across the
// three search sources (§4.1, §9: directories supplement, never shadow).
type DuplicateNameError struct {
	TypeName string
	Name     string
	First    string
	Second   string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name %q for %s: bound to both %s and %s", e.Name, e.TypeName, e.First, e.Second)
}

// NoAdaptiveMethodError is raised when adaptive proxy synthesis is
// requested for a T with no adaptive-annotated method in its Descriptor.
type NoAdaptiveMethodError struct {
	TypeName string
}

func (e *NoAdaptiveMethodError) Error() string {
	return fmt.Sprintf("%s has no adaptive method; cannot synthesize a dispatcher", e.TypeName)
}

// NoURLInCallError is raised when adaptive dispatch cannot find a URL
// argument, or a getter on a parameter type returning one.
type NoURLInCallError struct {
	TypeName   string
	MethodName string
}

func (e *NoURLInCallError) Error() string {
	return fmt.Sprintf("%s.%s: no URL argument found for adaptive dispatch", e.TypeName, e.MethodName)
}

// NoExtensionNameInURLError is raised when adaptive dispatch resolves a nil
// name from the URL, naming the interface and the keys tried (§4.5 step 5).
type NoExtensionNameInURLError struct {
	TypeName   string
	MethodName string
	KeysTried  []string
	URL        string
}

func (e *NoExtensionNameInURLError) Error() string {
	return fmt.Sprintf("%s.%s: no extension name found in URL %s (keys tried: %s)",
		e.TypeName, e.MethodName, e.URL, strings.Join(e.KeysTried, ", "))
}

// InstantiationFailedError covers a missing constructor, a missing wrapper
// constructor, or a fatal error in the injection pipeline.
type InstantiationFailedError struct {
	TypeName string
	Name     string
	Cause    error
}

func (e *InstantiationFailedError) Error() string {
	return fmt.Sprintf("failed to instantiate %s %q: %v", e.TypeName, e.Name, e.Cause)
}

func (e *InstantiationFailedError) Unwrap() error { return e.Cause }

// StickyAdaptiveFailureError re-surfaces a prior failed adaptive synthesis
// verbatim (§5, §8 scenario 6): the same message and cause on every call
// after the first failure, without re-running synthesis.
type StickyAdaptiveFailureError struct {
	TypeName string
	Cause    error
}

func (e *StickyAdaptiveFailureError) Error() string {
	return fmt.Sprintf("adaptive synthesis for %s failed previously and will not be retried: %v", e.TypeName, e.Cause)
}

func (e *StickyAdaptiveFailureError) Unwrap() error { return e.Cause }

// UnsupportedOperationError is raised when a non-adaptive-annotated method
// is called on a synthesized adaptive proxy (§4.5 step 1).
type UnsupportedOperationError struct {
	TypeName   string
	MethodName string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s.%s is not adaptive and cannot be called on the synthesized proxy", e.TypeName, e.MethodName)
}
