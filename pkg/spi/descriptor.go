package spi

// Descriptor is the capability trait a caller supplies to ForType in place
// of the Java SPI's reflected class-level annotations (@SPI, @Adaptive). It
// names the default implementation and, for each method that participates
// in adaptive dispatch, the ordered list of URL parameter keys tried when
// resolving an extension name for that call (§4.5 step 4-5).
//
// AdaptiveMethods keys are Go method names on T. An empty key list for a
// method means "fall back to a key derived from the interface's short name",
// with a "." inserted before each interior uppercase letter and the result
// lower-cased (LoadBalance -> "load.balance") — the same default the
// reflection-based design used for an @Adaptive value with no explicit key.
type Descriptor struct {
	// DefaultName is used when a URL carries no extension-name parameter at
	// all (§4.5 step 5). When it is empty there is no further fallback.
	DefaultName string

	// AdaptiveMethods lists, per method, the URL parameter keys tried in
	// order when synthesizing an adaptive dispatcher for T (§4.5).
	AdaptiveMethods map[string][]string
}

func (d Descriptor) adaptiveKeysFor(methodName string) ([]string, bool) {
	keys, ok := d.AdaptiveMethods[methodName]
	return keys, ok
}
