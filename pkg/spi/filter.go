package spi

// Invoker is the terminal (or chain-wrapped) callable a Filter sits in front
// of (C8). It is not generic over an interface type: filters operate on the
// generic invocation protocol shared by every wire-level call, the same way
// they do in the surrounding RPC framework this loader sits inside.
type Invoker interface {
	Interface() string
	URL() *URL
	IsAvailable() bool
	Invoke(inv *Invocation) (interface{}, error)
	Destroy()
}

// Filter wraps next, typically obtained via the Activate Selector. A filter
// that wants to short-circuit the chain (auth rejection, rate limiting)
// simply returns without calling next.Invoke — a valid, specified design
// choice (§4.8), not an error condition.
type Filter interface {
	Invoke(next Invoker, inv *Invocation) (interface{}, error)
}

// BuildChain composes filters around terminal (§4.8): filters[0] is
// outermost, filters[len-1] is innermost, wrapping terminal directly. Every
// layer's Interface/URL/IsAvailable/Destroy forward to terminal itself, not
// to the immediate child, so they remain stable regardless of chain depth.
func BuildChain(terminal Invoker, filters []Filter) Invoker {
	current := terminal
	for i := len(filters) - 1; i >= 0; i-- {
		current = &filterInvoker{filter: filters[i], next: current, terminal: terminal}
	}
	return current
}

type filterInvoker struct {
	filter   Filter
	next     Invoker
	terminal Invoker
}

func (f *filterInvoker) Interface() string   { return f.terminal.Interface() }
func (f *filterInvoker) URL() *URL           { return f.terminal.URL() }
func (f *filterInvoker) IsAvailable() bool   { return f.terminal.IsAvailable() }
func (f *filterInvoker) Destroy()            { f.terminal.Destroy() }
func (f *filterInvoker) Invoke(inv *Invocation) (interface{}, error) {
	return f.filter.Invoke(f.next, inv)
}
