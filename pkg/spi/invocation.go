package spi

// Invocation is a per-call descriptor exposing at minimum the method name.
// It is consulted by adaptive dispatch for per-method URL parameter lookup,
// and may be threaded through a Filter chain (§4.8) as the per-call
// argument filters forward to the next Invoker.
type Invocation struct {
	MethodName string
	Arguments  []interface{}
	Attachment map[string]string
}

// NewInvocation builds an Invocation for methodName with the given
// positional arguments.
func NewInvocation(methodName string, args ...interface{}) *Invocation {
	return &Invocation{MethodName: methodName, Arguments: args}
}

// Attach returns a copy of inv with key=value recorded as an attachment,
// leaving the receiver untouched.
func (inv *Invocation) Attach(key, value string) *Invocation {
	clone := &Invocation{
		MethodName: inv.MethodName,
		Arguments:  inv.Arguments,
		Attachment: make(map[string]string, len(inv.Attachment)+1),
	}
	for k, v := range inv.Attachment {
		clone.Attachment[k] = v
	}
	clone.Attachment[key] = value
	return clone
}
