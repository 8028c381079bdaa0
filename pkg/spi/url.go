package spi

import (
	"fmt"
	"sort"
	"strings"
)

// URL is the runtime configuration carrier threaded through adaptive
// dispatch and activation: an immutable string-indexed multi-map of
// parameters, a protocol discriminator, and optional per-method parameter
// overrides.
//
// A zero-value URL is not usable; construct one with NewURL. All mutating
// methods (WithParam, WithMethodParam) return a new URL and leave the
// receiver untouched.
type URL struct {
	protocol     string
	params       map[string]string
	methodParams map[string]map[string]string // methodName -> key -> value
}

// NewURL creates a URL with the given protocol and parameters. params may be
// nil. The returned URL owns a defensive copy of params.
func NewURL(protocol string, params map[string]string) *URL {
	u := &URL{
		protocol:     protocol,
		params:       make(map[string]string, len(params)),
		methodParams: make(map[string]map[string]string),
	}
	for k, v := range params {
		u.params[k] = v
	}
	return u
}

// Protocol returns the URL's protocol discriminator.
func (u *URL) Protocol() string {
	if u == nil {
		return ""
	}
	return u.protocol
}

// Param returns the parameter at key, or def if absent.
func (u *URL) Param(key, def string) string {
	if u == nil {
		return def
	}
	if v, ok := u.params[key]; ok {
		return v
	}
	return def
}

// HasParam reports whether key is present with a non-empty value.
func (u *URL) HasParam(key string) bool {
	if u == nil {
		return false
	}
	v, ok := u.params[key]
	return ok && v != ""
}

// Keys returns the sorted parameter key set, for deterministic iteration
// (e.g. the Activate Selector's URL-key-suffix match).
func (u *URL) Keys() []string {
	if u == nil {
		return nil
	}
	keys := make([]string, 0, len(u.params))
	for k := range u.params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MethodParam returns the per-method override for key under methodName if
// present, falling back to the plain parameter, then to def.
func (u *URL) MethodParam(methodName, key, def string) string {
	if u == nil {
		return def
	}
	if overrides, ok := u.methodParams[methodName]; ok {
		if v, ok := overrides[key]; ok && v != "" {
			return v
		}
	}
	return u.Param(key, def)
}

// WithParam returns a copy of u with key set to value.
func (u *URL) WithParam(key, value string) *URL {
	clone := u.clone()
	clone.params[key] = value
	return clone
}

// WithMethodParam returns a copy of u with a per-method override set.
func (u *URL) WithMethodParam(methodName, key, value string) *URL {
	clone := u.clone()
	if clone.methodParams[methodName] == nil {
		clone.methodParams[methodName] = make(map[string]string)
	}
	clone.methodParams[methodName][key] = value
	return clone
}

func (u *URL) clone() *URL {
	if u == nil {
		return NewURL("", nil)
	}
	c := &URL{
		protocol:     u.protocol,
		params:       make(map[string]string, len(u.params)),
		methodParams: make(map[string]map[string]string, len(u.methodParams)),
	}
	for k, v := range u.params {
		c.params[k] = v
	}
	for m, overrides := range u.methodParams {
		cp := make(map[string]string, len(overrides))
		for k, v := range overrides {
			cp[k] = v
		}
		c.methodParams[m] = cp
	}
	return c
}

// String renders the URL in a compact protocol://k=v&k=v form, useful for
// error messages and CLI echo.
func (u *URL) String() string {
	if u == nil {
		return "<nil-url>"
	}
	parts := make([]string, 0, len(u.params))
	for _, k := range u.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%s", k, u.params[k]))
	}
	return fmt.Sprintf("%s://%s", u.protocol, strings.Join(parts, "&"))
}

// ParseURL parses a "k=v&k=v" query-style string (protocol given
// separately) into a URL. Intended for CLI flags and test fixtures, not for
// wire-format parsing (out of scope — see spec §1 Non-goals).
func ParseURL(protocol, query string) *URL {
	params := make(map[string]string)
	query = strings.TrimPrefix(query, "?")
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			params[kv[0]] = kv[1]
		} else {
			params[kv[0]] = ""
		}
	}
	return NewURL(protocol, params)
}
