package spi

import (
	"sort"
	"strings"

	"extframe/internal/dependency"
)

// ActivateSpec is the activation predicate and ordering metadata attached to
// a named extension (§4.2 "Activate annotation", §4.6). Group and Value are
// OR-matched against the caller's group and the URL's parameter keys
// respectively; Order, Before, and After feed ActivateComparator.
type ActivateSpec struct {
	Group []string
	Value []string
	Order int

	// Before/After name other activate-tagged extensions within the same
	// ExtensionPoint; they resolve into a partial order via
	// internal/dependency (§4.6 expansion), merged with Order as a stable
	// secondary key.
	Before []string
	After  []string
}

// GetActivate implements the Activate Selector (C5, §4.6): given a URL, a
// set of caller-supplied names (which may include "default" as a splice
// point and "-name" to suppress one), and an optional group, it returns the
// ordered extensions that should run.
func (ep *ExtensionPoint[T]) GetActivate(url *URL, values []string, group string) ([]T, error) {
	orderedNames := ep.GetActivateNames(url, values, group)

	out := make([]T, 0, len(orderedNames))
	for _, name := range orderedNames {
		v, err := ep.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// GetActivateNames computes the same ordered name list GetActivate builds
// instances from, without building anything — used by callers (the CLI's
// `activate` command) that want to report which extensions were selected and
// in what order rather than the built instances themselves.
func (ep *ExtensionPoint[T]) GetActivateNames(url *URL, values []string, group string) []string {
	suppressDefault := false
	excluded := make(map[string]bool)
	explicitUser := make(map[string]bool)
	for _, v := range values {
		switch {
		case v == "-default":
			suppressDefault = true
		case strings.HasPrefix(v, "-"):
			excluded[strings.TrimPrefix(v, "-")] = true
		case v != "default":
			explicitUser[v] = true
		}
	}

	phaseANames := ep.phaseAActivatedNames(url, group, suppressDefault, excluded, explicitUser)

	var result []string
	var buffer []string
	sawDefault := false
	for _, v := range values {
		if strings.HasPrefix(v, "-") {
			continue
		}
		if v == "default" {
			result = append(result, buffer...)
			result = append(result, phaseANames...)
			buffer = nil
			sawDefault = true
			continue
		}
		buffer = append(buffer, v)
	}

	if sawDefault {
		return append(result, buffer...)
	}
	return append(append([]string{}, phaseANames...), buffer...)
}

// ActivateOrder returns the Order configured via SetActivate for name, and
// whether name carries an activate spec at all (§4.6 introspection, used by
// the CLI to report ranking alongside the selected names).
func (ep *ExtensionPoint[T]) ActivateOrder(name string) (order int, ok bool) {
	ep.mu.RLock()
	defer ep.mu.RUnlock()
	spec, ok := ep.activates[name]
	return spec.Order, ok
}

// phaseAActivatedNames computes and stably sorts the auto-activated name set
// (§4.6 Phase A).
func (ep *ExtensionPoint[T]) phaseAActivatedNames(url *URL, group string, suppressDefault bool, excluded, explicitUser map[string]bool) []string {
	if suppressDefault {
		return nil
	}

	ep.mu.RLock()
	type candidate struct {
		name string
		spec ActivateSpec
	}
	candidates := make([]candidate, 0, len(ep.activates))
	for name, spec := range ep.activates {
		if explicitUser[name] || excluded[name] {
			continue
		}
		if !matchesGroup(spec.Group, group) {
			continue
		}
		if !matchesURLKeys(url, spec.Value) {
			continue
		}
		candidates = append(candidates, candidate{name: name, spec: spec})
	}
	ep.mu.RUnlock()

	graph := dependency.New()
	for _, c := range candidates {
		deps := make([]dependency.NodeID, 0, len(c.spec.After))
		for _, after := range c.spec.After {
			deps = append(deps, dependency.NodeID(after))
		}
		graph.AddNode(dependency.Node{ID: dependency.NodeID(c.name), DependsOn: deps})
	}
	for _, c := range candidates {
		for _, before := range c.spec.Before {
			if n := graph.Get(dependency.NodeID(before)); n != nil {
				n.DependsOn = append(n.DependsOn, dependency.NodeID(c.name))
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if graph.Precedes(dependency.NodeID(a.name), dependency.NodeID(b.name)) {
			return true
		}
		if graph.Precedes(dependency.NodeID(b.name), dependency.NodeID(a.name)) {
			return false
		}
		if a.spec.Order != b.spec.Order {
			return a.spec.Order < b.spec.Order
		}
		return a.name < b.name
	})

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}

func matchesGroup(groups []string, callerGroup string) bool {
	if callerGroup == "" {
		return true
	}
	for _, g := range groups {
		if g == callerGroup {
			return true
		}
	}
	return false
}

// matchesURLKeys implements §4.6's URL-key filter: some key k in keys must
// match a URL parameter key that either equals k or ends with "."+k, with a
// non-empty value.
func matchesURLKeys(url *URL, keys []string) bool {
	if len(keys) == 0 {
		return true
	}
	for _, urlKey := range url.Keys() {
		if !url.HasParam(urlKey) {
			continue
		}
		for _, k := range keys {
			if urlKey == k || strings.HasSuffix(urlKey, "."+k) {
				return true
			}
		}
	}
	return false
}
