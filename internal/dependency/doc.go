// Package dependency provides a small directed graph used to resolve
// before/after ordering constraints between named extensions, consulted by
// the Activate Selector's ActivateComparator (pkg/spi) when a numeric order
// tie-break alone is insufficient.
//
// # Usage
//
//	g := dependency.New()
//	g.AddNode(dependency.Node{ID: "auth", DependsOn: nil})
//	g.AddNode(dependency.Node{ID: "logging", DependsOn: []dependency.NodeID{"auth"}})
//
//	g.Precedes("auth", "logging") // true: logging depends on auth
//	g.Dependents("auth")          // ["logging"]
//
// Graph is a plain value, not safe for concurrent writes; callers that build
// it once and only read afterward (as ActivateComparator does) need no
// locking.
package dependency
