package dependency

import "testing"

func TestNew(t *testing.T) {
	g := New()
	if g == nil {
		t.Fatal("New() returned nil")
	}
	if g.nodes == nil {
		t.Fatal("nodes map not initialized")
	}
	if len(g.nodes) != 0 {
		t.Fatalf("expected empty nodes map, got %d nodes", len(g.nodes))
	}
}

func TestAddNode(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []Node
		expected int
	}{
		{
			name:     "add single node",
			nodes:    []Node{{ID: "a", DependsOn: nil}},
			expected: 1,
		},
		{
			name: "add multiple nodes",
			nodes: []Node{
				{ID: "a", DependsOn: nil},
				{ID: "b", DependsOn: []NodeID{"a"}},
				{ID: "c", DependsOn: []NodeID{"b"}},
			},
			expected: 3,
		},
		{
			name: "replace existing node",
			nodes: []Node{
				{ID: "a", DependsOn: nil},
				{ID: "a", DependsOn: []NodeID{"b"}},
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, node := range tt.nodes {
				g.AddNode(node)
			}
			if len(g.nodes) != tt.expected {
				t.Errorf("expected %d nodes, got %d", tt.expected, len(g.nodes))
			}
			last := tt.nodes[len(tt.nodes)-1]
			if node := g.Get(last.ID); node == nil {
				t.Errorf("node %s not found", last.ID)
			} else if len(node.DependsOn) != len(last.DependsOn) {
				t.Errorf("DependsOn mismatch for %s: expected %v, got %v", last.ID, last.DependsOn, node.DependsOn)
			}
		})
	}
}

func TestGet(t *testing.T) {
	g := New()

	if node := g.Get("nonexistent"); node != nil {
		t.Error("expected nil for non-existent node")
	}

	testNode := Node{ID: "a", DependsOn: []NodeID{"dep1", "dep2"}}
	g.AddNode(testNode)

	retrieved := g.Get("a")
	if retrieved == nil {
		t.Fatal("failed to retrieve added node")
	}
	if retrieved.ID != testNode.ID {
		t.Errorf("ID mismatch: expected %s, got %s", testNode.ID, retrieved.ID)
	}
	if len(retrieved.DependsOn) != len(testNode.DependsOn) {
		t.Errorf("DependsOn length mismatch: expected %d, got %d", len(testNode.DependsOn), len(retrieved.DependsOn))
	}
}

func TestDependencies(t *testing.T) {
	g := New()

	if deps := g.Dependencies("nonexistent"); len(deps) != 0 {
		t.Errorf("expected empty dependencies for non-existent node, got %v", deps)
	}

	g.AddNode(Node{ID: "a", DependsOn: nil})
	g.AddNode(Node{ID: "b", DependsOn: []NodeID{"a"}})
	g.AddNode(Node{ID: "c", DependsOn: []NodeID{"b"}})
	g.AddNode(Node{ID: "d", DependsOn: []NodeID{"b", "a"}})

	tests := []struct {
		nodeID   NodeID
		expected []NodeID
	}{
		{"a", []NodeID{}},
		{"b", []NodeID{"a"}},
		{"c", []NodeID{"b"}},
		{"d", []NodeID{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.nodeID), func(t *testing.T) {
			deps := g.Dependencies(tt.nodeID)
			if len(deps) != len(tt.expected) {
				t.Errorf("expected %d dependencies, got %d", len(tt.expected), len(deps))
			}
			for _, exp := range tt.expected {
				found := false
				for _, dep := range deps {
					if dep == exp {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected dependency %s not found", exp)
				}
			}
		})
	}
}

func TestDependents(t *testing.T) {
	g := New()

	if deps := g.Dependents("nonexistent"); len(deps) != 0 {
		t.Errorf("expected empty dependents for non-existent node, got %v", deps)
	}

	g.AddNode(Node{ID: "a", DependsOn: nil})
	g.AddNode(Node{ID: "b", DependsOn: []NodeID{"a"}})
	g.AddNode(Node{ID: "c", DependsOn: []NodeID{"a"}})
	g.AddNode(Node{ID: "d", DependsOn: []NodeID{"b"}})
	g.AddNode(Node{ID: "e", DependsOn: []NodeID{"b", "a"}})

	tests := []struct {
		nodeID   NodeID
		expected []NodeID
	}{
		{"a", []NodeID{"b", "c", "e"}},
		{"b", []NodeID{"d", "e"}},
		{"c", []NodeID{}},
		{"d", []NodeID{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.nodeID), func(t *testing.T) {
			deps := g.Dependents(tt.nodeID)
			if len(deps) != len(tt.expected) {
				t.Errorf("expected %d dependents, got %d: %v", len(tt.expected), len(deps), deps)
			}
			for _, exp := range tt.expected {
				found := false
				for _, dep := range deps {
					if dep == exp {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected dependent %s not found in %v", exp, deps)
				}
			}
		})
	}
}

func TestPrecedes(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "auth", DependsOn: nil})
	g.AddNode(Node{ID: "logging", DependsOn: []NodeID{"auth"}})
	g.AddNode(Node{ID: "metrics", DependsOn: []NodeID{"logging"}})
	g.AddNode(Node{ID: "unrelated", DependsOn: nil})

	if !g.Precedes("auth", "logging") {
		t.Error("expected auth to precede logging")
	}
	if !g.Precedes("auth", "metrics") {
		t.Error("expected auth to transitively precede metrics")
	}
	if g.Precedes("logging", "auth") {
		t.Error("did not expect logging to precede auth")
	}
	if g.Precedes("auth", "unrelated") {
		t.Error("did not expect a precedence relationship between unrelated nodes")
	}
	if g.Precedes("auth", "auth") {
		t.Error("a node must not precede itself")
	}
}

func TestComplexDependencyGraph(t *testing.T) {
	g := New()

	g.AddNode(Node{ID: "base-a"})
	g.AddNode(Node{ID: "base-b"})

	g.AddNode(Node{ID: "mid-x", DependsOn: []NodeID{"base-a"}})
	g.AddNode(Node{ID: "mid-y", DependsOn: []NodeID{"base-a"}})
	g.AddNode(Node{ID: "mid-z", DependsOn: []NodeID{"base-b"}})

	g.AddNode(Node{ID: "top-1", DependsOn: []NodeID{"base-a"}})
	g.AddNode(Node{ID: "top-2", DependsOn: []NodeID{"mid-x"}})
	g.AddNode(Node{ID: "top-3", DependsOn: []NodeID{"mid-y"}})

	dependents := g.Dependents("base-a")
	expected := map[NodeID]bool{"mid-x": true, "mid-y": true, "top-1": true}
	for _, dep := range dependents {
		if !expected[dep] {
			t.Errorf("unexpected dependent of base-a: %s", dep)
		}
		delete(expected, dep)
	}
	if len(expected) > 0 {
		t.Errorf("missing dependents of base-a: %v", expected)
	}

	xDependents := g.Dependents("mid-x")
	if len(xDependents) != 1 || xDependents[0] != "top-2" {
		t.Errorf("expected top-2 as dependent of mid-x, got %v", xDependents)
	}

	if !g.Precedes("base-a", "top-2") {
		t.Error("expected base-a to transitively precede top-2 via mid-x")
	}
}
