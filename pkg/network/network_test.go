package network

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode(t *testing.T) {
	t.Run("Insert", func(t *testing.T) {
		net := New("test")
		if err := net.AddNode(Node{ID: "a", Role: RoleTrack}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
		if net.NodeCount() != 1 {
			t.Errorf("NodeCount = %d, want 1", net.NodeCount())
		}
	})

	t.Run("EmptyID", func(t *testing.T) {
		net := New("test")
		if err := net.AddNode(Node{Role: RoleTrack}); !errors.Is(err, ErrInvalidNodeID) {
			t.Errorf("err = %v, want ErrInvalidNodeID", err)
		}
	})

	t.Run("OverwriteDiscardsOptionalFields", func(t *testing.T) {
		net := New("test")
		net.AddNode(Node{ID: "a", Role: RoleSignal, Signal: &SignalInfo{ProtectsZone: "z"}})
		net.AddNode(Node{ID: "a", Role: RoleTrack})

		n, ok := net.Node("a")
		if !ok {
			t.Fatal("node a missing after overwrite")
		}
		if n.Role != RoleTrack {
			t.Errorf("Role = %s, want track", n.Role)
		}
		if n.Signal != nil {
			t.Error("Signal survived overwrite, want nil")
		}
		if net.NodeCount() != 1 {
			t.Errorf("NodeCount = %d, want 1", net.NodeCount())
		}
	})

	t.Run("OverwriteKeepsEdges", func(t *testing.T) {
		net := New("test")
		net.AddNode(Node{ID: "a", Role: RoleTrack})
		net.AddNode(Node{ID: "b", Role: RoleTrack})
		net.AddEdge(Edge{From: "a", To: "b", Length: 100})
		net.AddNode(Node{ID: "b", Role: RoleSwitch})

		if got := net.InDegree("b"); got != 1 {
			t.Errorf("InDegree(b) = %d, want 1", got)
		}
	})
}

func TestAddEdge(t *testing.T) {
	build := func() *Network {
		net := New("test")
		net.AddNode(Node{ID: "a", Role: RoleTrack})
		net.AddNode(Node{ID: "b", Role: RoleTrack})
		return net
	}

	tests := []struct {
		name    string
		edge    Edge
		wantErr error
	}{
		{name: "Valid", edge: Edge{From: "a", To: "b", Length: 100}},
		{name: "UnknownSource", edge: Edge{From: "x", To: "b"}, wantErr: ErrUnknownSourceNode},
		{name: "UnknownTarget", edge: Edge{From: "a", To: "x"}, wantErr: ErrUnknownTargetNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := build()
			err := net.AddEdge(tt.edge)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && net.EdgeCount() != 0 {
				t.Errorf("EdgeCount = %d after failed insert, want 0", net.EdgeCount())
			}
		})
	}

	t.Run("OverwriteSamePair", func(t *testing.T) {
		net := build()
		net.AddEdge(Edge{From: "a", To: "b", Length: 100})
		net.AddEdge(Edge{From: "a", To: "b", Length: 250})

		if net.EdgeCount() != 1 {
			t.Errorf("EdgeCount = %d, want 1 (no multigraph)", net.EdgeCount())
		}
		e, ok := net.EdgeBetween("a", "b")
		if !ok || e.Length != 250 {
			t.Errorf("EdgeBetween(a,b).Length = %v, want 250", e)
		}
		if got := net.InDegree("b"); got != 1 {
			t.Errorf("InDegree(b) = %d, want 1", got)
		}
	})
}

func TestPredecessorsOrder(t *testing.T) {
	net := New("test")
	for _, id := range []string{"c", "a", "b", "m"} {
		net.AddNode(Node{ID: id, Role: RoleTrack})
	}
	net.AddEdge(Edge{From: "c", To: "m", Length: 1})
	net.AddEdge(Edge{From: "a", To: "m", Length: 1})
	net.AddEdge(Edge{From: "b", To: "m", Length: 1})

	want := []string{"c", "a", "b"}
	if got := net.Predecessors("m"); !slices.Equal(got, want) {
		t.Errorf("Predecessors(m) = %v, want %v (insertion order)", got, want)
	}
	if got := net.InDegree("m"); got != 3 {
		t.Errorf("InDegree(m) = %d, want 3", got)
	}
	if got := net.Predecessors("a"); len(got) != 0 {
		t.Errorf("Predecessors(a) = %v, want empty", got)
	}
}

func TestMarkConflictZone(t *testing.T) {
	net := New("test")
	net.AddNode(Node{ID: "a", Role: RoleTrack})
	net.AddNode(Node{ID: "b", Role: RoleTrack})
	net.AddNode(Node{ID: "m", Role: RoleSwitch})
	net.AddEdge(Edge{From: "a", To: "m", Length: 1})
	net.AddEdge(Edge{From: "b", To: "m", Length: 1})

	if !net.MarkConflictZone("m") {
		t.Fatal("MarkConflictZone(m) = false, want true on first transition")
	}

	m, _ := net.Node("m")
	if m.Role != RoleConflictZone {
		t.Errorf("Role = %s, want cdl_zone", m.Role)
	}
	if m.Conflict == nil || !slices.Equal(m.Conflict.Approaches, []string{"a", "b"}) {
		t.Errorf("Conflict = %+v, want snapshot [a b]", m.Conflict)
	}

	// The snapshot must not refresh: add a predecessor, re-mark, check.
	net.AddNode(Node{ID: "c", Role: RoleTrack})
	net.AddEdge(Edge{From: "c", To: "m", Length: 1})
	if net.MarkConflictZone("m") {
		t.Error("MarkConflictZone(m) = true on repeat, want false")
	}
	if len(m.Conflict.Approaches) != 2 {
		t.Errorf("snapshot refreshed to %v, want original [a b]", m.Conflict.Approaches)
	}

	if net.MarkConflictZone("missing") {
		t.Error("MarkConflictZone(missing) = true, want false")
	}
}

func TestDerivedSets(t *testing.T) {
	net := New("test")
	net.AddNode(Node{ID: "t1", Role: RoleTrack})
	net.AddNode(Node{ID: "s1", Role: RoleSignal, Signal: &SignalInfo{ProtectsZone: "z"}})
	net.AddNode(Node{ID: "z", Role: RoleConflictZone})

	if got := net.ConflictZones(); !slices.Equal(got, []string{"z"}) {
		t.Errorf("ConflictZones = %v, want [z]", got)
	}
	if got := net.Signals(); !slices.Equal(got, []string{"s1"}) {
		t.Errorf("Signals = %v, want [s1]", got)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleTrack, RoleSwitch, RoleSignal, RoleConflictZone, RolePlatform, RoleEntryPoint, RoleExitPoint} {
		if !r.Valid() {
			t.Errorf("Role %q reported invalid", r)
		}
	}
	if Role("junction").Valid() {
		t.Error(`Role "junction" reported valid`)
	}
}
