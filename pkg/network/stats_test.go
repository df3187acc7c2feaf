package network

import (
	"strings"
	"testing"
)

func TestStats(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		s := New("empty").Stats()
		if s.TotalNodes != 0 || s.TotalEdges != 0 || s.TotalTrackLength != 0 {
			t.Errorf("Stats = %+v, want zeros", s)
		}
	})

	t.Run("MixedRoles", func(t *testing.T) {
		net := New("yard")
		net.AddNode(Node{ID: "e1", Role: RoleEntryPoint})
		net.AddNode(Node{ID: "t1", Role: RoleTrack})
		net.AddNode(Node{ID: "t2", Role: RoleTrack})
		net.AddNode(Node{ID: "sw", Role: RoleSwitch})
		net.AddNode(Node{ID: "p1", Role: RolePlatform})
		net.AddNode(Node{ID: "x1", Role: RoleExitPoint})
		net.AddEdge(Edge{From: "e1", To: "t1", Length: 300})
		net.AddEdge(Edge{From: "t1", To: "sw", Length: 450.5})
		net.AddEdge(Edge{From: "sw", To: "p1", Length: 200})

		s := net.Stats()
		if s.TotalNodes != 6 {
			t.Errorf("TotalNodes = %d, want 6", s.TotalNodes)
		}
		if s.TotalEdges != 3 {
			t.Errorf("TotalEdges = %d, want 3", s.TotalEdges)
		}
		if s.Tracks != 2 || s.Switches != 1 || s.Platforms != 1 || s.EntryPoints != 1 || s.ExitPoints != 1 {
			t.Errorf("role counts wrong: %+v", s)
		}
		if s.TotalTrackLength != 950.5 {
			t.Errorf("TotalTrackLength = %v, want 950.5", s.TotalTrackLength)
		}
	})
}

func TestSummary(t *testing.T) {
	net := New("Central")
	net.AddNode(Node{ID: "a", Role: RoleTrack})
	net.AddNode(Node{ID: "b", Role: RoleTrack})
	net.AddNode(Node{ID: "m", Role: RoleTrack})
	net.AddEdge(Edge{From: "a", To: "m", Length: 100})
	net.AddEdge(Edge{From: "b", To: "m", Length: 100})
	net.MarkConflictZone("m")
	net.AddNode(Node{ID: "SIG_a_m", Role: RoleSignal, Signal: &SignalInfo{
		ProtectsZone: "m", ApproachFrom: "a", Distance: 500,
	}})

	out := net.Summary()
	for _, want := range []string{"Central", "CDL ZONES", "m", "incoming: a, b", "SIG_a_m", "protects:  m"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
}
