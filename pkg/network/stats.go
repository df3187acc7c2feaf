package network

import (
	"fmt"
	"strings"
)

// Statistics is a read-only aggregation over a network's current contents.
type Statistics struct {
	TotalNodes       int     `json:"total_nodes" bson:"total_nodes"`
	TotalEdges       int     `json:"total_edges" bson:"total_edges"`
	Tracks           int     `json:"tracks" bson:"tracks"`
	Switches         int     `json:"switches" bson:"switches"`
	Signals          int     `json:"signals" bson:"signals"`
	ConflictZones    int     `json:"cdl_zones" bson:"cdl_zones"`
	Platforms        int     `json:"platforms" bson:"platforms"`
	EntryPoints      int     `json:"entry_points" bson:"entry_points"`
	ExitPoints       int     `json:"exit_points" bson:"exit_points"`
	TotalTrackLength float64 `json:"total_track_length" bson:"total_track_length"`
}

// Stats computes aggregate statistics for the network.
// It performs no mutation and cannot fail; an empty network yields zeros.
func (n *Network) Stats() Statistics {
	s := Statistics{
		TotalNodes: n.NodeCount(),
		TotalEdges: n.EdgeCount(),
	}
	for _, node := range n.nodes {
		switch node.Role {
		case RoleTrack:
			s.Tracks++
		case RoleSwitch:
			s.Switches++
		case RoleSignal:
			s.Signals++
		case RoleConflictZone:
			s.ConflictZones++
		case RolePlatform:
			s.Platforms++
		case RoleEntryPoint:
			s.EntryPoints++
		case RoleExitPoint:
			s.ExitPoints++
		}
	}
	for _, e := range n.edges {
		s.TotalTrackLength += e.Length
	}
	return s
}

// Summary renders a human-readable report of the network: aggregate counts,
// each conflict zone with its converging approaches, and each signal with
// the zone it protects.
func (n *Network) Summary() string {
	stats := n.Stats()
	var b strings.Builder

	rule := strings.Repeat("=", 70)
	fmt.Fprintf(&b, "%s\nRAILWAY NETWORK SUMMARY: %s\n%s\n\n", rule, n.name, rule)

	fmt.Fprintf(&b, "NETWORK STATISTICS:\n")
	fmt.Fprintf(&b, "  Total Nodes:        %d\n", stats.TotalNodes)
	fmt.Fprintf(&b, "  Total Edges:        %d\n", stats.TotalEdges)
	fmt.Fprintf(&b, "  Track Nodes:        %d\n", stats.Tracks)
	fmt.Fprintf(&b, "  Switches:           %d\n", stats.Switches)
	fmt.Fprintf(&b, "  Signals:            %d\n", stats.Signals)
	fmt.Fprintf(&b, "  CDL Zones:          %d\n", stats.ConflictZones)
	fmt.Fprintf(&b, "  Platforms:          %d\n", stats.Platforms)
	fmt.Fprintf(&b, "  Total Track Length: %.2f m\n", stats.TotalTrackLength)

	fmt.Fprintf(&b, "\nCDL ZONES (CONFLICT POINTS):\n")
	for _, id := range n.ConflictZones() {
		fmt.Fprintf(&b, "  %s\n", id)
		fmt.Fprintf(&b, "    incoming: %s\n", strings.Join(n.Predecessors(id), ", "))
	}

	fmt.Fprintf(&b, "\nSIGNALS:\n")
	for _, id := range n.Signals() {
		fmt.Fprintf(&b, "  %s\n", id)
		node := n.nodes[id]
		if node.Signal != nil {
			fmt.Fprintf(&b, "    protects:  %s\n", node.Signal.ProtectsZone)
			fmt.Fprintf(&b, "    approach:  %s\n", node.Signal.ApproachFrom)
			fmt.Fprintf(&b, "    distance:  %.0f m\n", node.Signal.Distance)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}
