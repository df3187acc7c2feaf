package analysis

import (
	"github.com/railkit/railsignal/pkg/network"
)

// IdentifyConflictZones scans the network and returns the IDs of all nodes
// where multiple tracks converge: any node with in-degree >= 2 is a conflict
// zone. Nodes not yet holding the conflict-zone role are promoted via
// [network.Network.MarkConflictZone], which attaches a snapshot of the
// node's predecessors at the moment of promotion.
//
// The pass is idempotent: re-running on an unchanged network yields the same
// result and performs no further mutation. Because promotion is
// check-then-set, the predecessor snapshot is not refreshed for nodes that
// are already conflict zones; callers must not rely on it staying current
// after graph edits.
//
// Nodes are visited in insertion order, so the result order is deterministic
// for a fixed build sequence. An empty network yields an empty result.
func IdentifyConflictZones(net *network.Network) []string {
	var zones []string
	for _, node := range net.Nodes() {
		if net.InDegree(node.ID) < 2 {
			continue
		}
		net.MarkConflictZone(node.ID)
		zones = append(zones, node.ID)
	}
	return zones
}
