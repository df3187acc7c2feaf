package analysis

import (
	"slices"

	"github.com/railkit/railsignal/pkg/network"
)

// DefaultMaxPathEdges is the default bound on path enumeration: simple paths
// from an approach to its zone are searched up to this many edges. The bound
// guards against combinatorial blow-up in dense station graphs; approaches
// whose only routes exceed it are reported as having no placement. Callers
// that analyze stations with longer approach chains can raise the bound via
// [Options.MaxPathEdges].
const DefaultMaxPathEdges = 10

// PathLength sums the lengths of the consecutive edges along path.
// A pair of adjacent IDs with no edge between them contributes zero length.
// Paths produced by the enumeration in this package always consist of real
// edges, so the zero-contribution case is unreachable there; it exists for
// callers passing hand-built sequences.
func PathLength(net *network.Network, path []string) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		if e, ok := net.EdgeBetween(path[i], path[i+1]); ok {
			total += e.Length
		}
	}
	return total
}

// Placement identifies where a protective signal belongs: the node at the
// tail of the edge carrying the signal, and the distance from that node
// along the edge at which the signal physically sits.
type Placement struct {
	NodeID string
	Offset float64
}

// FindBackwardPlacement locates the point signalDistance meters upstream of
// zoneID along the shortest route from approachID, using the default
// enumeration bound. See [Options.MaxPathEdges] for the bounded variant.
//
// The search enumerates simple paths from the approach to the zone, selects
// the one with minimum total length (ties resolved by enumeration order),
// and walks it backward from the zone accumulating edge lengths. The signal
// lands on the first edge where the accumulated length reaches
// signalDistance, at offset signalDistance minus the length accumulated so
// far. If the whole path is shorter than signalDistance, the placement
// degrades to the path origin with offset 0: as far back as the available
// track allows.
//
// The second return value is false when no simple path within the bound
// connects the approach to the zone.
func FindBackwardPlacement(net *network.Network, zoneID, approachID string, signalDistance float64) (Placement, bool) {
	return findBackwardPlacement(net, zoneID, approachID, signalDistance, DefaultMaxPathEdges)
}

func findBackwardPlacement(net *network.Network, zoneID, approachID string, signalDistance float64, maxEdges int) (Placement, bool) {
	paths := simplePaths(net, approachID, zoneID, maxEdges)
	if len(paths) == 0 {
		return Placement{}, false
	}

	best := paths[0]
	bestLen := PathLength(net, best)
	for _, p := range paths[1:] {
		if l := PathLength(net, p); l < bestLen {
			best, bestLen = p, l
		}
	}

	var accumulated float64
	for i := len(best) - 1; i > 0; i-- {
		prev, cur := best[i-1], best[i]
		var segment float64
		if e, ok := net.EdgeBetween(prev, cur); ok {
			segment = e.Length
		}
		if accumulated+segment >= signalDistance {
			return Placement{NodeID: prev, Offset: signalDistance - accumulated}, true
		}
		accumulated += segment
	}

	// The approach is shorter than the sighting distance: place at the
	// origin rather than overshooting past the start of the network.
	return Placement{NodeID: best[0], Offset: 0}, true
}

// simplePaths enumerates all simple paths (no repeated node) from from to
// to with at most maxEdges edges, by depth-first search over successor
// lists. Enumeration order follows edge insertion order and is deterministic
// for a fixed network, but is otherwise not part of any contract.
func simplePaths(net *network.Network, from, to string, maxEdges int) [][]string {
	var (
		paths   [][]string
		current []string
		visited = map[string]bool{}
	)

	var walk func(id string)
	walk = func(id string) {
		current = append(current, id)
		visited[id] = true
		defer func() {
			current = current[:len(current)-1]
			visited[id] = false
		}()

		if id == to {
			paths = append(paths, slices.Clone(current))
			return
		}
		if len(current) > maxEdges {
			return
		}
		for _, next := range net.Successors(id) {
			if !visited[next] {
				walk(next)
			}
		}
	}

	if _, ok := net.Node(from); !ok {
		return nil
	}
	if _, ok := net.Node(to); !ok {
		return nil
	}
	walk(from)
	return paths
}
