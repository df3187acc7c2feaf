// Package network provides the directed graph of track segments that models
// a railway station for safety analysis.
//
// # Overview
//
// A station is a set of nodes (tracks, switches, platforms, entry and exit
// points) connected by directed edges carrying a length in meters. The graph
// is built once per analysis run by an importer or a programmatic builder,
// analyzed by the analysis package, and discarded at the end of the run.
//
// Referential integrity is enforced at edge insertion: [Network.AddEdge]
// fails with [ErrUnknownSourceNode] or [ErrUnknownTargetNode] when an
// endpoint has not been added yet. Edges are unique per ordered pair; adding
// a second edge between the same (From, To) pair overwrites the first.
//
// # Basic Usage
//
//	net := network.New("Central Station")
//	net.AddNode(network.Node{ID: "A", Role: network.RoleEntryPoint})
//	net.AddNode(network.Node{ID: "M", Role: network.RoleSwitch})
//	net.AddEdge(network.Edge{From: "A", To: "M", Length: 550})
//
// Query adjacency with [Network.Predecessors], [Network.Successors],
// [Network.InDegree], and [Network.OutDegree]. Predecessor order matches
// edge insertion order, which the analysis package relies on for
// deterministic output.
//
// # Role Transitions
//
// Node roles are fixed after creation with a single exception: the
// conflict-zone classifier promotes merge points to [RoleConflictZone]
// through [Network.MarkConflictZone]. The transition is idempotent by
// construction and attaches a one-time snapshot of the node's predecessors.
// No other role rewrite is supported.
//
// # Concurrency
//
// Network instances are not safe for concurrent use. The design assumes one
// analysis run owns the network exclusively for its entire lifetime; callers
// that share a network across goroutines must synchronize externally.
package network
