package network

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Network.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrUnknownSourceNode is returned by [Network.AddEdge] when the From
	// node does not exist in the network. Edges may only connect nodes that
	// have already been added.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Network.AddEdge] when the To
	// node does not exist in the network.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Role classifies a node in the railway network.
type Role string

// Node roles. A node enters the network as one of these and keeps its role
// for the lifetime of the network, with one exception: the conflict-zone
// classifier may promote a track or switch to RoleConflictZone via
// [Network.MarkConflictZone].
const (
	RoleTrack        Role = "track"
	RoleSwitch       Role = "switch"
	RoleSignal       Role = "signal"
	RoleConflictZone Role = "cdl_zone"
	RolePlatform     Role = "platform"
	RoleEntryPoint   Role = "entry"
	RoleExitPoint    Role = "exit"
)

// Valid reports whether r is one of the defined node roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTrack, RoleSwitch, RoleSignal, RoleConflictZone,
		RolePlatform, RoleEntryPoint, RoleExitPoint:
		return true
	}
	return false
}

// Position is a 2-D coordinate in meters. Positions are carried through for
// rendering only; the analysis algorithms never read them.
type Position struct {
	X float64
	Y float64
}

// ConflictInfo records the state of a node at the moment it was promoted to
// a conflict zone. Approaches is a snapshot of the node's predecessors taken
// during classification, not a live view: later graph edits do not refresh it.
type ConflictInfo struct {
	Approaches []string
}

// SignalInfo describes a protective signal placed upstream of a conflict zone.
type SignalInfo struct {
	ProtectsZone string  // conflict zone this signal protects
	ApproachFrom string  // approach node the signal covers
	Distance     float64 // requested sighting distance in meters
	Offset       float64 // distance from the placement node along the edge
}

// Node represents a vertex in the railway network: a track segment, switch,
// platform, entry/exit point, signal, or conflict zone.
//
// The zero value is not usable - ID and Role must be set before adding to a
// Network. Conflict and Signal are optional and set only for nodes of the
// corresponding role.
type Node struct {
	ID       string
	Role     Role
	Pos      Position
	Conflict *ConflictInfo // set when the node is promoted to a conflict zone
	Signal   *SignalInfo   // set for signal nodes created by placement
	Source   string        // provenance tag set by importers ("railml", "json")
}

// Edge represents a directed track segment between two nodes.
// Edges are unique per ordered (From, To) pair: adding a second edge between
// the same pair overwrites the first.
type Edge struct {
	From   string
	To     string
	Length float64 // meters; not validated, negative lengths pass through
	Source string
}

// Network is a directed graph of track segments owned by a single analysis
// run. It keeps nodes and edges in insertion order so that classification,
// placement, and serialization are deterministic for a fixed build sequence.
//
// The zero value is not usable - use New to create a Network instance.
// Network is not safe for concurrent use without external synchronization.
type Network struct {
	name      string
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[[2]string]*Edge
	edgeOrder [][2]string
	outgoing  map[string][]string // nodeID -> successor IDs, insertion order
	incoming  map[string][]string // nodeID -> predecessor IDs, insertion order
}

// New creates an empty network with the given station name.
func New(name string) *Network {
	return &Network{
		name:     name,
		nodes:    make(map[string]*Node),
		edges:    make(map[[2]string]*Edge),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// Name returns the station name given to New.
func (n *Network) Name() string { return n.name }

// AddNode inserts a node, overwriting any existing node with the same ID.
// Overwriting silently discards the previous node's optional fields; edges
// attached to the ID survive. Returns ErrInvalidNodeID if the ID is empty.
func (n *Network) AddNode(node Node) error {
	if node.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := n.nodes[node.ID]; !exists {
		n.nodeOrder = append(n.nodeOrder, node.ID)
	}
	n.nodes[node.ID] = &node
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is
// absent; no partial edge is created in that case. Re-adding an existing
// (From, To) pair replaces the stored edge without duplicating adjacency.
func (n *Network) AddEdge(e Edge) error {
	if _, ok := n.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := n.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	key := [2]string{e.From, e.To}
	if _, exists := n.edges[key]; !exists {
		n.edgeOrder = append(n.edgeOrder, key)
		n.outgoing[e.From] = append(n.outgoing[e.From], e.To)
		n.incoming[e.To] = append(n.incoming[e.To], e.From)
	}
	n.edges[key] = &e
	return nil
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the stored node.
func (n *Network) Node(id string) (*Node, bool) {
	node, ok := n.nodes[id]
	return node, ok
}

// EdgeBetween returns the edge from -> to and true, or nil and false if no
// such edge exists.
func (n *Network) EdgeBetween(from, to string) (*Edge, bool) {
	e, ok := n.edges[[2]string{from, to}]
	return e, ok
}

// Nodes returns all nodes in insertion order.
// The returned slice contains pointers to the stored nodes.
func (n *Network) Nodes() []*Node {
	nodes := make([]*Node, len(n.nodeOrder))
	for i, id := range n.nodeOrder {
		nodes[i] = n.nodes[id]
	}
	return nodes
}

// Edges returns copies of all edges in insertion order.
func (n *Network) Edges() []Edge {
	edges := make([]Edge, len(n.edgeOrder))
	for i, key := range n.edgeOrder {
		edges[i] = *n.edges[key]
	}
	return edges
}

// NodeCount returns the number of nodes in the network.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns the number of edges in the network.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Predecessors returns the IDs of nodes with an edge terminating at id, in
// edge insertion order. The returned slice is a copy and may be retained.
func (n *Network) Predecessors(id string) []string {
	return slices.Clone(n.incoming[id])
}

// Successors returns the IDs of nodes that id has edges to, in edge
// insertion order. The returned slice is a copy and may be retained.
func (n *Network) Successors(id string) []string {
	return slices.Clone(n.outgoing[id])
}

// InDegree returns the number of incoming edges to the node.
// Returns 0 if the node doesn't exist.
func (n *Network) InDegree(id string) int { return len(n.incoming[id]) }

// OutDegree returns the number of outgoing edges from the node.
// Returns 0 if the node doesn't exist.
func (n *Network) OutDegree(id string) int { return len(n.outgoing[id]) }

// MarkConflictZone promotes the node to RoleConflictZone and attaches a
// snapshot of its current predecessors. The transition is check-then-set:
// it reports false without touching the node when the node is unknown or
// already a conflict zone, so an existing snapshot is never refreshed.
//
// This is the only sanctioned role rewrite after node creation; it is called
// by the classifier in the analysis package.
func (n *Network) MarkConflictZone(id string) bool {
	node, ok := n.nodes[id]
	if !ok || node.Role == RoleConflictZone {
		return false
	}
	node.Role = RoleConflictZone
	node.Conflict = &ConflictInfo{Approaches: n.Predecessors(id)}
	return true
}

// ConflictZones returns the IDs of all nodes currently holding the
// conflict-zone role, in insertion order. The set is derived from node roles
// on every call rather than kept as separate state.
func (n *Network) ConflictZones() []string {
	return n.idsWithRole(RoleConflictZone)
}

// Signals returns the IDs of all signal nodes, in insertion order.
func (n *Network) Signals() []string {
	return n.idsWithRole(RoleSignal)
}

func (n *Network) idsWithRole(role Role) []string {
	var ids []string
	for _, id := range n.nodeOrder {
		if n.nodes[id].Role == role {
			ids = append(ids, id)
		}
	}
	return ids
}
