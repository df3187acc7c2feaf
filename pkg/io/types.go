package io

import (
	"github.com/railkit/railsignal/pkg/network"
)

// Station is the canonical serialization format for railway networks.
// Used for API responses, CLI artifacts, caching, and re-import.
//
// The format is human-readable and round-trip safe: import -> analyze ->
// export -> re-import preserves every node and edge including analysis
// results (conflict snapshots, signal details).
type Station struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is the wire form of a network node.
type Node struct {
	ID       string    `json:"id" bson:"id"`
	Type     string    `json:"type" bson:"type"`
	X        float64   `json:"x,omitempty" bson:"x,omitempty"`
	Y        float64   `json:"y,omitempty" bson:"y,omitempty"`
	Source   string    `json:"source,omitempty" bson:"source,omitempty"`
	Conflict *Conflict `json:"conflict,omitempty" bson:"conflict,omitempty"`
	Signal   *Signal   `json:"signal,omitempty" bson:"signal,omitempty"`
}

// Conflict is the wire form of a conflict-zone snapshot.
type Conflict struct {
	Approaches []string `json:"approaches" bson:"approaches"`
}

// Signal is the wire form of a protective signal's details.
type Signal struct {
	ProtectsZone string  `json:"protects_cdl_zone" bson:"protects_cdl_zone"`
	ApproachFrom string  `json:"approach_from" bson:"approach_from"`
	Distance     float64 `json:"distance_to_cdl" bson:"distance_to_cdl"`
	Offset       float64 `json:"offset_from_placement" bson:"offset_from_placement"`
}

// Edge is the wire form of a directed track segment.
type Edge struct {
	From   string  `json:"from" bson:"from"`
	To     string  `json:"to" bson:"to"`
	Length float64 `json:"length" bson:"length"`
	Source string  `json:"source,omitempty" bson:"source,omitempty"`
}

// FromNetwork converts a network into its wire form, preserving insertion
// order for nodes and edges.
func FromNetwork(net *network.Network) Station {
	out := Station{
		Name:  net.Name(),
		Nodes: make([]Node, 0, net.NodeCount()),
		Edges: make([]Edge, 0, net.EdgeCount()),
	}
	for _, n := range net.Nodes() {
		wn := Node{
			ID:     n.ID,
			Type:   string(n.Role),
			X:      n.Pos.X,
			Y:      n.Pos.Y,
			Source: n.Source,
		}
		if n.Conflict != nil {
			wn.Conflict = &Conflict{Approaches: n.Conflict.Approaches}
		}
		if n.Signal != nil {
			wn.Signal = &Signal{
				ProtectsZone: n.Signal.ProtectsZone,
				ApproachFrom: n.Signal.ApproachFrom,
				Distance:     n.Signal.Distance,
				Offset:       n.Signal.Offset,
			}
		}
		out.Nodes = append(out.Nodes, wn)
	}
	for _, e := range net.Edges() {
		out.Edges = append(out.Edges, Edge{From: e.From, To: e.To, Length: e.Length, Source: e.Source})
	}
	return out
}

// ToNetwork builds a network from the wire form. Node roles are validated;
// edges are added after all nodes so referential integrity holds whenever
// both endpoints are present in the document.
func ToNetwork(s Station) (*network.Network, error) {
	net := network.New(s.Name)
	for _, wn := range s.Nodes {
		role := network.Role(wn.Type)
		if !role.Valid() {
			return nil, &NodeError{ID: wn.ID, Err: errInvalidRole(wn.Type)}
		}
		n := network.Node{
			ID:     wn.ID,
			Role:   role,
			Pos:    network.Position{X: wn.X, Y: wn.Y},
			Source: wn.Source,
		}
		if wn.Conflict != nil {
			n.Conflict = &network.ConflictInfo{Approaches: wn.Conflict.Approaches}
		}
		if wn.Signal != nil {
			n.Signal = &network.SignalInfo{
				ProtectsZone: wn.Signal.ProtectsZone,
				ApproachFrom: wn.Signal.ApproachFrom,
				Distance:     wn.Signal.Distance,
				Offset:       wn.Signal.Offset,
			}
		}
		if err := net.AddNode(n); err != nil {
			return nil, &NodeError{ID: wn.ID, Err: err}
		}
	}
	for _, we := range s.Edges {
		if err := net.AddEdge(network.Edge{From: we.From, To: we.To, Length: we.Length, Source: we.Source}); err != nil {
			return nil, &EdgeError{From: we.From, To: we.To, Err: err}
		}
	}
	return net, nil
}
