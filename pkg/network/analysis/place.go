package analysis

import (
	"fmt"

	"github.com/railkit/railsignal/pkg/network"
)

// DefaultSignalDistance is the standard sighting distance in meters used
// when no distance is configured.
const DefaultSignalDistance = 500.0

// Options tunes signal placement.
type Options struct {
	// SignalDistance is the required upstream sighting distance in meters.
	// Zero selects DefaultSignalDistance.
	SignalDistance float64

	// MaxPathEdges bounds the simple-path enumeration per approach.
	// Zero selects DefaultMaxPathEdges.
	MaxPathEdges int
}

// SignalID returns the deterministic identifier for the signal protecting
// zone on the given approach.
func SignalID(approach, zone string) string {
	return fmt.Sprintf("SIG_%s_%s", approach, zone)
}

// PlaceSignals plants a protective signal signalDistance meters upstream of
// every conflict zone, one per approach, and returns the IDs of the signals
// created by this call. It is shorthand for [PlaceSignalsWithOptions] with
// default search bounds.
func PlaceSignals(net *network.Network, signalDistance float64) []string {
	return PlaceSignalsWithOptions(net, Options{SignalDistance: signalDistance})
}

// PlaceSignalsWithOptions runs the full placement pass.
//
// Classification always runs first, so placement never operates on stale
// zones. For every conflict zone and every one of its approach edges the
// planner finds the upstream placement point and creates a signal node
// there, carrying the protected zone, the approach, the requested distance,
// and the offset from the placement node. The signal's position is copied
// from the placement node.
//
// Signal IDs are deterministic ([SignalID]); an approach whose signal
// already exists is skipped, so re-running placement on an already-processed
// network creates nothing. Approaches with no route to their zone within
// the search bound are skipped silently; a caller needing full coverage must
// compare the signal count per zone against the zone's in-degree.
func PlaceSignalsWithOptions(net *network.Network, opts Options) []string {
	if opts.SignalDistance == 0 {
		opts.SignalDistance = DefaultSignalDistance
	}
	if opts.MaxPathEdges == 0 {
		opts.MaxPathEdges = DefaultMaxPathEdges
	}

	zones := IdentifyConflictZones(net)

	var created []string
	for _, zone := range zones {
		for _, approach := range net.Predecessors(zone) {
			placement, ok := findBackwardPlacement(net, zone, approach, opts.SignalDistance, opts.MaxPathEdges)
			if !ok {
				continue
			}

			id := SignalID(approach, zone)
			if _, exists := net.Node(id); exists {
				continue
			}

			at, _ := net.Node(placement.NodeID)
			net.AddNode(network.Node{
				ID:   id,
				Role: network.RoleSignal,
				Pos:  at.Pos,
				Signal: &network.SignalInfo{
					ProtectsZone: zone,
					ApproachFrom: approach,
					Distance:     opts.SignalDistance,
					Offset:       placement.Offset,
				},
			})
			created = append(created, id)
		}
	}
	return created
}
