// Package analysis derives safety artifacts from a railway network: the set
// of conflict zones where independently routed paths converge, and the
// protective signal placements a fixed sighting distance upstream of each
// zone.
//
// # Pipeline
//
// Analysis is a two-step, synchronous pass over a [network.Network]:
//
//  1. [IdentifyConflictZones] marks every node with in-degree >= 2 as a
//     conflict zone (a single pass, idempotent).
//  2. [PlaceSignals] walks backward from each zone along each approach and
//     plants a signal node at the required sighting distance, degrading to
//     the start of the approach when the available track is shorter.
//
// Both steps mutate the network in the two documented ways only: role
// promotion to conflict zone, and insertion of new signal nodes. Everything
// else is a pure query.
//
// # Search Bound
//
// Route discovery enumerates simple paths bounded to [DefaultMaxPathEdges]
// edges. Approaches whose only routes exceed the bound yield no signal and
// are skipped without error; partial coverage is considered actionable
// output for safety analysis, in preference to failing the whole run.
//
// [network.Network]: github.com/railkit/railsignal/pkg/network
package analysis
