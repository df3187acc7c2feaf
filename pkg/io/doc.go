// Package io provides JSON serialization for railway networks.
//
// The station document format is the interchange currency between the CLI,
// the HTTP API, and the cache: nodes with roles, positions, and analysis
// results, plus directed edges with lengths. [WriteJSON] and [ReadJSON] are
// inverses for any network this module produces.
package io
