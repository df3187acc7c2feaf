package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/railkit/railsignal/pkg/network"
)

// ReadJSON decodes a JSON station document from r into a network.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "name": "Central",
//	  "nodes": [{"id": "A", "type": "track"}, {"id": "M", "type": "switch"}],
//	  "edges": [{"from": "A", "to": "M", "length": 550}]
//	}
//
// Each node needs an "id" and a "type" naming one of the network roles.
// Optional per-node fields: x, y, source, conflict, signal. Each edge needs
// "from" and "to" referencing node IDs, plus a "length" in meters.
//
// ReadJSON returns an error when the JSON is malformed, a node carries an
// unknown role, or an edge references a node absent from the document.
// Errors identify the offending node or edge; use errors.Is to check for
// the underlying network sentinels.
//
// The returned network is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*network.Network, error) {
	var data Station
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToNetwork(data)
}

// ReadFile reads a JSON file and returns the decoded network.
func ReadFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
