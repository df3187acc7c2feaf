package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/railkit/railsignal/pkg/network"
)

// WriteJSON encodes a network as indented JSON and writes it to w.
// The output includes analysis results (conflict snapshots, signal details)
// and can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(net *network.Network, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromNetwork(net)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON converts a network to JSON bytes.
// Output order follows node and edge insertion order, so the bytes are
// deterministic for a fixed build sequence and usable as a cache key input.
func MarshalJSON(net *network.Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(net, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFile writes a network to a JSON file at path.
// The file is created with 0644 permissions.
func ExportFile(net *network.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(net, f)
}
