package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/railkit/railsignal/pkg/network"
)

func TestRoundTrip(t *testing.T) {
	net := network.New("Central")
	net.AddNode(network.Node{ID: "A", Role: network.RoleEntryPoint, Pos: network.Position{X: 1, Y: 2}})
	net.AddNode(network.Node{ID: "B", Role: network.RoleTrack})
	net.AddNode(network.Node{ID: "M", Role: network.RoleConflictZone,
		Conflict: &network.ConflictInfo{Approaches: []string{"A", "B"}}})
	net.AddNode(network.Node{ID: "SIG_A_M", Role: network.RoleSignal,
		Signal: &network.SignalInfo{ProtectsZone: "M", ApproachFrom: "A", Distance: 500, Offset: 120}})
	net.AddEdge(network.Edge{From: "A", To: "M", Length: 550})
	net.AddEdge(network.Edge{From: "B", To: "M", Length: 600, Source: "railml"})

	var buf bytes.Buffer
	if err := WriteJSON(net, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got.Name() != "Central" {
		t.Errorf("Name = %q, want Central", got.Name())
	}
	if got.NodeCount() != 4 || got.EdgeCount() != 2 {
		t.Errorf("counts = %d/%d, want 4/2", got.NodeCount(), got.EdgeCount())
	}

	m, ok := got.Node("M")
	if !ok || m.Conflict == nil || len(m.Conflict.Approaches) != 2 {
		t.Errorf("conflict snapshot lost: %+v", m)
	}
	sig, _ := got.Node("SIG_A_M")
	if sig.Signal == nil || sig.Signal.Distance != 500 || sig.Signal.Offset != 120 {
		t.Errorf("signal info lost: %+v", sig.Signal)
	}
	a, _ := got.Node("A")
	if a.Pos != (network.Position{X: 1, Y: 2}) {
		t.Errorf("position lost: %+v", a.Pos)
	}
	e, _ := got.EdgeBetween("B", "M")
	if e == nil || e.Source != "railml" {
		t.Errorf("edge source lost: %+v", e)
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "Minimal",
			input: `{"nodes":[{"id":"a","type":"track"}],"edges":[]}`,
		},
		{
			name:    "UnknownRole",
			input:   `{"nodes":[{"id":"a","type":"tunnel"}],"edges":[]}`,
			wantErr: ErrInvalidRole,
		},
		{
			name:    "DanglingEdge",
			input:   `{"nodes":[{"id":"a","type":"track"}],"edges":[{"from":"a","to":"x","length":10}]}`,
			wantErr: network.ErrUnknownTargetNode,
		},
		{
			name:    "Malformed",
			input:   `{"nodes":`,
			wantErr: errAny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			switch {
			case tt.wantErr == nil:
				if err != nil {
					t.Fatalf("ReadJSON: %v", err)
				}
			case errors.Is(tt.wantErr, errAny):
				if err == nil {
					t.Fatal("ReadJSON accepted malformed input")
				}
			default:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			}
		})
	}
}

// errAny marks cases where any error is acceptable.
var errAny = errors.New("any error")

func TestErrorContext(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(
		`{"nodes":[{"id":"a","type":"track"},{"id":"b","type":"track"}],"edges":[{"from":"x","to":"b"}]}`))
	var ee *EdgeError
	if !errors.As(err, &ee) {
		t.Fatalf("err = %v, want *EdgeError", err)
	}
	if ee.From != "x" || ee.To != "b" {
		t.Errorf("EdgeError = %+v, want x -> b", ee)
	}
}
