package railml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/railkit/railsignal/pkg/network"
)

// DefaultConnectionLength is assumed for connections that carry no length
// attribute, in meters.
const DefaultConnectionLength = 500.0

// sourceTag marks nodes and edges created by this importer.
const sourceTag = "railml"

// ImportFile parses a railML file and returns the populated network.
func ImportFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Import(f)
}

// element is a flattened view of one XML start element: its local name and
// attributes by local attribute name. Namespace prefixes are discarded so
// that railML 2.x and 3.x documents parse the same way.
type element struct {
	name  string
	attrs map[string]string
}

func (e element) attr(names ...string) string {
	for _, n := range names {
		if v, ok := e.attrs[n]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Import parses a railML document from r and returns the populated network.
//
// The importer walks the token stream and collects infrastructure elements
// by local name, accepting both railML 2.x and 3.x vocabularies:
//
//   - track, netElement          -> track nodes
//   - switch, turnout            -> switch nodes
//   - platform, platformEdge     -> platform nodes
//   - connection, relation       -> directed edges
//
// Node positions come from latitude/longitude attributes when present
// (scaled for rendering), otherwise from a generated grid. Connections
// without a length attribute default to [DefaultConnectionLength]; a
// connection referencing an element that was not imported is skipped.
func Import(r io.Reader) (*network.Network, error) {
	var (
		stationName string
		nodes       []element
		nodeRoles   []network.Role
		conns       []element
	)

	counts := map[network.Role]int{}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse railml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		el := flatten(start)
		switch el.name {
		case "operationControlPoint", "station":
			if stationName == "" {
				stationName = el.attr("name", "id")
			}
		case "track", "netElement":
			nodes = append(nodes, el)
			nodeRoles = append(nodeRoles, network.RoleTrack)
		case "switch", "turnout":
			nodes = append(nodes, el)
			nodeRoles = append(nodeRoles, network.RoleSwitch)
		case "platform", "platformEdge":
			nodes = append(nodes, el)
			nodeRoles = append(nodeRoles, network.RolePlatform)
		case "connection", "relation":
			conns = append(conns, el)
		}
	}

	if stationName == "" {
		stationName = "Imported Station"
	}
	net := network.New(stationName)

	for i, el := range nodes {
		id := el.attr("id", "name")
		if id == "" {
			continue
		}
		role := nodeRoles[i]
		// Kind-specific stride spreads node kinds apart on the
		// generated grid.
		stride := 1
		switch role {
		case network.RoleSwitch:
			stride = 2
		case network.RolePlatform:
			stride = 3
		}
		pos := position(el, counts[role]*stride)
		counts[role]++

		if err := net.AddNode(network.Node{
			ID:     id,
			Role:   role,
			Pos:    pos,
			Source: sourceTag,
		}); err != nil {
			return nil, fmt.Errorf("import node %s: %w", id, err)
		}
	}

	for _, el := range conns {
		from := el.attr("ref", "from")
		to := el.attr("to", "target")
		if _, ok := net.Node(from); !ok {
			continue
		}
		if _, ok := net.Node(to); !ok {
			continue
		}

		length := DefaultConnectionLength
		if v := el.attr("length"); v != "" {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				length = parsed
			}
		}

		if err := net.AddEdge(network.Edge{
			From:   from,
			To:     to,
			Length: length,
			Source: sourceTag,
		}); err != nil {
			return nil, fmt.Errorf("import connection %s -> %s: %w", from, to, err)
		}
	}

	return net, nil
}

func flatten(start xml.StartElement) element {
	el := element{name: start.Name.Local, attrs: make(map[string]string, len(start.Attr))}
	for _, a := range start.Attr {
		el.attrs[a.Name.Local] = a.Value
	}
	return el
}

// position extracts geo coordinates when the element carries them, scaled
// up so station-scale coordinates are meaningful in meters, and falls back
// to a generated grid keyed by import order.
func position(el element, index int) network.Position {
	lat := el.attr("latitude", "lat")
	lon := el.attr("longitude", "lon")
	if lat != "" && lon != "" {
		la, errLa := strconv.ParseFloat(lat, 64)
		lo, errLo := strconv.ParseFloat(lon, 64)
		if errLa == nil && errLo == nil {
			return network.Position{X: lo * 10000, Y: la * 10000}
		}
	}
	return network.Position{
		X: float64(index%10) * 300,
		Y: float64(index/10) * 200,
	}
}
