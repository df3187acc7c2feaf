package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/railkit/railsignal/pkg/network"
)

// Options configures station diagram rendering.
type Options struct {
	// EdgeLabels annotates each track segment with its length in meters.
	// Useful for small stations; clutters large ones.
	EdgeLabels bool

	// LeftToRight lays the diagram out horizontally instead of top-down,
	// matching the usual reading direction of a track plan.
	LeftToRight bool
}

// roleFill maps node roles to fill colors. Conflict zones are deliberately
// loud; signals and entry/exit points use the calmer end of the palette.
var roleFill = map[network.Role]string{
	network.RoleTrack:        "#4A90E2",
	network.RoleSwitch:       "#F5A623",
	network.RoleSignal:       "#7ED321",
	network.RoleConflictZone: "#D0021B",
	network.RolePlatform:     "#9013FE",
	network.RoleEntryPoint:   "#50E3C2",
	network.RoleExitPoint:    "#B8E986",
}

// roleShape gives the safety-relevant roles distinct outlines so diagrams
// stay readable in monochrome.
var roleShape = map[network.Role]string{
	network.RoleSignal:       "diamond",
	network.RoleConflictZone: "octagon",
	network.RoleSwitch:       "trapezium",
}

// ToDOT converts a network to Graphviz DOT format.
// Nodes are colored and shaped by role; the resulting DOT string renders
// with [RenderSVG] or [RenderPNG].
func ToDOT(net *network.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph station {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=\"filled\", fontsize=12, fontcolor=white];\n")
	buf.WriteString("  edge [color=\"#AAAAAA\", arrowsize=0.7];\n")
	if name := net.Name(); name != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", name)
	}
	buf.WriteString("\n")

	for _, n := range net.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range net.Edges() {
		if opts.EdgeLabels {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"%.0fm\", fontsize=9];\n", e.From, e.To, e.Length)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *network.Node) []string {
	attrs := []string{fmt.Sprintf("label=%q", nodeLabel(n))}

	fill, ok := roleFill[n.Role]
	if !ok {
		fill = "#CCCCCC"
	}
	attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))

	shape := roleShape[n.Role]
	if shape == "" {
		shape = "box"
	}
	attrs = append(attrs, fmt.Sprintf("shape=%s", shape))
	return attrs
}

func nodeLabel(n *network.Node) string {
	if n.Signal != nil {
		return fmt.Sprintf("%s\nprotects %s", n.ID, n.Signal.ProtectsZone)
	}
	return n.ID
}
