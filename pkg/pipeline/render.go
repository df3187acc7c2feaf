package pipeline

import (
	"fmt"

	"github.com/railkit/railsignal/pkg/network"
	"github.com/railkit/railsignal/pkg/render"
)

// renderFormats produces every requested artifact for the analyzed network.
// jsonData is the already-serialized network, reused for the json format.
func renderFormats(net *network.Network, jsonData []byte, opts Options) (map[string][]byte, error) {
	renderOpts := render.Options{
		EdgeLabels:  opts.EdgeLabels,
		LeftToRight: opts.LeftToRight,
	}

	// DOT source is the input for both graphviz formats; generate it once.
	var dot string
	needsDOT := false
	for _, format := range opts.Formats {
		if format == FormatDOT || format == FormatSVG || format == FormatPNG {
			needsDOT = true
		}
	}
	if needsDOT {
		dot = render.ToDOT(net, renderOpts)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatDOT:
			artifacts[format] = []byte(dot)
		case FormatSVG:
			data, err := render.RenderSVG(dot)
			if err != nil {
				return nil, fmt.Errorf("render svg: %w", err)
			}
			artifacts[format] = data
		case FormatPNG:
			data, err := render.RenderPNG(dot)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[format] = data
		case FormatJSON:
			artifacts[format] = jsonData
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}

	return artifacts, nil
}
