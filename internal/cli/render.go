package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/railkit/railsignal/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file (single format) or base path (multiple)
	formats     []string // output formats: "dot", "svg", "png", "json"
	distance    float64  // protective distance in meters
	edgeLabels  bool     // draw edge lengths as labels
	leftToRight bool     // lay the graph out left to right
	skipAnalyze bool     // render the graph as-is, without placing signals
	noCache     bool     // bypass the cache
}

// renderCommand creates the render command for generating visualizations.
// The station is analyzed first unless --skip-analyze is given, so rendered
// output includes conflict zones and placed signals.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		distance:   c.Config.SignalDistance,
		edgeLabels: true,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a station graph to DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, json (comma-separated)")
	cmd.Flags().Float64VarP(&opts.distance, "distance", "d", opts.distance, "protective distance before each zone in meters")
	cmd.Flags().BoolVar(&opts.edgeLabels, "edge-labels", opts.edgeLabels, "label edges with their length")
	cmd.Flags().BoolVar(&opts.leftToRight, "left-to-right", false, "lay the graph out left to right")
	cmd.Flags().BoolVar(&opts.skipAnalyze, "skip-analyze", false, "render without placing signals")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	net, err := loadNetwork(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	logger.Info("loaded station", "name", net.Name(), "nodes", net.NodeCount(), "edges", net.EdgeCount())

	runner, err := c.newRunner(cmd, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		SignalDistance: opts.distance,
		Formats:        opts.formats,
		EdgeLabels:     opts.edgeLabels,
		LeftToRight:    opts.leftToRight,
		Logger:         logger,
	}

	var artifacts map[string][]byte
	var cached bool
	if opts.skipAnalyze {
		artifacts, cached, err = runner.RenderWithCacheInfo(cmd.Context(), net, pipeOpts)
		if err != nil {
			return err
		}
	} else {
		result, execErr := runner.Execute(cmd.Context(), net, pipeOpts)
		if execErr != nil {
			return execErr
		}
		artifacts = result.Artifacts
		cached = result.CacheInfo.RenderHit
		printAnalysisStats(result.Stats.TotalNodes, len(result.Zones), len(result.Signals), result.CacheInfo.AnalyzeHit)
	}

	base := outputBase(opts.output, input)
	single := len(opts.formats) == 1 && opts.output != ""

	printSuccess("Rendered %s", StyleHighlight.Render(net.Name()))
	for _, format := range opts.formats {
		path := base + "." + format
		if single {
			path = opts.output
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	if cached {
		printDetail("artifacts served from cache")
	}
	return nil
}
