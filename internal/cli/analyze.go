package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/railkit/railsignal/pkg/errors"
	"github.com/railkit/railsignal/pkg/pipeline"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	output       string  // annotated JSON output path (empty: stdout summary only)
	distance     float64 // protective distance in meters
	maxPathEdges int     // backward search bound in edges
	noCache      bool    // bypass the analysis cache
	refresh      bool    // recompute even when cached
}

// analyzeCommand creates the analyze command. It classifies conflict zones,
// places protective signals, and optionally writes the annotated station.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := analyzeOpts{
		distance: c.Config.SignalDistance,
	}

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Identify conflict zones and place protective signals",
		Long: `Analyze loads a station graph from a railML document or a JSON
interchange file, marks every node where two or more tracks converge as a
conflict zone, and places a protective signal on each approach at the
requested distance before the zone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateSignalDistance(opts.distance); err != nil {
				return err
			}
			return c.runAnalyze(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the annotated station as JSON")
	cmd.Flags().Float64VarP(&opts.distance, "distance", "d", opts.distance, "protective distance before each zone in meters")
	cmd.Flags().IntVar(&opts.maxPathEdges, "max-path-edges", 0, "bound for backward path search in edges")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the analysis cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached result exists")

	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, input string, opts *analyzeOpts) error {
	net, err := loadNetwork(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	runner, err := c.newRunner(cmd, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(cmd.Context(), "Analyzing station")
	spinner.Start()

	result, err := runner.Execute(cmd.Context(), net, pipeline.Options{
		SignalDistance: opts.distance,
		MaxPathEdges:   opts.maxPathEdges,
		Formats:        []string{pipeline.FormatJSON},
		Refresh:        opts.refresh,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Analysis failed: %v", err))
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Analyzed %s", StyleHighlight.Render(result.Network.Name())))

	printAnalysisStats(result.Stats.TotalNodes, len(result.Zones), len(result.Signals), result.CacheInfo.AnalyzeHit)

	protected := make(map[string]int)
	for _, id := range result.Signals {
		if node, ok := result.Network.Node(id); ok && node.Signal != nil {
			protected[node.Signal.ProtectsZone]++
		}
	}

	for _, id := range result.Zones {
		node, ok := result.Network.Node(id)
		if !ok || node.Conflict == nil {
			continue
		}
		printDetail("zone %s  approaches: %s", id, joinIDs(node.Conflict.Approaches))
		if got, want := protected[id], result.Network.InDegree(id); got < want {
			printWarning("zone %s is only protected on %d of %d approaches", id, got, want)
		}
	}
	for _, id := range result.Signals {
		node, ok := result.Network.Node(id)
		if !ok || node.Signal == nil {
			continue
		}
		printDetail("signal %s  protects %s from %s (%.0f m, offset %.0f m)",
			id, node.Signal.ProtectsZone, node.Signal.ApproachFrom,
			node.Signal.Distance, node.Signal.Offset)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, result.Artifacts[pipeline.FormatJSON], 0644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printFile(opts.output)
		printNextStep("Render it", fmt.Sprintf("railsignal render %s", opts.output))
	}
	return nil
}

// joinIDs joins node identifiers for display.
func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
