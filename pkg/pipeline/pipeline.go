// Package pipeline provides the core analysis pipeline for Railsignal.
//
// This package implements the complete analyze → render pipeline that can be
// used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Analyze: Classify conflict zones in the station graph and place
//     protective signals on every approach
//  2. Render: Generate output in various formats (DOT, SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SignalDistance: 500,
//	    Formats:        []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, net, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/railkit/railsignal/pkg/cache"
	"github.com/railkit/railsignal/pkg/network"
	"github.com/railkit/railsignal/pkg/network/analysis"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSignalDistance is the protective distance in meters that signals
	// are placed before a conflict zone.
	DefaultSignalDistance = analysis.DefaultSignalDistance

	// DefaultMaxPathEdges is the search bound for backward placement paths.
	DefaultMaxPathEdges = analysis.DefaultMaxPathEdges
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Analysis options
	SignalDistance float64 `json:"signal_distance,omitempty"`
	MaxPathEdges   int     `json:"max_path_edges,omitempty"`
	Refresh        bool    `json:"refresh,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	EdgeLabels  bool     `json:"edge_labels,omitempty"`
	LeftToRight bool     `json:"left_to_right,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Network is the analyzed station graph, including conflict zones and
	// placed signals.
	Network *network.Network

	// NetworkHash is the content hash of the input network.
	NetworkHash string

	// Zones lists the identifiers of all conflict zones.
	Zones []string

	// Signals lists the identifiers of all placed signals.
	Signals []string

	// Stats summarizes the analyzed network by role.
	Stats network.Statistics

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Timing contains stage durations.
	Timing Timing

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Timing contains pipeline execution durations.
type Timing struct {
	AnalyzeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	AnalyzeHit bool // Whether the analyzed network came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as
// calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForAnalyze(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForAnalyze checks analysis fields and applies defaults.
func (o *Options) ValidateForAnalyze() error {
	if o.SignalDistance < 0 {
		return fmt.Errorf("signal_distance must be positive, got %g", o.SignalDistance)
	}
	if o.SignalDistance == 0 {
		o.SignalDistance = DefaultSignalDistance
	}
	if o.MaxPathEdges < 0 {
		return fmt.Errorf("max_path_edges must be positive, got %d", o.MaxPathEdges)
	}
	if o.MaxPathEdges == 0 {
		o.MaxPathEdges = DefaultMaxPathEdges
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// AnalysisOpts returns the options for the signal placement stage.
func (o *Options) AnalysisOpts() analysis.Options {
	return analysis.Options{
		SignalDistance: o.SignalDistance,
		MaxPathEdges:   o.MaxPathEdges,
	}
}

// AnalysisKeyOpts returns cache key options for the analysis stage.
func (o *Options) AnalysisKeyOpts() cache.AnalysisKeyOpts {
	return cache.AnalysisKeyOpts{
		SignalDistance: o.SignalDistance,
		MaxPathEdges:   o.MaxPathEdges,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		EdgeLabels: o.EdgeLabels,
	}
}
