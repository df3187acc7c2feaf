package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/railkit/railsignal/pkg/cache"
	stationio "github.com/railkit/railsignal/pkg/io"
	"github.com/railkit/railsignal/pkg/network"
	"github.com/railkit/railsignal/pkg/network/analysis"
	"github.com/railkit/railsignal/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete analyze → render pipeline with caching.
// The input network is not modified; analysis runs on a serialized copy.
func (r *Runner) Execute(ctx context.Context, net *network.Network, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Hash the input network for cache keys and API responses.
	inputData, err := stationio.MarshalJSON(net)
	if err != nil {
		return nil, fmt.Errorf("serialize network: %w", err)
	}
	result.NetworkHash = cache.Hash(inputData)

	// Stage 1: Analyze
	analyzeStart := time.Now()
	analyzed, analyzeHit, err := r.AnalyzeWithCacheInfo(ctx, net, inputData, opts)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	result.Network = analyzed
	result.Zones = analyzed.ConflictZones()
	result.Signals = analyzed.Signals()
	result.Stats = analyzed.Stats()
	result.Timing.AnalyzeTime = time.Since(analyzeStart)
	result.CacheInfo.AnalyzeHit = analyzeHit

	r.Logger.Info("analyzed station",
		"station", analyzed.Name(),
		"zones", len(result.Zones),
		"signals", len(result.Signals),
		"duration", result.Timing.AnalyzeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, analyzed, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Timing.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Timing.RenderTime)

	return result, nil
}

// AnalyzeWithCacheInfo classifies conflict zones and places signals, with
// caching, and returns cache hit info. inputData is the serialized input
// network; pass nil to have it computed.
func (r *Runner) AnalyzeWithCacheInfo(ctx context.Context, net *network.Network, inputData []byte, opts Options) (*network.Network, bool, error) {
	if err := opts.ValidateForAnalyze(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if inputData == nil {
		data, err := stationio.MarshalJSON(net)
		if err != nil {
			return nil, false, fmt.Errorf("serialize network: %w", err)
		}
		inputData = data
	}
	cacheKey := r.Keyer.AnalysisKey(cache.Hash(inputData), opts.AnalysisKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := stationio.ReadJSON(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "analysis")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "analysis")
	}

	// Analyze a copy so the caller's network stays untouched.
	analyzed, err := stationio.ReadJSON(bytes.NewReader(inputData))
	if err != nil {
		return nil, false, fmt.Errorf("deserialize network: %w", err)
	}

	observability.Pipeline().OnAnalyzeStart(ctx, analyzed.Name(), analyzed.NodeCount())
	start := time.Now()
	analysis.PlaceSignalsWithOptions(analyzed, opts.AnalysisOpts())
	zones := analyzed.ConflictZones()
	signals := analyzed.Signals()
	observability.Pipeline().OnAnalyzeComplete(ctx, analyzed.Name(), len(zones), len(signals), time.Since(start), nil)

	// Cache the result
	if data, err := stationio.MarshalJSON(analyzed); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLAnalysis); err == nil {
			observability.Cache().OnCacheSet(ctx, "analysis", len(data))
		}
	}

	return analyzed, false, nil // Cache miss
}

// Analyze is a convenience wrapper that calls AnalyzeWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Analyze(ctx context.Context, net *network.Network, opts Options) (*network.Network, error) {
	analyzed, _, err := r.AnalyzeWithCacheInfo(ctx, net, nil, opts)
	return analyzed, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, net *network.Network, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the analyzed network
	data, err := stationio.MarshalJSON(net)
	if err != nil {
		return nil, false, fmt.Errorf("serialize network for cache key: %w", err)
	}
	cacheKeyHash := cache.Hash(data)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = cached
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := renderFormats(net, data, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, artifact := range rendered {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, artifact, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(artifact))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, net *network.Network, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, net, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
