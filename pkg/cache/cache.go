// Package cache provides pluggable byte caches for rendered artifacts and
// analysis results, plus deterministic key generation.
//
// Backends:
//   - FileCache: directory-based, for CLI usage
//   - MemoryCache: in-process, for tests and single-instance servers
//   - RedisCache: shared cache for multi-instance deployments
//   - MongoCache: document-store backed cache with server-side TTL
//   - NullCache: disabled caching
//
// Keys are derived from the SHA-256 hash of the serialized network plus the
// options that influenced the artifact, so a changed station or a changed
// signal distance never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per entry type. Analysis results are cheap to recompute
// but artifacts can be expensive, so both default to a day.
const (
	TTLAnalysis = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface all cache backends implement.
// A miss is reported via the bool return, not an error; errors indicate
// backend failures.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A non-positive ttl stores
	// the value without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// AnalysisKeyOpts carries the options that influence analysis output.
type AnalysisKeyOpts struct {
	SignalDistance float64
	MaxPathEdges   int
}

// ArtifactKeyOpts carries the options that influence a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string
	EdgeLabels bool
}

// Keyer generates cache keys for the two cacheable stages.
type Keyer interface {
	// AnalysisKey keys an analyzed network by the source network's hash
	// and the analysis options.
	AnalysisKey(networkHash string, opts AnalysisKeyOpts) string

	// ArtifactKey keys a rendered artifact by the analyzed network's
	// hash and the render options.
	ArtifactKey(networkHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// AnalysisKey generates a key for analysis results.
func (k *DefaultKeyer) AnalysisKey(networkHash string, opts AnalysisKeyOpts) string {
	return hashKey("analysis", networkHash, opts.SignalDistance, opts.MaxPathEdges)
}

// ArtifactKey generates a key for rendered artifacts.
func (k *DefaultKeyer) ArtifactKey(networkHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", networkHash, opts.Format, opts.EdgeLabels)
}
