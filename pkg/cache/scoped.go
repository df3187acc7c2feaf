package cache

// ScopedKeyer wraps another Keyer and prefixes every key with a scope,
// so multiple deployments can share one backend without colliding.
type ScopedKeyer struct {
	scope string
	inner Keyer
}

// NewScopedKeyer wraps inner so all keys carry the given scope prefix.
// A nil inner falls back to the default keyer.
func NewScopedKeyer(scope string, inner Keyer) *ScopedKeyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{scope: scope, inner: inner}
}

// AnalysisKey generates a scoped key for analysis results.
func (k *ScopedKeyer) AnalysisKey(networkHash string, opts AnalysisKeyOpts) string {
	return k.scope + ":" + k.inner.AnalysisKey(networkHash, opts)
}

// ArtifactKey generates a scoped key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(networkHash string, opts ArtifactKeyOpts) string {
	return k.scope + ":" + k.inner.ArtifactKey(networkHash, opts)
}

var _ Keyer = (*ScopedKeyer)(nil)
