package domain

// ResolutionPrefs controls which requirements are scheduled for processing.
type ResolutionPrefs struct {
	Upgrade        bool
	ResolveDeps    bool
	ForceReinstall bool
}

// DefaultPrefs returns the preferences used when no flags are given.
func DefaultPrefs() ResolutionPrefs {
	return ResolutionPrefs{ResolveDeps: true}
}

// PrefsOption overrides a single field when cloning ResolutionPrefs.
type PrefsOption func(*ResolutionPrefs)

// WithUpgrade overrides Upgrade.
func WithUpgrade(v bool) PrefsOption {
	return func(p *ResolutionPrefs) { p.Upgrade = v }
}

// WithResolveDeps overrides ResolveDeps.
func WithResolveDeps(v bool) PrefsOption {
	return func(p *ResolutionPrefs) { p.ResolveDeps = v }
}

// WithForceReinstall overrides ForceReinstall.
func WithForceReinstall(v bool) PrefsOption {
	return func(p *ResolutionPrefs) { p.ForceReinstall = v }
}

// Clone returns a copy of p with opts applied. p itself is not modified.
func (p ResolutionPrefs) Clone(opts ...PrefsOption) ResolutionPrefs {
	c := p
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
