package domain

import "time"

// Build backend names.
const (
	BuildBackendPEP517  = "pep517"
	BuildBackendSetupPy = "setuppy"
)

// Pin sanitizer modes.
const (
	UnpinFilter = "filter"
	UnpinAll    = "all"
	UnpinNone   = "none"
)

// Config is the effective configuration of a forge run.
type Config struct {
	// WorkDir is the parent of the scratch sources directory.
	WorkDir string
	// Python is the interpreter used for builds, installs and site queries.
	Python string
	// SiteDirs overrides the interpreter's site-packages directories.
	SiteDirs []string
	// LedgerPath is the install ledger file.
	LedgerPath string

	Registry RegistryConfig
	Resolver ResolverConfig
	Build    BuildConfig
	Install  InstallConfig
	Unpin    UnpinConfig
	Fetch    FetchConfig
}

// RegistryConfig configures the package registry.
type RegistryConfig struct {
	Path      string
	CacheSize int
}

// ResolverConfig configures the round loop.
type ResolverConfig struct {
	MaxRounds        int
	FetchParallelism int
}

// BuildConfig configures wheel builds.
type BuildConfig struct {
	Backend     string
	Parallelism int
	PythonPath  []string
}

// InstallConfig configures wheel installation.
// A non-empty PythonPath selects the search-path override backend.
type InstallConfig struct {
	PythonPath []string
}

// UnpinConfig configures the requirement sanitizer.
type UnpinConfig struct {
	Mode string
}

// FetchConfig configures source fetchers.
type FetchConfig struct {
	Git         string
	HTTPTimeout time.Duration
}
