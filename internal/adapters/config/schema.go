package config

import "time"

// DefaultFilename is the configuration file looked up from the working directory upwards.
const DefaultFilename = "forge.yaml"

// Forgefile represents the structure of the forge.yaml configuration file.
// Relative paths are resolved against the directory holding the file.
type Forgefile struct {
	Version  string      `yaml:"version"`
	WorkDir  string      `yaml:"work_dir"`
	Python   string      `yaml:"python"`
	SiteDirs []string    `yaml:"site_dirs"`
	Ledger   string      `yaml:"ledger"`
	Registry RegistryDTO `yaml:"registry"`
	Resolver ResolverDTO `yaml:"resolver"`
	Build    BuildDTO    `yaml:"build"`
	Install  InstallDTO  `yaml:"install"`
	Unpin    UnpinDTO    `yaml:"unpin"`
	Fetch    FetchDTO    `yaml:"fetch"`
}

// RegistryDTO represents the registry section.
type RegistryDTO struct {
	Path      string `yaml:"path"`
	CacheSize int    `yaml:"cache_size"`
}

// ResolverDTO represents the resolver section.
type ResolverDTO struct {
	MaxRounds        int `yaml:"max_rounds"`
	FetchParallelism int `yaml:"fetch_parallelism"`
}

// BuildDTO represents the build section.
type BuildDTO struct {
	Backend     string   `yaml:"backend"`
	Parallelism int      `yaml:"parallelism"`
	PythonPath  []string `yaml:"python_path"`
}

// InstallDTO represents the install section.
type InstallDTO struct {
	PythonPath []string `yaml:"python_path"`
}

// UnpinDTO represents the unpin section.
type UnpinDTO struct {
	Mode string `yaml:"mode"`
}

// FetchDTO represents the fetch section.
type FetchDTO struct {
	Git         string        `yaml:"git"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}
