// Package config provides the configuration loader for forge.
package config

import (
	"cmp"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values.
const (
	EnvConfig      = "FORGE_CONFIG"
	EnvPython      = "FORGE_PYTHON"
	EnvRegistry    = "FORGE_REGISTRY"
	EnvWorkDir     = "FORGE_WORK_DIR"
	EnvSiteDirs    = "FORGE_SITE_DIRS"
	EnvUnpinMode   = "FORGE_UNPIN_MODE"
	EnvParallelism = "FORGE_BUILD_PARALLELISM"
)

// Defaults applied when neither the file nor the environment set a value.
const (
	DefaultPython           = "python3"
	DefaultRegistryFile     = "registry.yaml"
	DefaultLedger           = ".forge/installed.json"
	DefaultWorkDir          = ".forge/work"
	DefaultCacheSize        = 256
	DefaultMaxRounds        = 1000
	DefaultFetchParallelism = 4
	DefaultHTTPTimeout      = 5 * time.Minute
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file, a .env
// file and FORGE_* environment variables, in increasing precedence.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileConfigLoader looking for forge.yaml.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename, logger: logger}
}

// Load builds the effective configuration for a run started in cwd.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	// A .env file never overrides variables already set in the process environment.
	if err := godotenv.Load(filepath.Join(cwd, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "failed to read .env file"), "cause", err.Error())
	}

	path := os.Getenv(EnvConfig)
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	if path == "" {
		path = discover(cwd, l.Filename)
	}

	var file Forgefile
	base := cwd
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		file = *loaded
		base = filepath.Dir(path)
		if l.logger != nil {
			l.logger.Debug("using configuration " + path)
		}
	}

	cfg := file.toDomain(base)
	if err := applyEnv(cfg, cwd); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Forgefile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "failed to read config file"), "path", path)
	}

	var file Forgefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "failed to parse config file"), "path", path)
		return nil, zerr.With(wrapped, "cause", err.Error())
	}
	return &file, nil
}

// discover walks from dir to the filesystem root and returns the first
// configuration file found, or "".
func discover(dir, filename string) string {
	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func (f *Forgefile) toDomain(base string) *domain.Config {
	return &domain.Config{
		WorkDir:    resolvePath(base, cmp.Or(f.WorkDir, DefaultWorkDir)),
		Python:     cmp.Or(f.Python, DefaultPython),
		SiteDirs:   resolvePaths(base, f.SiteDirs),
		LedgerPath: resolvePath(base, cmp.Or(f.Ledger, DefaultLedger)),
		Registry: domain.RegistryConfig{
			Path:      resolvePath(base, cmp.Or(f.Registry.Path, DefaultRegistryFile)),
			CacheSize: cmp.Or(f.Registry.CacheSize, DefaultCacheSize),
		},
		Resolver: domain.ResolverConfig{
			MaxRounds:        cmp.Or(f.Resolver.MaxRounds, DefaultMaxRounds),
			FetchParallelism: cmp.Or(f.Resolver.FetchParallelism, DefaultFetchParallelism),
		},
		Build: domain.BuildConfig{
			Backend:     cmp.Or(f.Build.Backend, domain.BuildBackendPEP517),
			Parallelism: cmp.Or(f.Build.Parallelism, 1),
			PythonPath:  resolvePaths(base, f.Build.PythonPath),
		},
		Install: domain.InstallConfig{
			PythonPath: resolvePaths(base, f.Install.PythonPath),
		},
		Unpin: domain.UnpinConfig{
			Mode: cmp.Or(f.Unpin.Mode, domain.UnpinFilter),
		},
		Fetch: domain.FetchConfig{
			Git:         cmp.Or(f.Fetch.Git, "git"),
			HTTPTimeout: cmp.Or(f.Fetch.HTTPTimeout, DefaultHTTPTimeout),
		},
	}
}

func applyEnv(cfg *domain.Config, cwd string) error {
	if v := strings.TrimSpace(os.Getenv(EnvPython)); v != "" {
		cfg.Python = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRegistry)); v != "" {
		cfg.Registry.Path = resolvePath(cwd, v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkDir)); v != "" {
		cfg.WorkDir = resolvePath(cwd, v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvSiteDirs)); v != "" {
		cfg.SiteDirs = resolvePaths(cwd, filepath.SplitList(v))
	}
	if v := strings.TrimSpace(os.Getenv(EnvUnpinMode)); v != "" {
		cfg.Unpin.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvParallelism)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "invalid build parallelism"), EnvParallelism, v)
		}
		cfg.Build.Parallelism = n
	}
	return nil
}

func validate(cfg *domain.Config) error {
	switch cfg.Build.Backend {
	case domain.BuildBackendPEP517, domain.BuildBackendSetupPy:
	default:
		return zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "unknown build backend"), "backend", cfg.Build.Backend)
	}
	switch cfg.Unpin.Mode {
	case domain.UnpinFilter, domain.UnpinAll, domain.UnpinNone:
	default:
		return zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "unknown unpin mode"), "mode", cfg.Unpin.Mode)
	}
	if cfg.Resolver.MaxRounds < 1 {
		return zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "max_rounds must be positive"), "max_rounds", cfg.Resolver.MaxRounds)
	}
	if cfg.Build.Parallelism < 1 {
		return zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, "build parallelism must be positive"), "parallelism", cfg.Build.Parallelism)
	}
	return nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return filepath.Join(base, p)
}

func resolvePaths(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, resolvePath(base, p))
		}
	}
	return out
}
