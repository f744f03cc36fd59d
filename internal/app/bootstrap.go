package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/builder"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// StepInstaller builds and installs a single source tree.
type StepInstaller interface {
	Install(ctx context.Context, lane domain.Lane, name domain.PackageName, dir string, opts builder.Options) error
}

// Sequence is a fixed install order for packages that depend on each other
// or on themselves at build time.
type Sequence struct {
	// Clones maps package names to the directories they were cloned to.
	Clones map[string]string `yaml:"clones"`
	Steps  []SequenceStep    `yaml:"sequence"`
}

// SequenceStep installs Name with the directories of Deps on the build path.
// A dep is a key of Clones or a directory.
type SequenceStep struct {
	Name string   `yaml:"name"`
	Deps []string `yaml:"deps"`
}

// LoadSequence reads a sequence file. Relative directories are resolved
// against the file's directory.
func LoadSequence(path string) (*Sequence, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read sequence file"), "path", path)
	}
	var seq Sequence
	if err := yaml.Unmarshal(data, &seq); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse sequence file"), "path", path)
	}

	base := filepath.Dir(path)
	for name, dir := range seq.Clones {
		seq.Clones[name] = absUnder(base, dir)
	}
	for i, step := range seq.Steps {
		if _, ok := seq.Clones[step.Name]; !ok {
			err := zerr.With(zerr.New("sequence step has no clone directory"), "package", step.Name)
			return nil, zerr.With(err, "path", path)
		}
		for j, dep := range step.Deps {
			if _, ok := seq.Clones[dep]; !ok {
				seq.Steps[i].Deps[j] = absUnder(base, dep)
			}
		}
	}
	return &seq, nil
}

func absUnder(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Bootstrapper installs a Sequence.
type Bootstrapper struct {
	installer StepInstaller
	installed ports.InstalledVersions
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewBootstrapper creates a Bootstrapper.
func NewBootstrapper(
	installer StepInstaller,
	installed ports.InstalledVersions,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Bootstrapper {
	return &Bootstrapper{
		installer: installer,
		installed: installed,
		telemetry: telemetry,
		logger:    logger,
	}
}

// BootstrapOptions are per-run choices for Run.
type BootstrapOptions struct {
	Legacy bool
	// SkipInstalled skips steps whose package is already installed.
	SkipInstalled bool
}

// Run installs the steps in order. Each step builds with its own directory
// on the module search path, followed by the directories of its deps that
// were not installed by an earlier step.
func (b *Bootstrapper) Run(ctx context.Context, seq *Sequence, opts BootstrapOptions) error {
	done := make(map[string]bool, len(seq.Steps))
	for _, step := range seq.Steps {
		dir := seq.Clones[step.Name]
		name := domain.Canonicalize(step.Name)

		if opts.SkipInstalled {
			skip, err := b.isInstalled(ctx, name)
			if err != nil {
				return err
			}
			if skip {
				b.logger.Info(fmt.Sprintf("Skipped %s: already installed", name))
				done[step.Name] = true
				continue
			}
		}

		pythonPath := []string{dir}
		for _, dep := range step.Deps {
			if done[dep] {
				continue
			}
			if d, ok := seq.Clones[dep]; ok {
				dep = d
			}
			pythonPath = append(pythonPath, dep)
		}

		b.logger.Info("Installing " + step.Name)
		stepOpts := builder.Options{Legacy: opts.Legacy, PythonPath: pythonPath}
		if err := b.installer.Install(ctx, domain.LaneBuildTool, name, dir, stepOpts); err != nil {
			return zerr.With(zerr.Wrap(err, "bootstrap step failed"), "package", step.Name)
		}
		done[step.Name] = true
	}
	return nil
}

func (b *Bootstrapper) isInstalled(ctx context.Context, name domain.PackageName) (bool, error) {
	_, ok, err := b.installed.InstalledVersion(ctx, name)
	if err != nil || !ok {
		return false, err
	}
	_, vertex := b.telemetry.Record(ctx, fmt.Sprintf("%s %s", domain.LaneBuildTool, name))
	vertex.Cached()
	return true, nil
}
