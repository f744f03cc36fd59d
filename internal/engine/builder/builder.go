// Package builder turns a resolved plan into installed packages.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Backends holds the build and install backends the Builder chooses from.
type Backends struct {
	PEP517  ports.BuildBackend
	SetupPy ports.BuildBackend
	Install ports.InstallBackend
	// PathInstall installs with an extended module search path.
	// It is used instead of Install when Settings.InstallPythonPath is set.
	PathInstall ports.InstallBackend
}

// Settings configures the Builder.
type Settings struct {
	BuildPythonPath   []string
	InstallPythonPath []string
	// Parallelism bounds concurrent builds within a lane.
	Parallelism int
}

// Options are per-run choices.
type Options struct {
	// Legacy selects the setup.py backend.
	Legacy bool
	// PythonPath is prepended to the configured build search path.
	PythonPath []string
}

// Builder builds wheels and installs them, lane by lane.
type Builder struct {
	backends  Backends
	ledger    ports.InstallLedger
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
	settings  Settings
}

// New creates a Builder.
func New(
	backends Backends,
	ledger ports.InstallLedger,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
	settings Settings,
) *Builder {
	return &Builder{
		backends:  backends,
		ledger:    ledger,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
		settings:  settings,
	}
}

// BuildAndInstall installs every lane of plan. The build tool lane is fully
// installed before the package lane starts.
func (b *Builder) BuildAndInstall(ctx context.Context, plan *resolver.Plan, installDirs *resolver.Dirs, opts Options) error {
	for _, lane := range domain.Lanes() {
		if err := b.installLane(ctx, lane, plan, installDirs, opts); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) installLane(ctx context.Context, lane domain.Lane, plan *resolver.Plan, installDirs *resolver.Dirs, opts Options) error {
	resolved := plan.Lane(lane)
	if resolved.Len() == 0 {
		b.logger.Info(fmt.Sprintf("No %ss to install", lane))
		return nil
	}
	b.logger.Info(fmt.Sprintf("Installing %ss", lane))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, b.settings.Parallelism))
	for i := range resolved.Len() {
		name, dir := resolved.At(i)
		if d, ok := installDirs.Get(name); ok {
			dir = d
		}
		g.Go(func() error {
			return b.install(gctx, lane, name, plan.Dist(name), dir, opts)
		})
	}
	return g.Wait()
}

// Install builds the package in dir and installs the resulting wheel.
func (b *Builder) Install(ctx context.Context, lane domain.Lane, name domain.PackageName, dir string, opts Options) error {
	return b.install(ctx, lane, name, name, dir, opts)
}

func (b *Builder) install(ctx context.Context, lane domain.Lane, name, dist domain.PackageName, dir string, opts Options) (err error) {
	ctx, vertex := b.telemetry.Record(ctx, fmt.Sprintf("%s %s", lane, name))
	defer func() { vertex.Complete(err) }()

	wheels, err := os.MkdirTemp(dir, "wheels")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create wheel directory"), "package", name.String())
	}
	defer func() { _ = os.RemoveAll(wheels) }()

	backend := b.backends.PEP517
	if opts.Legacy {
		backend = b.backends.SetupPy
	}
	pythonPath := append(append([]string(nil), opts.PythonPath...), b.settings.BuildPythonPath...)

	b.logger.Info(fmt.Sprintf("Building %s %s with %s", lane, name, backend.Name()))
	if err := backend.Build(ctx, dir, wheels, pythonPath); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to build wheel"), "package", name.String())
		return zerr.With(err, "backend", backend.Name())
	}

	artifact, err := FindArtifact(wheels, name, dist)
	if err != nil {
		return err
	}
	vertex.Log(domain.LogLevelInfo, "built "+filepath.Base(artifact))

	if err := b.installer().Install(ctx, []string{artifact}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to install wheel"), "package", name.String())
	}
	b.record(lane, name, dir, artifact)
	return nil
}

func (b *Builder) installer() ports.InstallBackend {
	if len(b.settings.InstallPythonPath) > 0 && b.backends.PathInstall != nil {
		return b.backends.PathInstall
	}
	return b.backends.Install
}

// record adds the install to the ledger. The install already happened, so
// failures here are reported but not returned.
func (b *Builder) record(lane domain.Lane, name domain.PackageName, dir, artifact string) {
	hash, err := b.hasher.HashTree(dir)
	if err != nil {
		b.logger.Warn(fmt.Sprintf("Cannot hash sources of %s: %v", name, err))
	}

	_, version := splitWheelName(filepath.Base(artifact))
	rec := domain.InstallRecord{
		Name:        name.String(),
		Version:     version,
		Lane:        lane.String(),
		SourceHash:  hash,
		Artifact:    filepath.Base(artifact),
		InstalledAt: time.Now().UTC(),
	}
	if err := b.ledger.Record(rec); err != nil {
		b.logger.Warn(fmt.Sprintf("Cannot record install of %s: %v", name, err))
	}
}
