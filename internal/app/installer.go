package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/builder"
	"go.trai.ch/forge/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// PlanBuilder builds and installs a resolved plan.
type PlanBuilder interface {
	BuildAndInstall(ctx context.Context, plan *resolver.Plan, installDirs *resolver.Dirs, opts builder.Options) error
}

// Installer drives one install: resolve rounds until nothing is left to
// fetch, then build and install the plan.
type Installer struct {
	env       *resolver.Env
	builder   PlanBuilder
	logger    ports.Logger
	workDir   string
	maxRounds int
}

// NewInstaller creates an Installer. Scratch source trees are created below workDir.
func NewInstaller(env *resolver.Env, b PlanBuilder, logger ports.Logger, workDir string, maxRounds int) *Installer {
	return &Installer{
		env:       env,
		builder:   b,
		logger:    logger,
		workDir:   workDir,
		maxRounds: maxRounds,
	}
}

// Install resolves names and installs them with their dependencies.
// The scratch sources directory is removed on every exit path.
func (i *Installer) Install(ctx context.Context, prefs domain.ResolutionPrefs, names []string, opts builder.Options) (*resolver.Plan, error) {
	seed := domain.CanonicalizeAll(names)
	if len(seed) == 0 {
		return nil, domain.ErrNoPackagesSpecified
	}

	if err := os.MkdirAll(i.workDir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create work directory"), "path", i.workDir)
	}
	sourcesDir, err := os.MkdirTemp(i.workDir, "install_")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create sources directory"), "path", i.workDir)
	}
	defer func() {
		if err := os.RemoveAll(sourcesDir); err != nil {
			i.logger.Warn(fmt.Sprintf("Cannot remove %s: %v", sourcesDir, err))
		}
	}()

	installDirs := resolver.NewDirs()
	plan, err := resolver.Resolve(ctx, i.env, prefs, seed, installDirs, sourcesDir, i.maxRounds)
	if err != nil {
		return nil, err
	}
	for _, e := range plan.Ignored {
		i.logger.Info(fmt.Sprintf("Skipped %s: must be provided by the system", e.Name))
	}

	if err := i.builder.BuildAndInstall(ctx, plan, installDirs, opts); err != nil {
		return plan, err
	}
	return plan, nil
}
