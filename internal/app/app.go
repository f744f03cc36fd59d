// Package app implements the application layer for forge.
package app

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/builder"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	installer    *Installer
	bootstrapper *Bootstrapper
	ledger       ports.InstallLedger
	cfg          *domain.Config
}

// New creates a new App instance.
func New(installer *Installer, bootstrapper *Bootstrapper, ledger ports.InstallLedger, cfg *domain.Config) *App {
	return &App{
		installer:    installer,
		bootstrapper: bootstrapper,
		ledger:       ledger,
		cfg:          cfg,
	}
}

// InstallRequest describes one install command.
type InstallRequest struct {
	Names []string
	// RequirementFiles are read and their names appended to Names.
	RequirementFiles []string
	Prefs            domain.ResolutionPrefs
	Legacy           bool
}

// Install resolves, builds and installs the requested packages.
func (a *App) Install(ctx context.Context, req InstallRequest) error {
	names := append([]string(nil), req.Names...)
	for _, path := range req.RequirementFiles {
		reqs, err := ReadRequirementsFile(path)
		if err != nil {
			return err
		}
		for _, r := range reqs {
			names = append(names, r.Name.String())
		}
	}

	opts := builder.Options{Legacy: a.legacy(req.Legacy)}
	if _, err := a.installer.Install(ctx, req.Prefs, names, opts); err != nil {
		return zerr.Wrap(err, "install failed")
	}
	return nil
}

// Bootstrap installs the packages of a sequence file in order.
func (a *App) Bootstrap(ctx context.Context, sequencePath string, legacy, skipInstalled bool) error {
	seq, err := LoadSequence(sequencePath)
	if err != nil {
		return err
	}
	opts := BootstrapOptions{Legacy: a.legacy(legacy), SkipInstalled: skipInstalled}
	if err := a.bootstrapper.Run(ctx, seq, opts); err != nil {
		return zerr.Wrap(err, "bootstrap failed")
	}
	return nil
}

// History returns the install ledger, oldest first.
func (a *App) History() ([]domain.InstallRecord, error) {
	return a.ledger.List()
}

func (a *App) legacy(flag bool) bool {
	return flag || a.cfg.Build.Backend == domain.BuildBackendSetupPy
}
