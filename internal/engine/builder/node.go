package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/pip"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/wheel"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			wheel.PEP517NodeID,
			wheel.SetupPyNodeID,
			pip.NodeID,
			pip.PathNodeID,
			cas.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runBuilderNode,
	})
}

func runBuilderNode(ctx context.Context) (*Builder, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	pep517, err := graft.Dep[*wheel.PEP517](ctx)
	if err != nil {
		return nil, err
	}
	setupPy, err := graft.Dep[*wheel.SetupPy](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[*pip.Installer](ctx)
	if err != nil {
		return nil, err
	}
	pathInstaller, err := graft.Dep[*pip.PathInstaller](ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := graft.Dep[ports.InstallLedger](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	backends := Backends{
		PEP517:      pep517,
		SetupPy:     setupPy,
		Install:     installer,
		PathInstall: pathInstaller,
	}
	settings := Settings{
		BuildPythonPath:   cfg.Build.PythonPath,
		InstallPythonPath: cfg.Install.PythonPath,
		Parallelism:       cfg.Build.Parallelism,
	}
	return New(backends, ledger, hasher, telemetry, log, settings), nil
}
