package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/adapters/shell"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

const (
	NodeID     graft.ID = "adapter.pip"
	PathNodeID graft.ID = "adapter.pip.python_path"
)

// PathInstaller is the pip installer honoring install.python_path.
// It is a distinct type so graft can tell the two nodes apart.
type PathInstaller struct {
	*Installer
}

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID},
		Run: func(ctx context.Context) (*Installer, error) {
			cfg, executor, err := deps(ctx)
			if err != nil {
				return nil, err
			}
			return New(executor, cfg.Python), nil
		},
	})

	graft.Register(graft.Node[*PathInstaller]{
		ID:        PathNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID},
		Run: func(ctx context.Context) (*PathInstaller, error) {
			cfg, executor, err := deps(ctx)
			if err != nil {
				return nil, err
			}
			return &PathInstaller{NewWithPythonPath(executor, cfg.Python, cfg.Install.PythonPath)}, nil
		},
	})
}

func deps(ctx context.Context) (*domain.Config, ports.Executor, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, nil, err
	}
	return cfg, executor, nil
}
