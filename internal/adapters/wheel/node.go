package wheel

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/adapters/shell"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

const (
	PEP517NodeID  graft.ID = "adapter.wheel.pep517"
	SetupPyNodeID graft.ID = "adapter.wheel.setuppy"
)

func init() {
	graft.Register(graft.Node[*PEP517]{
		ID:        PEP517NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID},
		Run: func(ctx context.Context) (*PEP517, error) {
			executor, python, err := deps(ctx)
			if err != nil {
				return nil, err
			}
			return NewPEP517(executor, python), nil
		},
	})

	graft.Register(graft.Node[*SetupPy]{
		ID:        SetupPyNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID},
		Run: func(ctx context.Context) (*SetupPy, error) {
			executor, python, err := deps(ctx)
			if err != nil {
				return nil, err
			}
			return NewSetupPy(executor, python), nil
		},
	})
}

func deps(ctx context.Context) (ports.Executor, string, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, "", err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, "", err
	}
	return executor, cfg.Python, nil
}
