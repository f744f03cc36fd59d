package fetch

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/adapters/shell"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.fetchers"

func init() {
	graft.Register(graft.Node[ports.FetcherSet]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.FetcherSet, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewSet(map[domain.SourceKind]ports.Fetcher{
				domain.SourceGit:     NewGit(executor, cfg.Fetch.Git),
				domain.SourceLocal:   NewLocal(),
				domain.SourceArchive: NewArchive(&http.Client{Timeout: cfg.Fetch.HTTPTimeout}),
			}), nil
		},
	})
}
