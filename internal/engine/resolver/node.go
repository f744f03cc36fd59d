package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/installed" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/metadata"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/registry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/unpin"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the resolver environment Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Env]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			registry.NodeID,
			fetch.NodeID,
			metadata.NodeID,
			installed.NodeID,
			unpin.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Env, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			fetchers, err := graft.Dep[ports.FetcherSet](ctx)
			if err != nil {
				return nil, err
			}
			extractor, err := graft.Dep[ports.MetadataExtractor](ctx)
			if err != nil {
				return nil, err
			}
			installedVersions, err := graft.Dep[ports.InstalledVersions](ctx)
			if err != nil {
				return nil, err
			}
			sanitizer, err := graft.Dep[ports.RequirementSanitizer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Env{
				Registry:         reg,
				Fetchers:         fetchers,
				Extractor:        extractor,
				Installed:        installedVersions,
				Sanitizer:        sanitizer,
				Logger:           log,
				FetchParallelism: cfg.Resolver.FetchParallelism,
			}, nil
		},
	})
}
