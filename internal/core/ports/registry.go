package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// Registry maps a package name to where its source can be fetched from.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Lookup returns the registry entry for name.
	// Unknown names yield domain.ErrPackageNotInRegistry.
	Lookup(ctx context.Context, name domain.PackageName) (domain.RegistryEntry, error)
}
