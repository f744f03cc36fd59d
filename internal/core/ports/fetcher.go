package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks

// Fetcher materializes a package source tree.
type Fetcher interface {
	// Fetch places the source described by spec into destDir.
	Fetch(ctx context.Context, spec domain.FetchSpec, destDir string) error
}

// FetcherSet selects a Fetcher by source kind.
type FetcherSet interface {
	// For returns the fetcher for kind, or false when the kind has none.
	For(kind domain.SourceKind) (Fetcher, bool)
}
