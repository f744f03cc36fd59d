package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks

// MetadataExtractor reads name, version and dependencies from a source tree.
type MetadataExtractor interface {
	Extract(ctx context.Context, sourceDir string) (*domain.PackageMetadata, error)
}

// InstalledVersions answers which version of a package is installed.
type InstalledVersions interface {
	// InstalledVersion returns the installed version of name.
	// ok is false when the package is not installed. When both the dash and
	// the underscore spelling of name are installed it fails with
	// domain.ErrIdentityConflict.
	InstalledVersion(ctx context.Context, name domain.PackageName) (version string, ok bool, err error)
}

// RequirementSanitizer rewrites requirements before they are scheduled.
type RequirementSanitizer interface {
	Sanitize(req domain.Requirement) domain.Requirement
}
