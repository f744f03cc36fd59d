package domain

import "go.trai.ch/zerr"

var (
	// ErrUnresolvableFetchSpec is returned when a non-system dependency has no matching fetcher.
	ErrUnresolvableFetchSpec = zerr.New("no fetcher implemented for fetch specification")

	// ErrAmbiguousBuildArtifact is returned when more than one built wheel matches a package.
	ErrAmbiguousBuildArtifact = zerr.New("more than one build artifact for package")

	// ErrNoBuildArtifact is returned when the build backend produced no wheel for a package.
	ErrNoBuildArtifact = zerr.New("no build artifact for package")

	// ErrIdentityConflict is returned when both the dash and the underscore spelling
	// of a package are installed at the same time.
	ErrIdentityConflict = zerr.New("both dash and underscore distributions are installed, refusing to guess")

	// ErrPackageNotInRegistry is returned when the registry has no entry for a package.
	ErrPackageNotInRegistry = zerr.New("package not found in registry")

	// ErrFetchFailed is returned when a fetcher could not materialize a source tree.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrMetadataExtractionFailed is returned when package metadata cannot be read from a source tree.
	ErrMetadataExtractionFailed = zerr.New("metadata extraction failed")

	// ErrBuildFailed is returned when a build backend fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrInstallFailed is returned when the install backend fails.
	ErrInstallFailed = zerr.New("install failed")

	// ErrInvalidRequirement is returned when a requirement string cannot be parsed.
	ErrInvalidRequirement = zerr.New("invalid requirement")

	// ErrInvalidVersion is returned when a version string is not a valid PEP 440 version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidSpecifier is returned when a version specifier cannot be parsed.
	ErrInvalidSpecifier = zerr.New("invalid version specifier")

	// ErrNoPackagesSpecified is returned when an install is requested without package names.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrRoundLimitExceeded is returned when resolution does not converge within the configured number of rounds.
	ErrRoundLimitExceeded = zerr.New("resolution did not converge")

	// ErrConfigLoadFailed is returned when the configuration cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")
)
