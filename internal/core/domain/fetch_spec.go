package domain

// SourceKind selects the mechanism used to materialize a package's source tree.
type SourceKind string

const (
	// SourceGit clones a version control repository.
	SourceGit SourceKind = "git"
	// SourceLocal copies a directory that already exists on disk.
	SourceLocal SourceKind = "local"
	// SourceArchive downloads and unpacks a source archive.
	SourceArchive SourceKind = "archive"
	// SourceSystem marks a package that is provided by the target system and is never fetched.
	SourceSystem SourceKind = "system"
)

// FetchSpec tells a fetcher where a package's source lives.
type FetchSpec struct {
	Kind     SourceKind
	Location string
	// Depth limits clone history; zero means full history.
	Depth   int
	RefSpec string
	// SubDir is the package root inside the fetched tree, if not the tree root.
	SubDir string
}

// RegistryEntry is the registry's answer for a single package.
type RegistryEntry struct {
	Name  PackageName
	Fetch FetchSpec
}
