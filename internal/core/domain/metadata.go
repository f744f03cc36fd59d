package domain

// PackageMetadata describes a fetched source tree.
// It is extracted once per package, when the package first reaches StageFetched.
type PackageMetadata struct {
	Name      PackageName
	Version   string
	Deps      []Requirement
	BuildDeps []Requirement
}
