package domain

// Lane identifies one of the two resolution tracks.
// A package's lane is decided by how it was discovered, not by the package itself.
type Lane int

const (
	// LaneBuildTool holds packages discovered as build-time dependencies.
	LaneBuildTool Lane = iota
	// LanePackage holds packages requested directly or discovered as regular dependencies.
	LanePackage
)

// Lanes returns every lane in processing order: build tools first.
func Lanes() []Lane {
	return []Lane{LaneBuildTool, LanePackage}
}

// String returns the human readable lane name.
func (l Lane) String() string {
	switch l {
	case LaneBuildTool:
		return "build tool"
	case LanePackage:
		return "package"
	default:
		return "unknown"
	}
}

// Stage is a package's position in its lane's pipeline.
type Stage int

const (
	// StageNotResolved means the package is at most pending fetch.
	StageNotResolved Stage = iota
	// StageFetched means the source tree is on disk.
	StageFetched
	// StageDepsResolved means the package's dependencies were discovered.
	StageDepsResolved
	// StageBuilt means a wheel was built.
	StageBuilt
	// StageInstalled means the wheel was installed.
	StageInstalled
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageNotResolved:
		return "not resolved"
	case StageFetched:
		return "fetched"
	case StageDepsResolved:
		return "dependencies resolved"
	case StageBuilt:
		return "built"
	case StageInstalled:
		return "installed"
	default:
		return "unknown"
	}
}
