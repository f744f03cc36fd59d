// Package resolver implements the round based, two lane dependency resolution.
//
// A Round holds a build tool lane and a package lane. Each Step fetches
// everything scheduled in the current round, reads the metadata of every newly
// fetched package and schedules its dependencies into the next round. Rounds
// are stepped until neither lane has anything left to fetch; the accumulated
// resolved sets then form the Plan.
package resolver

import (
	"go.trai.ch/forge/internal/core/ports"
)

// Env bundles the collaborators used while resolving.
type Env struct {
	Registry  ports.Registry
	Fetchers  ports.FetcherSet
	Extractor ports.MetadataExtractor
	Installed ports.InstalledVersions
	Sanitizer ports.RequirementSanitizer
	Logger    ports.Logger

	// FetchParallelism bounds concurrent fetches within one lane. Values below 2 fetch sequentially.
	FetchParallelism int
}

func (e *Env) fetchLimit() int {
	return max(1, e.FetchParallelism)
}
