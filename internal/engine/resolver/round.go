package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Round is one iteration of the resolution loop.
type Round struct {
	build *SubRound
	pkgs  *SubRound
	// dists is shared by every round of one resolution.
	dists *domain.OrderedMap[domain.PackageName, domain.PackageName]
}

// NewRound creates a round with empty build tool and package lanes.
func NewRound() *Round {
	r := &Round{dists: domain.NewOrderedMap[domain.PackageName, domain.PackageName]()}
	r.build = newSubRound(domain.LaneBuildTool, r)
	r.pkgs = newSubRound(domain.LanePackage, r)
	return r
}

// Lane returns the sub-round for l.
func (r *Round) Lane(l domain.Lane) *SubRound {
	if l == domain.LaneBuildTool {
		return r.build
	}
	return r.pkgs
}

// Lanes returns both sub-rounds, build tools first.
func (r *Round) Lanes() []*SubRound {
	return []*SubRound{r.build, r.pkgs}
}

func (r *Round) peer(l domain.Lane) *SubRound {
	if l == domain.LaneBuildTool {
		return r.pkgs
	}
	return r.build
}

func (r *Round) others(l domain.Lane) []*SubRound {
	return []*SubRound{r.peer(l)}
}

// HasWork reports whether either lane has packages waiting to be fetched.
func (r *Round) HasWork() bool {
	return r.build.HasWork() || r.pkgs.HasWork()
}

// Seed queues the requested packages into the package lane.
func (r *Round) Seed(names []domain.PackageName) {
	for _, n := range names {
		r.pkgs.Schedule(n)
	}
}

// Step fetches everything queued in r, discovers the dependencies of the newly
// fetched packages and returns the round that processes them.
// Newly fetched source directories are added to installDirs.
func (r *Round) Step(
	ctx context.Context,
	env *Env,
	prefs domain.ResolutionPrefs,
	installDirs *Dirs,
	sourcesDir string,
) (*Round, error) {
	for _, lane := range r.Lanes() {
		if err := lane.Fetch(ctx, env, installDirs, sourcesDir); err != nil {
			return nil, err
		}
	}

	next := NewRound()
	next.dists = r.dists
	for _, this := range r.Lanes() {
		if err := r.resolveDeps(ctx, env, prefs, this, next); err != nil {
			return nil, err
		}
	}

	for _, this := range r.Lanes() {
		successor := next.Lane(this.lane)
		successor.resolved.Merge(this.resolved)
		successor.ignored.Merge(this.ignored)
		installDirs.Merge(this.fetched)
	}
	return next, nil
}

// resolveDeps walks the packages fetched by this lane. Packages claimed into
// the lane during the walk are processed in the same walk.
func (r *Round) resolveDeps(ctx context.Context, env *Env, prefs domain.ResolutionPrefs, this *SubRound, next *Round) error {
	others := r.others(this.lane)
	for i := 0; i < this.fetched.Len(); i++ {
		name, dir := this.fetched.At(i)
		if this.ignored.Has(name) || this.resolved.Has(name) {
			continue
		}

		md, err := env.Extractor.Extract(ctx, dir)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "cannot read package metadata"), "package", name.String())
			return zerr.With(err, "lane", this.lane.String())
		}
		env.Logger.Debug(fmt.Sprintf("Resolving dependencies of %s %s %s", this.lane, name, md.Version))
		if md.Name != "" && md.Name != name {
			r.dists.Set(name, md.Name)
		}

		for _, kind := range r.Lanes() {
			reqs := kind.depsOf(prefs, md)
			sanitized := make([]domain.Requirement, len(reqs))
			for j, req := range reqs {
				sanitized[j] = env.Sanitizer.Sanitize(req)
			}
			if err := this.AppendNewDeps(ctx, env, kind.Prefs(prefs), sanitized, others, next.Lane(kind.lane)); err != nil {
				return zerr.With(err, "package", name.String())
			}
		}
		this.resolved.Set(name, dir)
	}
	return nil
}

// Plan returns what has been resolved so far.
func (r *Round) Plan() *Plan {
	return &Plan{
		BuildTools: r.build.resolved,
		Packages:   r.pkgs.resolved,
		Ignored:    mergeIgnored(r.build.ignored, r.pkgs.ignored),
		Dists:      r.dists,
	}
}

func mergeIgnored(lanes ...*domain.OrderedMap[domain.PackageName, domain.RegistryEntry]) []domain.RegistryEntry {
	seen := domain.NewOrderedMap[domain.PackageName, domain.RegistryEntry]()
	for _, l := range lanes {
		seen.Merge(l)
	}
	res := make([]domain.RegistryEntry, 0, seen.Len())
	for i := range seen.Len() {
		_, e := seen.At(i)
		res = append(res, e)
	}
	return res
}
