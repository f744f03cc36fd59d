package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultMaxRounds bounds the resolution loop when no limit is configured.
const DefaultMaxRounds = 1000

// Plan is the outcome of resolution: the packages to build and install, per lane.
type Plan struct {
	BuildTools *Dirs
	Packages   *Dirs
	// Ignored lists packages that must be provided by the system.
	Ignored []domain.RegistryEntry
	// Dists maps requested names to the distribution names found in their
	// metadata, when the two differ.
	Dists *domain.OrderedMap[domain.PackageName, domain.PackageName]
}

// Dist returns the distribution name name was built as.
func (p *Plan) Dist(name domain.PackageName) domain.PackageName {
	if p.Dists == nil {
		return name
	}
	if d, ok := p.Dists.Get(name); ok {
		return d
	}
	return name
}

// Lane returns the resolved packages of l.
func (p *Plan) Lane(l domain.Lane) *Dirs {
	if l == domain.LaneBuildTool {
		return p.BuildTools
	}
	return p.Packages
}

// Resolve steps rounds, starting from the given seed, until no lane has work left.
// It fails with domain.ErrRoundLimitExceeded after maxRounds rounds; a value
// below 1 selects DefaultMaxRounds.
func Resolve(
	ctx context.Context,
	env *Env,
	prefs domain.ResolutionPrefs,
	seed []domain.PackageName,
	installDirs *Dirs,
	sourcesDir string,
	maxRounds int,
) (*Plan, error) {
	if maxRounds < 1 {
		maxRounds = DefaultMaxRounds
	}

	rr := NewRound()
	rr.Seed(seed)

	roundPrefs := prefs.Clone(domain.WithUpgrade(false))
	for n := 0; rr.HasWork(); n++ {
		if n >= maxRounds {
			return nil, zerr.With(zerr.Wrap(domain.ErrRoundLimitExceeded, "too many resolution rounds"), "max_rounds", maxRounds)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		env.Logger.Debug(fmt.Sprintf("Resolution round %d: %d build tools, %d packages to fetch",
			n+1, len(rr.build.ToFetch()), len(rr.pkgs.ToFetch())))

		next, err := rr.Step(ctx, env, roundPrefs, installDirs, sourcesDir)
		if err != nil {
			return nil, err
		}
		rr = next
	}
	return rr.Plan(), nil
}
