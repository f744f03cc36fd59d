package resolver

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Dirs maps package names to their source directories.
type Dirs = domain.OrderedMap[domain.PackageName, string]

// NewDirs returns an empty Dirs.
func NewDirs() *Dirs {
	return domain.NewOrderedMap[domain.PackageName, string]()
}

// SubRound is one lane of a Round.
type SubRound struct {
	lane domain.Lane
	// moveToThis makes the lane claim packages another lane already holds.
	moveToThis bool
	prefsPatch []domain.PrefsOption
	depsOf     func(domain.ResolutionPrefs, *domain.PackageMetadata) []domain.Requirement

	toFetch  *domain.OrderedSet[domain.PackageName]
	fetched  *Dirs
	resolved *Dirs
	ignored  *domain.OrderedMap[domain.PackageName, domain.RegistryEntry]

	round *Round
}

func newSubRound(lane domain.Lane, round *Round) *SubRound {
	s := &SubRound{
		lane:     lane,
		toFetch:  domain.NewOrderedSet[domain.PackageName](),
		fetched:  NewDirs(),
		resolved: NewDirs(),
		ignored:  domain.NewOrderedMap[domain.PackageName, domain.RegistryEntry](),
		round:    round,
	}

	switch lane {
	case domain.LaneBuildTool:
		s.moveToThis = true
		s.prefsPatch = []domain.PrefsOption{domain.WithForceReinstall(false)}
		s.depsOf = func(_ domain.ResolutionPrefs, md *domain.PackageMetadata) []domain.Requirement {
			return md.BuildDeps
		}
	default:
		s.depsOf = func(prefs domain.ResolutionPrefs, md *domain.PackageMetadata) []domain.Requirement {
			if !prefs.ResolveDeps {
				return nil
			}
			return md.Deps
		}
	}
	return s
}

// Lane returns the lane this sub-round belongs to.
func (s *SubRound) Lane() domain.Lane {
	return s.lane
}

// Prefs returns prefs with the lane's overrides applied.
func (s *SubRound) Prefs(prefs domain.ResolutionPrefs) domain.ResolutionPrefs {
	return prefs.Clone(s.prefsPatch...)
}

// ToFetch returns the names waiting to be fetched, in scheduling order.
func (s *SubRound) ToFetch() []domain.PackageName {
	return s.toFetch.Items()
}

// Fetched returns the packages fetched in this round.
func (s *SubRound) Fetched() *Dirs {
	return s.fetched
}

// Resolved returns the packages whose dependencies have been discovered.
func (s *SubRound) Resolved() *Dirs {
	return s.resolved
}

// Ignored returns the packages that are expected to be provided by the system.
func (s *SubRound) Ignored() *domain.OrderedMap[domain.PackageName, domain.RegistryEntry] {
	return s.ignored
}

// HasWork reports whether anything is waiting to be fetched.
func (s *SubRound) HasWork() bool {
	return s.toFetch.Len() > 0
}

// Schedule queues name for fetching.
//
// A lane that claims packages (the build tool lane) removes name from the
// peer lane's queue; the other lane leaves a name alone that the peer has
// already queued.
func (s *SubRound) Schedule(name domain.PackageName) {
	if peer := s.peer(); peer != nil {
		if s.moveToThis {
			peer.toFetch.Delete(name)
		} else if peer.toFetch.Has(name) {
			return
		}
	}
	s.toFetch.Add(name)
}

func (s *SubRound) peer() *SubRound {
	if s.round == nil {
		return nil
	}
	return s.round.peer(s.lane)
}

type fetchResult struct {
	dir     string
	ignored *domain.RegistryEntry
}

// Fetch materializes every queued package under sourcesDir.
//
// Packages already present in installDirs are not fetched again. Packages
// whose registry entry is of kind system and has no fetcher are moved to the
// ignored set. The queue is empty afterwards.
func (s *SubRound) Fetch(ctx context.Context, env *Env, installDirs *Dirs, sourcesDir string) error {
	names := s.toFetch.Items()
	results := make([]fetchResult, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(env.fetchLimit())
	for i, name := range names {
		if dir, ok := installDirs.Get(name); ok {
			results[i] = fetchResult{dir: dir}
			continue
		}
		g.Go(func() error {
			res, err := s.fetchOne(gctx, env, name, sourcesDir)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range names {
		res := results[i]
		if res.ignored != nil {
			env.Logger.Info(fmt.Sprintf("Ignoring %s %s, must be installed by the system", s.lane, name))
			s.ignored.Set(name, *res.ignored)
			continue
		}
		s.fetched.Set(name, res.dir)
	}
	s.toFetch.Clear()
	return nil
}

func (s *SubRound) fetchOne(ctx context.Context, env *Env, name domain.PackageName, sourcesDir string) (fetchResult, error) {
	entry, err := env.Registry.Lookup(ctx, name)
	if err != nil {
		return fetchResult{}, zerr.With(zerr.Wrap(err, "registry lookup failed"), "package", name.String())
	}

	fetcher, ok := env.Fetchers.For(entry.Fetch.Kind)
	if !ok {
		if entry.Fetch.Kind == domain.SourceSystem {
			return fetchResult{ignored: &entry}, nil
		}
		err := zerr.With(zerr.Wrap(domain.ErrUnresolvableFetchSpec, "cannot fetch package"), "package", name.String())
		return fetchResult{}, zerr.With(err, "kind", string(entry.Fetch.Kind))
	}

	dest := filepath.Join(sourcesDir, name.String())
	env.Logger.Info(fmt.Sprintf("Fetching %s %s from %s", s.lane, name, entry.Fetch.Location))
	if err := fetcher.Fetch(ctx, entry.Fetch, dest); err != nil {
		return fetchResult{}, zerr.With(zerr.Wrap(err, "failed to fetch package"), "package", name.String())
	}

	if entry.Fetch.SubDir != "" {
		dest = filepath.Join(dest, entry.Fetch.SubDir)
	}
	return fetchResult{dir: dest}, nil
}

// IsReinstallationNeeded decides whether req has to be (re)built and installed.
// Requirements carrying an environment marker are never scheduled.
func (s *SubRound) IsReinstallationNeeded(ctx context.Context, env *Env, req domain.Requirement, prefs domain.ResolutionPrefs) (bool, error) {
	if req.Marker != "" {
		return false, nil
	}

	installed, ok, err := env.Installed.InstalledVersion(ctx, req.Name)
	if err != nil {
		return false, zerr.With(err, "lane", s.lane.String())
	}
	if !ok {
		env.Logger.Debug(fmt.Sprintf("%s %s not installed", s.lane, req.Name))
		return true, nil
	}

	env.Logger.Debug(fmt.Sprintf("%s %s version installed: %s", s.lane, req.Name, installed))
	if prefs.Upgrade {
		return true, nil
	}
	if prefs.ForceReinstall {
		env.Logger.Info(fmt.Sprintf("Forcing reinstallation of %s", req.Raw))
		return true, nil
	}

	v, err := domain.ParseVersion(installed)
	if err != nil {
		env.Logger.Warn(fmt.Sprintf("Cannot parse installed version %q of %s, reinstalling", installed, req.Name))
		return true, nil
	}
	if req.Specifier.Contains(v) {
		env.Logger.Info(fmt.Sprintf("Suitable version of %s installed, skipping", req.Name))
		return false, nil
	}
	return true, nil
}

// IsAlreadyBeingProcessed reports how far name has advanced in this lane.
// Queued names count as not resolved.
func (s *SubRound) IsAlreadyBeingProcessed(name domain.PackageName) domain.Stage {
	switch {
	case s.fetched.Has(name):
		return domain.StageFetched
	case s.resolved.Has(name):
		return domain.StageDepsResolved
	default:
		return domain.StageNotResolved
	}
}

// AppendNewDeps schedules the requirements in reqs into successor.
//
// Requirements are dropped when the package is ignored by this lane, when the
// installed version already satisfies them, or when some lane has already
// advanced the package. When another lane holds the package and this lane
// claims packages, the entry is moved into this lane instead.
func (s *SubRound) AppendNewDeps(
	ctx context.Context,
	env *Env,
	prefs domain.ResolutionPrefs,
	reqs []domain.Requirement,
	others []*SubRound,
	successor *SubRound,
) error {
	for _, req := range reqs {
		name := req.Name
		if s.ignored.Has(name) {
			env.Logger.Info(fmt.Sprintf("Ignoring %s %s, must be installed by the system", s.lane, req.Raw))
			continue
		}

		needed, err := s.IsReinstallationNeeded(ctx, env, req, prefs)
		if err != nil {
			return err
		}
		if !needed {
			continue
		}

		if s.claimedElsewhere(env, name, others) {
			continue
		}

		if stage := s.IsAlreadyBeingProcessed(name); stage != domain.StageNotResolved {
			env.Logger.Debug(fmt.Sprintf("%s already %s in %ss, skipping", name, stage, s.lane))
			continue
		}

		successor.Schedule(name)
	}
	return nil
}

// claimedElsewhere moves name into this lane when another lane holds it and
// this lane claims packages. It reports true when another lane keeps it.
func (s *SubRound) claimedElsewhere(env *Env, name domain.PackageName, others []*SubRound) bool {
	for _, other := range others {
		stage := other.IsAlreadyBeingProcessed(name)
		if stage == domain.StageNotResolved {
			continue
		}
		if !s.moveToThis {
			env.Logger.Debug(fmt.Sprintf("%s already scheduled for %s in %ss, skipping", name, stage, other.lane))
			return true
		}
		env.Logger.Debug(fmt.Sprintf("Moving %s from %ss to %ss", name, other.lane, s.lane))
		s.claim(other, name)
	}
	return false
}

func (s *SubRound) claim(other *SubRound, name domain.PackageName) {
	if dir, ok := other.fetched.Get(name); ok {
		s.fetched.Set(name, dir)
		other.fetched.Delete(name)
	}
	if dir, ok := other.resolved.Get(name); ok {
		s.resolved.Set(name, dir)
		other.resolved.Delete(name)
	}
}
