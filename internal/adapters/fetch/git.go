package fetch

import (
	"context"
	"regexp"
	"strconv"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var commitRE = regexp.MustCompile(`^[0-9a-fA-F]{7,40}$`)

// Git clones repositories with the git command line client.
type Git struct {
	executor ports.Executor
	binary   string
}

var _ ports.Fetcher = (*Git)(nil)

// NewGit creates a Git fetcher running binary, "git" when empty.
func NewGit(executor ports.Executor, binary string) *Git {
	if binary == "" {
		binary = "git"
	}
	return &Git{executor: executor, binary: binary}
}

// Fetch clones spec.Location into destDir.
// Branch and tag refs are cloned directly; commit ids are checked out after cloning.
func (g *Git) Fetch(ctx context.Context, spec domain.FetchSpec, destDir string) error {
	args := []string{"clone", "--quiet"}
	isCommit := commitRE.MatchString(spec.RefSpec)
	if spec.Depth > 0 && !isCommit {
		args = append(args, "--depth", strconv.Itoa(spec.Depth))
	}
	if spec.RefSpec != "" && !isCommit {
		args = append(args, "--branch", spec.RefSpec)
	}
	args = append(args, "--", spec.Location, destDir)

	if err := g.executor.Execute(ctx, &domain.Command{Name: g.binary, Args: args}); err != nil {
		return fetchError(err, spec, "git clone failed")
	}

	if isCommit {
		checkout := &domain.Command{
			Name: g.binary,
			Args: []string{"-c", "advice.detachedHead=false", "checkout", "--quiet", spec.RefSpec},
			Dir:  destDir,
		}
		if err := g.executor.Execute(ctx, checkout); err != nil {
			return fetchError(err, spec, "git checkout failed")
		}
	}
	return nil
}
