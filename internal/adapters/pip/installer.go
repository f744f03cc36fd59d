// Package pip installs built wheels with the pip command line.
package pip

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.InstallBackend by force-reinstalling wheels
// without resolving their dependencies.
type Installer struct {
	executor   ports.Executor
	python     string
	pythonPath []string
}

var _ ports.InstallBackend = (*Installer)(nil)

// New creates an Installer using the interpreter's default module search path.
func New(executor ports.Executor, python string) *Installer {
	return &Installer{executor: executor, python: python}
}

// NewWithPythonPath creates an Installer that prepends pythonPath to the
// module search path of the pip process.
func NewWithPythonPath(executor ports.Executor, python string, pythonPath []string) *Installer {
	return &Installer{executor: executor, python: python, pythonPath: pythonPath}
}

// Install installs artifacts in a single pip invocation.
func (i *Installer) Install(ctx context.Context, artifacts []string) error {
	if len(artifacts) == 0 {
		return nil
	}
	args := append([]string{"-m", "pip", "install", "--no-deps", "--force-reinstall", "--no-index", "--"}, artifacts...)
	cmd := &domain.Command{Name: i.python, Args: args}
	if len(i.pythonPath) > 0 {
		cmd.Env = map[string]string{"PYTHONPATH": strings.Join(i.pythonPath, string(os.PathListSeparator))}
	}
	if err := i.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInstallFailed, err.Error()), "artifacts", artifacts)
	}
	return nil
}
