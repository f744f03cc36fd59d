// Package wheel provides build backends that turn source trees into wheels.
package wheel

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// PEP517 builds wheels with the pypa "build" frontend inside the target
// interpreter, without an isolated build environment, so build tools
// installed by earlier lanes are used.
type PEP517 struct {
	executor ports.Executor
	python   string
}

// SetupPy builds wheels by running setup.py bdist_wheel in the source tree.
type SetupPy struct {
	executor ports.Executor
	python   string
}

var (
	_ ports.BuildBackend = (*PEP517)(nil)
	_ ports.BuildBackend = (*SetupPy)(nil)
)

// NewPEP517 creates a PEP 517 backend running python.
func NewPEP517(executor ports.Executor, python string) *PEP517 {
	return &PEP517{executor: executor, python: python}
}

// NewSetupPy creates a setup.py backend running python.
func NewSetupPy(executor ports.Executor, python string) *SetupPy {
	return &SetupPy{executor: executor, python: python}
}

func (b *PEP517) Name() string { return domain.BuildBackendPEP517 }

// Build runs "python -m build --wheel" for sourceDir.
func (b *PEP517) Build(ctx context.Context, sourceDir, outDir string, pythonPath []string) error {
	cmd := &domain.Command{
		Name: b.python,
		Args: []string{"-m", "build", "--wheel", "--no-isolation", "--outdir", outDir, sourceDir},
		Dir:  sourceDir,
		Env:  pythonPathEnv(pythonPath),
	}
	return buildError(b.executor.Execute(ctx, cmd), b.Name(), sourceDir)
}

func (b *SetupPy) Name() string { return domain.BuildBackendSetupPy }

// Build runs "python setup.py bdist_wheel" in sourceDir.
func (b *SetupPy) Build(ctx context.Context, sourceDir, outDir string, pythonPath []string) error {
	cmd := &domain.Command{
		Name: b.python,
		Args: []string{"setup.py", "bdist_wheel", "--dist-dir", outDir},
		Dir:  sourceDir,
		Env:  pythonPathEnv(pythonPath),
	}
	return buildError(b.executor.Execute(ctx, cmd), b.Name(), sourceDir)
}

// pythonPathEnv returns the PYTHONPATH override for entries, or nil.
func pythonPathEnv(entries []string) map[string]string {
	if len(entries) == 0 {
		return nil
	}
	return map[string]string{"PYTHONPATH": strings.Join(entries, string(os.PathListSeparator))}
}

func buildError(err error, backend, sourceDir string) error {
	if err == nil {
		return nil
	}
	wrapped := zerr.With(zerr.Wrap(domain.ErrBuildFailed, err.Error()), "backend", backend)
	return zerr.With(wrapped, "source_dir", sourceDir)
}
