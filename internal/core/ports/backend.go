package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// BuildBackend turns a source tree into wheel artifacts.
type BuildBackend interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// Build writes the artifacts for sourceDir into outDir. pythonPath entries
	// are prepended to the interpreter's module search path.
	Build(ctx context.Context, sourceDir, outDir string, pythonPath []string) error
}

// InstallBackend installs built artifacts into the target environment.
type InstallBackend interface {
	Install(ctx context.Context, artifacts []string) error
}
