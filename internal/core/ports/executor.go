// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// Executor defines the interface for running external tools such as the
// interpreter, git or pip.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command, streaming its output.
	//
	// Entries of cmd.Env are layered over the process environment. Path list
	// variables (PATH, PYTHONPATH) are prepended instead of replaced.
	Execute(ctx context.Context, cmd *domain.Command) error

	// Output runs the command and returns its standard output.
	Output(ctx context.Context, cmd *domain.Command) ([]byte, error)
}
