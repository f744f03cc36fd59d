// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTailLines is how much stderr is attached to a failed command's error.
const stderrTailLines = 20

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

var _ ports.Executor = (*Executor)(nil)

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and waits for it to complete.
//
// Output is logged line by line: stdout at debug level, stderr at info level.
// When ctx carries a telemetry vertex the raw output is also written to it.
func (e *Executor) Execute(ctx context.Context, command *domain.Command) error {
	stdoutLog := &logWriter{log: e.logger.Debug}
	stderrLog := &logWriter{log: e.logger.Info}
	tail := &tailBuffer{max: stderrTailLines}

	var stdout, stderr io.Writer = stdoutLog, io.MultiWriter(stderrLog, tail)
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdout, v.Stdout())
		stderr = io.MultiWriter(stderr, v.Stderr())
	}

	err := e.run(ctx, command, stdout, stderr)
	_ = stdoutLog.Close()
	_ = stderrLog.Close()
	return commandError(err, command, tail)
}

// Output runs the command and returns what it wrote to stdout.
func (e *Executor) Output(ctx context.Context, command *domain.Command) ([]byte, error) {
	var stdout bytes.Buffer
	tail := &tailBuffer{max: stderrTailLines}

	err := e.run(ctx, command, &stdout, tail)
	if err := commandError(err, command, tail); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

func (e *Executor) run(ctx context.Context, command *domain.Command, stdout, stderr io.Writer) error {
	if command.Name == "" {
		return zerr.New("empty command")
	}

	cmdEnv := resolveEnvironment(os.Environ(), command.Env)

	// Resolve the executable using the command's own PATH.
	executable := command.Name
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args...) //nolint:gosec // commands are assembled by adapters
	if len(cmd.Args) > 0 {
		cmd.Args[0] = command.Name
	}
	cmd.Dir = command.Dir
	cmd.Env = cmdEnv
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	e.logger.Debug("exec: " + strings.Join(append([]string{command.Name}, command.Args...), " "))
	return cmd.Run()
}

func commandError(err error, command *domain.Command, tail *tailBuffer) error {
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	err = zerr.With(zerr.Wrap(err, "command failed"), "command", command.Name)
	err = zerr.With(err, "exit_code", exitCode)
	if s := tail.String(); s != "" {
		err = zerr.With(err, "stderr", s)
	}
	return err
}

type logWriter struct {
	log func(string)
	buf []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	w.log(strings.TrimSuffix(string(line), "\r"))
}

// tailBuffer keeps the last max lines written to it.
type tailBuffer struct {
	max   int
	lines []string
	part  []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.part = append(t.part, p...)
	for {
		i := bytes.IndexByte(t.part, '\n')
		if i < 0 {
			break
		}
		t.push(string(t.part[:i]))
		t.part = t.part[i+1:]
	}
	return len(p), nil
}

func (t *tailBuffer) push(line string) {
	t.lines = append(t.lines, strings.TrimSuffix(line, "\r"))
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

func (t *tailBuffer) String() string {
	lines := t.lines
	if len(t.part) > 0 {
		lines = append(slices.Clone(lines), string(t.part))
	}
	return strings.Join(lines, "\n")
}

// resolveEnvironment layers overrides on top of the system environment.
// Path list variables are prepended to the inherited value.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		if inherited := envMap[k]; inherited != "" && slices.Contains(domain.PathListVars, k) {
			envMap[k] = v + string(os.PathListSeparator) + inherited
			continue
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "PATH="); ok {
			path = after
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
