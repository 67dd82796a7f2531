// Package toolchain abstracts search-path probing and subprocess execution
// for external generator tools. Strategies depend on the Runner interface so
// tests can substitute a fake instead of spawning real processes.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Runner probes for and runs external executables.
type Runner interface {
	// Probe reports whether the named executable is resolvable on PATH.
	// Resolvable means found and nameable; no version or health check is
	// performed. The lookup is repeated on every call, never cached.
	Probe(name string) bool

	// Run executes the named tool with the given arguments, blocking until
	// it terminates. A non-zero exit status is returned as *ExitError.
	Run(ctx context.Context, name string, args ...string) error
}

// ExitError reports a tool that was found and invoked but exited non-zero.
type ExitError struct {
	Tool string
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
}

// ExecRunner is the production Runner backed by os/exec. The child process
// inherits stdin/stdout/stderr so interactive generators keep working.
type ExecRunner struct{}

// NewExecRunner creates a Runner that spawns real subprocesses.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Probe reports whether name resolves via exec.LookPath.
func (r *ExecRunner) Probe(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes the tool with inherited stdio and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Tool: name, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("run %s: %w", name, err)
}
