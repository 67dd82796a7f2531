// Package venv provisions an isolated Python dependency environment inside
// a freshly scaffolded project directory.
package venv

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/projgen-io/projgen/internal/defs"
	"github.com/projgen-io/projgen/internal/toolchain"
	"github.com/projgen-io/projgen/internal/ui"
)

// Interpreter names tried in order.
const (
	primaryInterpreter   = "python"
	secondaryInterpreter = "python3"
)

// Setup creates <projectDir>/venv with `python -m venv`, trying "python"
// first and "python3" as a fallback alias. Failure is never fatal: when no
// interpreter resolves or the subprocess exits non-zero, the manual command
// is suggested and false is returned. The caller's overall outcome is
// unaffected either way.
func Setup(ctx context.Context, runner toolchain.Runner, hm *ui.HeadlessManager, out io.Writer, projectDir string) bool {
	var python string
	switch {
	case runner.Probe(primaryInterpreter):
		python = primaryInterpreter
	case runner.Probe(secondaryInterpreter):
		python = secondaryInterpreter
	default:
		_, _ = fmt.Fprintln(out, "No Python interpreter found on PATH.")
		printManualHint(out)
		return false
	}

	venvDir := filepath.Join(projectDir, defs.VenvDir)

	sp := ui.NewSpinner(hm, out, "Creating virtual environment...")
	err := runner.Run(ctx, python, "-m", "venv", venvDir)
	sp.Stop()

	if err != nil {
		_, _ = fmt.Fprintf(out, "Failed to create the virtual environment: %v\n", err)
		printManualHint(out)
		return false
	}

	_, _ = fmt.Fprintln(out, "Virtual environment created.")
	return true
}

func printManualHint(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Run 'python -m venv venv' inside the project directory once Python is available.")
}
