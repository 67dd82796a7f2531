// Package scaffold implements the per-kind project generation strategies.
// Every strategy follows the same protocol: probe for the ecosystem's
// official generator, decide between the tool and a hand-authored fallback
// layout, execute the chosen path, and report the outcome.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/projgen-io/projgen/internal/config"
	"github.com/projgen-io/projgen/internal/toolchain"
	"github.com/projgen-io/projgen/internal/ui"
)

// Kind identifies a project kind.
type Kind string

// Supported project kinds.
const (
	KindSymfony Kind = "symfony"
	KindFlask   Kind = "flask"
	KindDjango  Kind = "django"
	KindCargo   Kind = "cargo"
)

// Outcome is the terminal state of one generation run.
type Outcome string

// Possible outcomes. Aborted covers both a declined fallback confirmation
// and a missing mandatory tool; neither mutates the filesystem.
const (
	OutcomeTool     Outcome = "tool"
	OutcomeFallback Outcome = "fallback"
	OutcomeAborted  Outcome = "aborted"
)

// Options configures a single generation run.
type Options struct {
	ProjectName string // Name of the project directory to create.
}

// Result summarizes what a strategy did.
type Result struct {
	Outcome      Outcome  // How the project was (or was not) generated.
	CreatedDirs  []string // Directories created on the fallback path.
	CreatedFiles []string // Files written on the fallback path.
	Warnings     []string // Non-fatal problems (e.g. venv setup failure).
}

// Strategy generates one kind of project.
type Strategy interface {
	// Kind returns the project kind this strategy handles.
	Kind() Kind

	// Generate runs the full probe/decide/execute/report protocol.
	// A nil error with Outcome == OutcomeAborted is a soft abort: guidance
	// was already printed and no filesystem mutation occurred.
	Generate(ctx context.Context, opts Options) (*Result, error)
}

// Deps carries the capabilities injected into every strategy. Zero-value
// fields are replaced with production defaults by fill().
type Deps struct {
	Runner    toolchain.Runner        // Tool probing and subprocess execution.
	Confirm   ui.Confirmer            // Yes/no confirmation prompts.
	FS        billy.Filesystem        // Target filesystem for fallback layouts.
	Reporter  Reporter                // Per-phase status output.
	Overrides *config.LayoutOverrides // Optional extra fallback directories.
	Headless  *ui.HeadlessManager     // TTY detection for spinners.
	Out       io.Writer               // Destination for guidance messages.
	Logger    *slog.Logger
}

func (d *Deps) fill() {
	if d.Runner == nil {
		d.Runner = toolchain.NewExecRunner()
	}
	if d.Confirm == nil {
		d.Confirm = &ui.AutoConfirmer{Answer: true}
	}
	if d.FS == nil {
		d.FS = osfs.New(".")
	}
	if d.Reporter == nil {
		d.Reporter = &NoOpReporter{}
	}
	if d.Headless == nil {
		d.Headless = ui.NewHeadlessManager()
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// New constructs the strategy for the given kind.
func New(kind Kind, deps Deps) (Strategy, error) {
	deps.fill()

	switch kind {
	case KindSymfony:
		return &symfonyStrategy{deps: deps}, nil
	case KindFlask:
		return &flaskStrategy{deps: deps}, nil
	case KindDjango:
		return &djangoStrategy{deps: deps}, nil
	case KindCargo:
		return &cargoStrategy{deps: deps}, nil
	default:
		return nil, fmt.Errorf("unknown project kind %q", kind)
	}
}
