package scaffold

import (
	"context"

	"github.com/projgen-io/projgen/internal/venv"
)

// flaskStrategy scaffolds a Flask project. Flask has no official project
// generator, so this is a pure-fallback kind: the layout is always built
// directly, with no tool probe or confirmation.
type flaskStrategy struct {
	deps Deps
}

// Kind implements Strategy.
func (s *flaskStrategy) Kind() Kind { return KindFlask }

// Generate implements Strategy.
func (s *flaskStrategy) Generate(ctx context.Context, opts Options) (*Result, error) {
	d := s.deps
	d.Logger.Info("generating Flask project", "name", opts.ProjectName)

	layout, err := BuildLayout(KindFlask, opts.ProjectName, d.Overrides)
	if err != nil {
		return nil, err
	}

	result := &Result{Outcome: OutcomeFallback}
	d.Reporter.StepStart("Scaffold", "creating Flask project structure")
	if err := materialize(d.FS, opts.ProjectName, layout, result); err != nil {
		d.Reporter.StepError(err)
		return nil, err
	}
	d.Reporter.StepComplete("Flask project structure created")

	// Environment setup is soft: the outcome stays OutcomeFallback even
	// when provisioning fails.
	if !venv.Setup(ctx, d.Runner, d.Headless, d.Out, opts.ProjectName) {
		result.Warnings = append(result.Warnings, "virtual environment setup failed")
	}

	return result, nil
}
