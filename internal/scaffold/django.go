package scaffold

import (
	"context"
	"fmt"

	"github.com/projgen-io/projgen/internal/venv"
)

// djangoAdmin is the official Django project generator binary.
const djangoAdmin = "django-admin"

// djangoStrategy scaffolds a Django project, preferring django-admin and
// falling back to a minimal skeleton with an entry script and settings
// module. Both paths finish with isolated environment setup.
type djangoStrategy struct {
	deps Deps
}

// Kind implements Strategy.
func (s *djangoStrategy) Kind() Kind { return KindDjango }

// Generate implements Strategy.
func (s *djangoStrategy) Generate(ctx context.Context, opts Options) (*Result, error) {
	d := s.deps
	d.Logger.Info("generating Django project", "name", opts.ProjectName)

	var result *Result

	d.Reporter.StepStart("Probe", "looking for django-admin")
	if d.Runner.Probe(djangoAdmin) {
		d.Reporter.StepComplete("django-admin found, using 'startproject'")
		// The project name doubles as the settings-package identifier.
		if err := d.Runner.Run(ctx, djangoAdmin, "startproject", opts.ProjectName, opts.ProjectName); err != nil {
			d.Reporter.StepError(err)
			return nil, fmt.Errorf("django-admin startproject: %w", err)
		}
		d.Reporter.StepComplete("Django project created")
		result = &Result{Outcome: OutcomeTool}
	} else {
		d.Reporter.Note("django-admin not found.")

		ok, err := d.Confirm.Confirm("django-admin is missing. Create a basic scaffold manually instead?")
		if err != nil {
			return nil, err
		}
		if !ok {
			d.Reporter.Note("Install Django (pip install Django) to use the standard generator.")
			return &Result{Outcome: OutcomeAborted}, nil
		}

		layout, err := BuildLayout(KindDjango, opts.ProjectName, d.Overrides)
		if err != nil {
			return nil, err
		}

		result = &Result{Outcome: OutcomeFallback}
		d.Reporter.StepStart("Scaffold", "creating fallback Django scaffold")
		if err := materialize(d.FS, opts.ProjectName, layout, result); err != nil {
			d.Reporter.StepError(err)
			return nil, err
		}
		d.Reporter.StepComplete("fallback Django scaffold created")
	}

	if !venv.Setup(ctx, d.Runner, d.Headless, d.Out, opts.ProjectName) {
		result.Warnings = append(result.Warnings, "virtual environment setup failed")
	}

	return result, nil
}
