package scaffold

import (
	"context"
	"fmt"
)

// symfonyCLI is the official Symfony project generator binary.
const symfonyCLI = "symfony"

// symfonyStrategy scaffolds a Symfony PHP project, preferring the official
// CLI and falling back to a minimal directory skeleton.
type symfonyStrategy struct {
	deps Deps
}

// Kind implements Strategy.
func (s *symfonyStrategy) Kind() Kind { return KindSymfony }

// Generate implements Strategy.
func (s *symfonyStrategy) Generate(ctx context.Context, opts Options) (*Result, error) {
	d := s.deps
	d.Logger.Info("generating Symfony project", "name", opts.ProjectName)

	d.Reporter.StepStart("Probe", "looking for the Symfony CLI")
	if d.Runner.Probe(symfonyCLI) {
		d.Reporter.StepComplete("Symfony CLI found, using 'symfony new'")
		if err := d.Runner.Run(ctx, symfonyCLI, "new", opts.ProjectName); err != nil {
			d.Reporter.StepError(err)
			return nil, fmt.Errorf("symfony new: %w", err)
		}
		d.Reporter.StepComplete("Symfony project created")
		return &Result{Outcome: OutcomeTool}, nil
	}
	d.Reporter.Note("Symfony CLI not found.")

	ok, err := d.Confirm.Confirm("Symfony CLI is missing. Create a minimal structure manually instead?")
	if err != nil {
		return nil, err
	}
	if !ok {
		d.Reporter.Note("Install the Symfony CLI from https://symfony.com/download and try again.")
		return &Result{Outcome: OutcomeAborted}, nil
	}

	layout, err := BuildLayout(KindSymfony, opts.ProjectName, d.Overrides)
	if err != nil {
		return nil, err
	}

	result := &Result{Outcome: OutcomeFallback}
	d.Reporter.StepStart("Scaffold", "creating fallback Symfony structure")
	if err := materialize(d.FS, opts.ProjectName, layout, result); err != nil {
		d.Reporter.StepError(err)
		return nil, err
	}
	d.Reporter.StepComplete("fallback Symfony structure created")

	return result, nil
}
