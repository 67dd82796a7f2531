package scaffold

import (
	"context"
	"fmt"
)

// cargoTool is the Rust package manager binary.
const cargoTool = "cargo"

// cargoStrategy scaffolds a Rust package. Cargo is a mandatory dependency
// with no fallback: when it is absent the run aborts with install guidance
// and no prompt.
type cargoStrategy struct {
	deps Deps
}

// Kind implements Strategy.
func (s *cargoStrategy) Kind() Kind { return KindCargo }

// Generate implements Strategy.
func (s *cargoStrategy) Generate(ctx context.Context, opts Options) (*Result, error) {
	d := s.deps
	d.Logger.Info("generating Rust package", "name", opts.ProjectName)

	d.Reporter.StepStart("Probe", "looking for cargo")
	if !d.Runner.Probe(cargoTool) {
		d.Reporter.Note("Cargo was not found on your system. Install Rust (and Cargo) from https://rustup.rs.")
		return &Result{Outcome: OutcomeAborted}, nil
	}
	d.Reporter.StepComplete("cargo found, using 'cargo new'")

	if err := d.Runner.Run(ctx, cargoTool, "new", opts.ProjectName); err != nil {
		d.Reporter.StepError(err)
		return nil, fmt.Errorf("cargo new: %w", err)
	}
	d.Reporter.StepComplete("Rust package created")

	return &Result{Outcome: OutcomeTool}, nil
}
