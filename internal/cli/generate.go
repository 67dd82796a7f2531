package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/projgen-io/projgen/internal/config"
	"github.com/projgen-io/projgen/internal/scaffold"
	"github.com/projgen-io/projgen/internal/toolchain"
	"github.com/projgen-io/projgen/internal/ui"
)

func init() {
	rootCmd.AddCommand(
		newGenerateCommand("php-framework", "Scaffold a Symfony PHP project", scaffold.KindSymfony),
		newGenerateCommand("py-micro", "Scaffold a Python Flask project", scaffold.KindFlask),
		newGenerateCommand("py-full", "Scaffold a Python Django project", scaffold.KindDjango),
		newGenerateCommand("sys-package", "Scaffold a Rust package with Cargo", scaffold.KindCargo),
	)
}

// newGenerateCommand builds one scaffolding subcommand. All four kinds share
// the same shape: one required positional project name, dispatched to the
// matching strategy.
func newGenerateCommand(name, short string, kind scaffold.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <project>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, kind, args[0])
		},
	}
}

// runGenerate assembles the strategy dependencies, runs the generation, and
// maps the outcome to the process exit status (via error for aborted runs).
func runGenerate(cmd *cobra.Command, kind scaffold.Kind, project string) error {
	out := cmd.OutOrStdout()

	project = strings.TrimSpace(project)
	if project == "" {
		return fmt.Errorf("project name must not be empty")
	}

	var overrides *config.LayoutOverrides
	if path := getStringFlag(cmd, "layouts"); path != "" {
		o, err := config.LoadLayoutOverrides(path)
		if err != nil {
			return fmt.Errorf("load layout overrides: %w", err)
		}
		overrides = o
	}

	hm := ui.NewHeadlessManager()
	noPrompt := getBoolFlag(cmd, "no-prompt")

	strategy, err := scaffold.New(kind, scaffold.Deps{
		Runner:    toolchain.NewExecRunner(),
		Confirm:   ui.NewConfirmer(noPrompt, hm),
		FS:        osfs.New("."),
		Reporter:  scaffold.NewConsoleReporter(out),
		Overrides: overrides,
		Headless:  hm,
		Out:       out,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, _ = fmt.Fprintf(out, "Creating %s project: %s\n", kind, project)

	result, err := strategy.Generate(ctx, scaffold.Options{ProjectName: project})
	if err != nil {
		return err
	}

	if result.Outcome == scaffold.OutcomeAborted {
		return errAborted
	}

	pairs := []kvPair{
		{"Project", project},
		{"Method", methodLabel(result.Outcome)},
	}
	if result.Outcome == scaffold.OutcomeFallback {
		pairs = append(pairs,
			kvPair{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			kvPair{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
		)
	}

	details := []string{renderKeyValueLines(pairs)}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project generated", details...))
	return nil
}

// methodLabel maps an outcome to the label shown in the success card.
func methodLabel(outcome scaffold.Outcome) string {
	switch outcome {
	case scaffold.OutcomeTool:
		return "official generator"
	case scaffold.OutcomeFallback:
		return "fallback scaffold"
	default:
		return string(outcome)
	}
}
