// Package cli wires the cobra command tree for the projgen binary.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projgen-io/projgen/pkg/version"
)

// errAborted signals a soft abort: guidance was already printed and the
// process should exit non-zero without an error trace.
var errAborted = errors.New("generation aborted")

var rootCmd = &cobra.Command{
	Use:   "projgen",
	Short: "Scaffold starter projects for Symfony, Flask, Django, and Cargo",
	Long: `projgen creates starter projects for several ecosystems.

It delegates to each ecosystem's official generator when the binary is
resolvable on PATH, and otherwise offers a minimal hand-authored directory
structure as a fallback.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_ = cmd.Help()
		return fmt.Errorf("a project kind subcommand is required")
	},
}

// Execute runs the root command and maps errors for main. Hard errors are
// printed here; soft aborts already printed their guidance.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errAborted) {
			_, _ = fmt.Fprintln(os.Stderr, cliError.Render("Error: ")+err.Error())
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("projgen %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().Bool("no-prompt", false, "Answer yes to all confirmation prompts")
	rootCmd.PersistentFlags().String("layouts", "", "YAML file with extra fallback scaffold directories")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
