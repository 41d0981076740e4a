package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show daprgen version information.

Displays:
  - daprgen version, commit, and build date
  - CUE SDK version (used by config vet)
  - dapr CLI found on PATH, needed to run generated projects`,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			fmt.Fprintln(c.OutOrStdout(), version.DetectDaprCLI().String())
			return nil
		},
	}
}
