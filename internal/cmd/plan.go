package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/cmdutil"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/summary"
)

// planOptions holds the flags for the plan command.
type planOptions struct {
	selection cmdutil.SelectionFlags
	output    cmdutil.OutputFlags
}

// NewPlanCmd creates the plan command.
func NewPlanCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &planOptions{}

	c := &cobra.Command{
		Use:   "plan [name]",
		Short: "Show the operations new would perform",
		Long: `Show the ordered copy and delete operations 'daprgen new' would perform
for the given selections. Nothing is written.

Examples:
  daprgen plan demo -l Go,Python --state-store Redis
  daprgen plan --answers answers.yaml -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPlan(c, args, gc, opts)
		},
	}

	opts.selection.AddTo(c)
	opts.output.AddTo(c)

	return c
}

func runPlan(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, opts *planOptions) error {
	format, err := opts.output.Parse()
	if err != nil {
		return err
	}

	prepared, err := cmdutil.Prepare(c, cmdutil.PrepareOpts{
		Config:       gc,
		Selection:    &opts.selection,
		NameOverride: nameArg(args),
	})
	if err != nil {
		return err
	}

	w := c.OutOrStdout()
	if format != output.FormatTable {
		return cmdutil.WriteStructured(w, format, prepared.Plan)
	}

	fmt.Fprintln(w, summary.Describe(prepared.App))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cmdutil.PlanTable(prepared.Plan, prepared.Sources.Templates))
	return nil
}
