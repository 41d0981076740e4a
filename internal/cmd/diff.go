package cmd

import (
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/cmdutil"
	"github.com/daprgen/cli/internal/diff"
	"github.com/daprgen/cli/internal/output"
)

// diffOptions holds the flags for the diff command.
type diffOptions struct {
	selection cmdutil.SelectionFlags
	outputDir string
	noColor   bool
	maxLines  int
}

// NewDiffCmd creates the diff command.
func NewDiffCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &diffOptions{}

	c := &cobra.Command{
		Use:   "diff [name]",
		Short: "Compare a fresh generation with an existing project",
		Long: `Generate the project in memory and compare it with the project directory
on disk.

Reports every difference between the two trees:
  - Added files (generated but missing on disk)
  - Modified files (present with different content)
  - Untracked files (on disk but not generated)

'daprgen new --force' would create the added files and overwrite the
modified ones. It leaves untracked files in place.

Exit codes:
  0 - The project matches a fresh generation exactly
  1 - Differences exist (including untracked files) or an error occurred
  2 - Invalid selections or configuration`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, args, gc, opts)
		},
	}

	opts.selection.AddTo(c)
	c.Flags().StringVarP(&opts.outputDir, "output-dir", "d", "",
		"Directory containing the project (env: DAPRGEN_OUTPUT_DIR, default: .)")
	c.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	c.Flags().IntVar(&opts.maxLines, "max-lines", diff.DefaultMaxLines, "Truncate text diffs after this many lines")

	return c
}

func runDiff(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, opts *diffOptions) error {
	prepared, err := cmdutil.Prepare(c, cmdutil.PrepareOpts{
		Config:       gc,
		Selection:    &opts.selection,
		NameOverride: nameArg(args),
	})
	if err != nil {
		return err
	}

	root, err := outputDir(gc, opts.outputDir)
	if err != nil {
		return err
	}

	mem := memfs.New()
	gen, err := cmdutil.Generate(prepared, mem, false)
	if err != nil {
		return err
	}

	useColor := !opts.noColor && output.IsTTY()
	result, err := diff.Compare(mem, gen.Result.Files, osfs.New(root), prepared.App.Name, diff.Options{
		UseColor: useColor,
		MaxLines: opts.maxLines,
	})
	if err != nil {
		return err
	}

	w := c.OutOrStdout()
	fmt.Fprintf(w, "Comparing '%s' against %s...\n\n", prepared.App.Name, root)

	styles := output.GetStyles()
	if !useColor {
		styles = output.NoColorStyles()
	}
	modified := make([]output.ModifiedItem, len(result.Modified))
	for i, m := range result.Modified {
		modified[i] = output.ModifiedItem{Name: m.Path, Diff: m.Diff}
	}
	fmt.Fprintln(w, output.RenderDiff(result.Added, result.Untracked, modified, styles))

	if result.IsEmpty() {
		return nil
	}

	output.Debug("differences found", "summary", result.Summary())
	return &cmdtypes.ExitError{
		Code:    cmdtypes.ExitGeneralError,
		Err:     errors.New("differences found: " + result.Summary()),
		Printed: true,
	}
}
