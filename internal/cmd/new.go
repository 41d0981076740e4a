package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/cmdutil"
	cfg "github.com/daprgen/cli/internal/config"
	"github.com/daprgen/cli/internal/generator"
	"github.com/daprgen/cli/internal/manifest"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/summary"
)

// newOptions holds the flags for the new command.
type newOptions struct {
	selection cmdutil.SelectionFlags
	outputDir string
	force     bool
	noVerify  bool
	noPrompt  bool
}

// NewNewCmd creates the new command.
func NewNewCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &newOptions{}

	c := &cobra.Command{
		Use:   "new [name]",
		Short: "Scaffold a new Dapr application",
		Long: `Scaffold a new Dapr application.

Creates <output-dir>/<name> containing one directory per microservice,
a manifest directory per hosting mode and a component file for each
selected state store, pub/sub and binding.

Selections come from flags, an answers file, or interactive prompts when
running in a terminal without any selection flags.

Examples:
  # Answer the questions interactively
  daprgen new

  # A Go service with a Redis state store
  daprgen new demo -l Go --state-store Redis --pubsub None

  # Replay recorded answers into ./apps
  daprgen new --answers answers.yaml -d ./apps`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args, gc, opts)
		},
	}

	opts.selection.AddTo(c)
	c.Flags().StringVarP(&opts.outputDir, "output-dir", "d", "",
		"Directory to create the project in (env: DAPRGEN_OUTPUT_DIR, default: .)")
	c.Flags().BoolVar(&opts.force, "force", false,
		"Generate into an existing non-empty project directory")
	c.Flags().BoolVar(&opts.noVerify, "no-verify", false,
		"Skip checking the rendered Kubernetes manifests")
	c.Flags().BoolVar(&opts.noPrompt, "no-prompt", false,
		"Never prompt; fail on missing answers instead")

	return c
}

func runNew(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, opts *newOptions) error {
	ui := cmdutil.Interactive()
	if opts.noPrompt {
		ui = nil
	}

	prepared, err := cmdutil.Prepare(c, cmdutil.PrepareOpts{
		Config:       gc,
		Selection:    &opts.selection,
		NameOverride: nameArg(args),
		UI:           ui,
	})
	if err != nil {
		return err
	}

	root, err := outputDir(gc, opts.outputDir)
	if err != nil {
		return err
	}
	dst := osfs.New(root)
	app := prepared.App

	if err := generator.CheckTarget(dst, app.Name, opts.force); err != nil {
		return err
	}

	// With --force the project may already exist; report per-file status.
	var before map[string][]byte
	if opts.force {
		if before, err = cmdutil.Snapshot(dst, app.Name); err != nil {
			return err
		}
	}

	verify := gc.Config.VerifyEnabled() && !opts.noVerify
	log := output.ProjectLogger(app.Name)
	log.Info("generating", "dir", root, "operations", len(prepared.Plan.Operations))

	var gen *cmdutil.Generated
	err = output.RunWithSpinner(func() error {
		var genErr error
		gen, genErr = cmdutil.Generate(prepared, dst, verify)
		return genErr
	}, output.WithTitle(fmt.Sprintf("Scaffolding %s...", app.Name)))
	if err != nil {
		return err
	}

	w := c.OutOrStdout()
	fmt.Fprintln(w, summary.Describe(app))
	fmt.Fprintln(w)
	if len(before) > 0 {
		for _, line := range cmdutil.FileStatuses(dst, gen.Result.Files, before) {
			fmt.Fprintln(w, line)
		}
	} else {
		fmt.Fprint(w, cmdutil.FileTree(app.Name, gen.Result.Files, prepared.Sources.ModeDirs()))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderMarkdown(summary.NextSteps(app, prepared.Sources.Registry, summary.Options{
		Modes:      prepared.Sources.Modes,
		ApplyOrder: manifest.ApplyOrder(gen.Objects),
	})))

	log.Info(output.FormatCheckmark("project created"), "files", len(gen.Result.Files))
	return nil
}

// nameArg returns the positional project name, if any.
func nameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// outputDir resolves the directory projects are generated in:
// flag > DAPRGEN_OUTPUT_DIR > config > ".".
func outputDir(gc *cmdtypes.GlobalConfig, flag string) (string, error) {
	resolved := cfg.Resolve(cfg.ResolveOptions{
		Key:         "outputDir",
		FlagValue:   flag,
		EnvVar:      cfg.EnvOutputDir,
		ConfigValue: gc.Config.OutputDir,
		Default:     ".",
	})
	cfg.LogResolvedValues(resolved)
	return homedir.Expand(resolved.Value)
}
