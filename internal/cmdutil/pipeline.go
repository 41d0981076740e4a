package cmdutil

import (
	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/generator"
	"github.com/daprgen/cli/internal/manifest"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/plan"
	"github.com/daprgen/cli/internal/prompt"
	"github.com/daprgen/cli/internal/selection"
)

// PrepareOpts holds the inputs for Prepare.
type PrepareOpts struct {
	// Config is the fully loaded global configuration.
	Config *cmdtypes.GlobalConfig
	// Selection holds the command's selection flags.
	Selection *SelectionFlags
	// NameOverride is the positional project name, if any.
	NameOverride string
	// UI asks for missing answers. Nil disables prompting.
	UI prompt.UI
}

// Prepared is the validated input of a generation run.
type Prepared struct {
	Sources *Sources
	App     *selection.App
	Plan    *plan.Plan
}

// Prepare loads sources, resolves the selections into an App and plans it.
// Nothing is written. Prompting only happens when no selection flag was
// given and opts.UI is set.
func Prepare(cmd *cobra.Command, opts PrepareOpts) (*Prepared, error) {
	src, err := LoadSources(opts.Config)
	if err != nil {
		return nil, err
	}

	answers, err := opts.Selection.Answers(cmd)
	if err != nil {
		return nil, err
	}

	if opts.UI != nil && !opts.Selection.changed(cmd) {
		seed := answers
		if opts.NameOverride != "" {
			seed.Name = opts.NameOverride
		}
		answers, err = prompt.Ask(opts.UI, src.Registry, seed)
		if err != nil {
			return nil, err
		}
	}

	app, err := selection.Build(answers.Canonical(src.Registry), opts.NameOverride)
	if err != nil {
		return nil, err
	}

	p, err := plan.New(src.Registry, plan.WithModes(src.Modes...)).Plan(app)
	if err != nil {
		return nil, err
	}

	output.Debug("plan ready", "app", app.Name, "operations", len(p.Operations))
	return &Prepared{Sources: src, App: app, Plan: p}, nil
}

// Generated is the outcome of Generate.
type Generated struct {
	Result *generator.Result
	// Objects are the verified Kubernetes objects in apply order. Empty when
	// verification is off.
	Objects []manifest.Object
}

// Generate executes the prepared plan into dst and, when verify is set,
// checks every rendered manifest.
func Generate(p *Prepared, dst billy.Filesystem, verify bool) (*Generated, error) {
	res, err := generator.New(p.Sources.Templates, dst).Execute(p.Plan)
	if err != nil {
		return nil, err
	}

	out := &Generated{Result: res}
	if !verify {
		return out, nil
	}

	objs, err := manifest.VerifyFiles(dst, res.Files, p.Sources.ModeDirs())
	if err != nil {
		return nil, err
	}
	out.Objects = objs
	return out, nil
}

// Interactive returns the prompt UI when stdin and stdout are terminals,
// nil otherwise.
func Interactive() prompt.UI {
	if !output.IsInteractive() {
		return nil
	}
	return prompt.NewHuhUI()
}
