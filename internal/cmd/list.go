package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/cmdutil"
	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/registry"
)

// listing is the structured form of the list output.
type listing struct {
	Languages  []registry.LanguageTemplate  `json:"languages,omitempty"`
	Components []registry.ComponentTemplate `json:"components,omitempty"`
}

// NewListCmd creates the list command.
func NewListCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var out cmdutil.OutputFlags

	c := &cobra.Command{
		Use:   "list [languages|state|pubsub|bindings]",
		Short: "List available languages and components",
		Long: `List the languages and components that can be selected, including
entries added by a registry overlay.

Examples:
  daprgen list
  daprgen list pubsub -o yaml`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"languages", "state", "pubsub", "bindings"},
		RunE: func(c *cobra.Command, args []string) error {
			return runList(c, args, gc, &out)
		},
	}

	out.AddTo(c)

	return c
}

func runList(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, out *cmdutil.OutputFlags) error {
	format, err := out.Parse()
	if err != nil {
		return err
	}

	src, err := cmdutil.LoadSources(gc)
	if err != nil {
		return err
	}
	reg := src.Registry

	var l listing
	switch filter := nameArg(args); {
	case filter == "":
		l.Languages = reg.Languages()
		for _, k := range registry.AllKinds() {
			l.Components = append(l.Components, reg.Components(k)...)
		}
	case filter == "languages":
		l.Languages = reg.Languages()
	case registry.ComponentKind(filter).Valid():
		l.Components = reg.Components(registry.ComponentKind(filter))
	default:
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown list filter %q", filter),
			Hint:    "Valid filters: " + strings.Join(c.ValidArgs, ", "),
			Cause:   oerrors.ErrValidation,
		}
	}

	w := c.OutOrStdout()
	if format != output.FormatTable {
		return cmdutil.WriteStructured(w, format, l)
	}

	langs := output.NewTable("LANGUAGE", "DIRECTORY", "PORT", "RUN")
	for _, lt := range l.Languages {
		langs.Row(string(lt.Language), lt.LanguageName, fmt.Sprintf("%d", lt.DefaultPort), lt.RunCommand)
	}
	comps := output.NewTable("KIND", "NAME", "COMPONENT", "TYPE")
	for _, ct := range l.Components {
		comps.Row(string(ct.Kind), ct.Name, ct.ComponentName, ct.ComponentType)
	}

	if langs.Len() > 0 {
		fmt.Fprintln(w, langs.String())
	}
	if comps.Len() > 0 {
		if langs.Len() > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, comps.String())
	}
	return nil
}
