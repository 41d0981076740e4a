// Package cmdutil provides shared command utilities for the project
// commands. It centralizes flag group management, selection resolution,
// the plan and generate pipeline, and output formatting helpers.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/selection"
)

// SelectionFlags holds the flags that answer the project questions
// (new, plan, diff).
type SelectionFlags struct {
	Name        string
	Mode        string
	Languages   []string
	StateStore  string
	PubSub      string
	Bindings    []string
	AnswersFile string
}

// AddTo registers the selection flags on the given cobra command.
func (f *SelectionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Name, "name", "",
		"Project name (overrides the answers file)")
	cmd.Flags().StringVar(&f.Mode, "mode", "",
		"Hosting mode: kubernetes or standalone (default: kubernetes)")
	cmd.Flags().StringSliceVarP(&f.Languages, "language", "l", nil,
		"Microservice language (can be repeated or comma-separated)")
	cmd.Flags().StringVar(&f.StateStore, "state-store", "",
		"State store component, or None")
	cmd.Flags().StringVar(&f.PubSub, "pubsub", "",
		"Pub/sub component, or None")
	cmd.Flags().StringSliceVarP(&f.Bindings, "binding", "b", nil,
		"Binding component (can be repeated or comma-separated)")
	cmd.Flags().StringVarP(&f.AnswersFile, "answers", "a", "",
		"YAML or TOML file with pre-recorded answers")
}

// changed reports whether any selection flag was set on cmd.
func (f *SelectionFlags) changed(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "mode", "language", "state-store", "pubsub", "binding", "answers"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// Answers loads the answers file, if any, and overlays the flags that were
// set explicitly.
func (f *SelectionFlags) Answers(cmd *cobra.Command) (selection.Answers, error) {
	var a selection.Answers
	if f.AnswersFile != "" {
		loaded, err := selection.LoadAnswers(f.AnswersFile)
		if err != nil {
			return a, err
		}
		a = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		a.Name = f.Name
	}
	if flags.Changed("mode") {
		a.Mode = f.Mode
	}
	if flags.Changed("language") {
		a.Languages = trimAll(f.Languages)
	}
	if flags.Changed("state-store") {
		a.StateStore = f.StateStore
	}
	if flags.Changed("pubsub") {
		a.PubSub = f.PubSub
	}
	if flags.Changed("binding") {
		a.Bindings = trimAll(f.Bindings)
	}
	return a, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// OutputFlags holds the structured output flag (plan, list).
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTable),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// Parse returns the selected format or a validation error.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Format)
	if !ok {
		return "", &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown output format %q", f.Format),
			Field:   "output",
			Hint:    "Valid formats: " + strings.Join(output.ValidFormats(), ", "),
			Cause:   oerrors.ErrValidation,
		}
	}
	return format, nil
}
