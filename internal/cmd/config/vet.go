package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/config"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/plan"
	"github.com/daprgen/cli/internal/registry"
	"github.com/daprgen/cli/internal/templates"
)

func newVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the daprgen configuration file",
		Long: `Validate the daprgen configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file matches the embedded schema
  3. templatesDir, if set, holds every template the registry references
  4. registryFile, if set, is a valid registry overlay

The config path is resolved using precedence:
  --config flag > DAPRGEN_CONFIG env > ~/.daprgen/config.yaml`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, gc)
		},
	}
}

func runVet(c *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	path, err := config.ExpandPath(gc.ConfigPath.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	output.Debug("validating config", "path", path, "source", gc.ConfigPath.Source)

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	w := c.OutOrStdout()

	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range verrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s\n", e.Error())
			}
			return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err, Printed: true}
		}
		return err
	}
	fmt.Fprintln(w, output.FormatVetCheck("Config file", path))
	fmt.Fprintln(w, output.FormatVetCheck("Schema", "valid"))

	cfg := gc.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := plan.ValidateModes(cfg.Modes); err != nil {
		return err
	}
	fmt.Fprintln(w, output.FormatVetCheck("Modes", fmt.Sprintf("%d configured", len(cfg.Modes))))

	reg := registry.Default()
	if gc.RegistryFile.Value != "" {
		reg, err = reg.LoadOverlayFile(gc.RegistryFile.Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, output.FormatVetCheck("Registry overlay", gc.RegistryFile.Value))
	}
	if err := reg.CheckModeDirs(plan.Dirs(cfg.Modes)); err != nil {
		return err
	}

	if gc.TemplatesDir.Value != "" {
		src, err := templates.Open(gc.TemplatesDir.Value)
		if err != nil {
			return err
		}
		if err := templates.Check(src, reg); err != nil {
			return err
		}
		fmt.Fprintln(w, output.FormatVetCheck("Templates", gc.TemplatesDir.Value))
	}

	return nil
}
