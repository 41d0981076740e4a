package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/config"
	oerrors "github.com/daprgen/cli/internal/errors"
)

const configHeader = "# daprgen CLI configuration\n# Validate with: daprgen config vet\n\n"

func newInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new daprgen configuration file",
		Long: `Create a new daprgen configuration file with default values.

The configuration file is created at ~/.daprgen/config.yaml by default.
Use --config flag or DAPRGEN_CONFIG to specify a different location.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	expandedPath, err := config.ExpandPath(gc.ConfigPath.Value)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:     "validation failed",
				Message:  "config file already exists",
				Location: expandedPath,
				Hint:     "use --force to overwrite",
				Cause:    oerrors.ErrValidation,
			},
		}
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}
