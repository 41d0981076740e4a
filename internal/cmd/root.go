// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daprgen/cli/internal/cmd/config"
	"github.com/daprgen/cli/internal/cmdtypes"
	cfg "github.com/daprgen/cli/internal/config"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/version"
)

// rootFlags holds the persistent flags.
type rootFlags struct {
	config       string
	verbose      bool
	timestamps   bool
	templatesDir string
	registryFile string
}

// NewRootCmd creates the root command for the daprgen CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	gc := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "daprgen",
		Short: "Scaffold Dapr applications",
		Long: `daprgen scaffolds multi-language Dapr applications.

It provides commands to:
  - Generate microservices, deployment manifests and component configuration
  - Preview the generation plan without writing anything
  - Compare a fresh generation with an existing project
  - List the available languages and components`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, gc)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Path to config file (env: DAPRGEN_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.StringVar(&flags.templatesDir, "templates-dir", "", "Template tree to generate from instead of the built-in one (env: DAPRGEN_TEMPLATES_DIR)")
	pf.StringVar(&flags.registryFile, "registry-file", "", "Registry overlay with extra languages and components (env: DAPRGEN_REGISTRY_FILE)")

	rootCmd.AddCommand(
		NewNewCmd(gc),
		NewPlanCmd(gc),
		NewDiffCmd(gc),
		NewListCmd(gc),
		config.NewConfigCmd(gc),
		NewVersionCmd(gc),
	)

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration into gc.
func initializeGlobals(c *cobra.Command, flags *rootFlags, gc *cmdtypes.GlobalConfig) error {
	configPath, err := cfg.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	loaded, err := cfg.NewLoader().LoadWithDefaults(configPath.Value)
	if err != nil {
		return err
	}

	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	gc.Config = loaded
	gc.ConfigPath = configPath
	gc.Verbose = flags.verbose
	gc.TemplatesDir = cfg.Resolve(cfg.ResolveOptions{
		Key:         "templatesDir",
		FlagValue:   flags.templatesDir,
		EnvVar:      cfg.EnvTemplatesDir,
		ConfigValue: loaded.TemplatesDir,
	})
	gc.RegistryFile = cfg.Resolve(cfg.ResolveOptions{
		Key:         "registryFile",
		FlagValue:   flags.registryFile,
		EnvVar:      cfg.EnvRegistryFile,
		ConfigValue: loaded.RegistryFile,
	})

	info := version.Get()
	output.Debug("daprgen started", "version", info.Version, "config", configPath.Value)
	cfg.LogResolvedValues(configPath, gc.TemplatesDir, gc.RegistryFile)

	return nil
}
