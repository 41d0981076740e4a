// Package config provides configuration loading and management.
package config

import (
	"github.com/daprgen/cli/internal/plan"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the daprgen CLI configuration.
// Loaded from ~/.daprgen/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// OutputDir is the directory new projects are created in.
	// Env: DAPRGEN_OUTPUT_DIR, Default: "."
	OutputDir string `json:"outputDir,omitempty" yaml:"outputDir,omitempty" mapstructure:"outputDir"`

	// TemplatesDir replaces the built-in template tree with an on-disk one.
	// Env: DAPRGEN_TEMPLATES_DIR
	TemplatesDir string `json:"templatesDir,omitempty" yaml:"templatesDir,omitempty" mapstructure:"templatesDir"`

	// RegistryFile overlays additional languages and components onto the
	// built-in registry.
	// Env: DAPRGEN_REGISTRY_FILE
	RegistryFile string `json:"registryFile,omitempty" yaml:"registryFile,omitempty" mapstructure:"registryFile"`

	// Modes lists the deployment modes that receive component manifests.
	// The first mode's directory also receives the microservice manifests.
	Modes []plan.ModeDir `json:"modes,omitempty" yaml:"modes,omitempty" mapstructure:"modes"`

	// Verify checks rendered Kubernetes manifests after generation.
	// Env: DAPRGEN_VERIFY, Default: true
	Verify *bool `json:"verify,omitempty" yaml:"verify,omitempty" mapstructure:"verify"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `daprgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	verify := true
	timestamps := true
	return &Config{
		OutputDir: ".",
		Modes:     plan.DefaultModes(),
		Verify:    &verify,
		Log:       LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with unset fields taken from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.OutputDir == "" {
		out.OutputDir = def.OutputDir
	}
	if len(out.Modes) == 0 {
		out.Modes = def.Modes
	}
	if out.Verify == nil {
		out.Verify = def.Verify
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	return &out
}

// VerifyEnabled reports whether manifest verification is on.
func (c *Config) VerifyEnabled() bool {
	return c.Verify == nil || *c.Verify
}
