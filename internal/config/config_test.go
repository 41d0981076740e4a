package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daprgen/cli/internal/plan"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, plan.DefaultModes(), cfg.Modes)
	assert.True(t, cfg.VerifyEnabled())
	if assert.NotNil(t, cfg.Log.Timestamps) {
		assert.True(t, *cfg.Log.Timestamps)
	}
	assert.Empty(t, cfg.TemplatesDir)
	assert.Empty(t, cfg.RegistryFile)
}

func TestWithDefaults(t *testing.T) {
	off := false

	tests := []struct {
		name  string
		input Config
		check func(t *testing.T, cfg *Config)
	}{
		{
			name:  "empty config gets every default",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "set values are kept",
			input: Config{
				OutputDir: "/work",
				Modes:     []plan.ModeDir{{Mode: "kubernetes", Dir: "k8s"}},
				Verify:    &off,
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/work", cfg.OutputDir)
				assert.Equal(t, []plan.ModeDir{{Mode: "kubernetes", Dir: "k8s"}}, cfg.Modes)
				assert.False(t, cfg.VerifyEnabled())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			tt.check(t, in.WithDefaults())
			assert.Equal(t, tt.input, in, "WithDefaults must not modify the receiver")
		})
	}
}

func TestVerifyEnabled_NilMeansOn(t *testing.T) {
	assert.True(t, (&Config{}).VerifyEnabled())
}
