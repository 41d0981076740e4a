package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/config"
	oerrors "github.com/daprgen/cli/internal/errors"
)

func runConfig(t *testing.T, gc *cmdtypes.GlobalConfig, args ...string) (string, string, error) {
	t.Helper()
	c := NewConfigCmd(gc)
	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)
	err := c.Execute()
	return stdout.String(), stderr.String(), err
}

func globalConfig(path string) *cmdtypes.GlobalConfig {
	return &cmdtypes.GlobalConfig{
		Config:     config.DefaultConfig(),
		ConfigPath: config.ResolvedValue{Key: "config", Value: path, Source: config.SourceFlag},
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	gc := globalConfig(path)

	stdout, _, err := runConfig(t, gc, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file created: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# daprgen CLI configuration")
	assert.Contains(t, string(data), "outputDir: .")
	assert.Contains(t, string(data), "dir: deploy")

	t.Run("existing file needs force", func(t *testing.T) {
		_, _, err := runConfig(t, gc, "init")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

		_, _, err = runConfig(t, gc, "init", "--force")
		assert.NoError(t, err)
	})

	t.Run("written file passes vet", func(t *testing.T) {
		stdout, _, err := runConfig(t, gc, "vet")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Schema")
	})

	t.Run("written file loads", func(t *testing.T) {
		cfg, err := config.NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})
}

func TestConfigVet(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := runConfig(t, globalConfig(filepath.Join(t.TempDir(), "none.yaml")), "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	})

	t.Run("schema violation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("kubeconfig: ~/.kube/config\n"), 0o644))

		_, stderr, err := runConfig(t, globalConfig(path), "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
		assert.Contains(t, stderr, "config validation failed")
		assert.Contains(t, stderr, "kubeconfig")

		var exitErr *cmdtypes.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.True(t, exitErr.Printed)
	})

	t.Run("templates dir checked", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

		gc := globalConfig(path)
		gc.TemplatesDir = config.ResolvedValue{Value: t.TempDir()}

		_, _, err := runConfig(t, gc, "vet")
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})

	t.Run("registry overlay checked", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
		overlay := filepath.Join(dir, "registry.yaml")
		require.NoError(t, os.WriteFile(overlay, []byte("languages: []\n"), 0o644))

		gc := globalConfig(path)
		gc.RegistryFile = config.ResolvedValue{Value: overlay}

		stdout, _, err := runConfig(t, gc, "vet")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Registry overlay")
	})
}
