package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daprgen/cli/internal/testutil"
)

var daprgenBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "daprgen-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	daprgenBinary = filepath.Join(tmpDir, "daprgen")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", daprgenBinary, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build daprgen binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runDaprgen runs the binary in workDir with an isolated config file.
func runDaprgen(t *testing.T, workDir string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, daprgenBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "DAPRGEN_CONFIG="+filepath.Join(workDir, "config.yaml"))

	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), string(exitErr.Stderr), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(out), "", 0
}

func TestE2E_New(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, code := runDaprgen(t, dir, "new", "demo", "-l", "Go", "--state-store", "Redis", "--pubsub", "None")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "I scaffolded a Kubernetes dapr app called demo.")

	assert.FileExists(t, filepath.Join(dir, "demo", "go", "main.go"))
	assert.FileExists(t, filepath.Join(dir, "demo", "deploy", "redis-state.yaml"))
	assert.FileExists(t, filepath.Join(dir, "demo", "components", "redis-state.yaml"))

	_, stderr, code = runDaprgen(t, dir, "new", "demo", "-l", "Go")
	assert.Equal(t, 2, code, "existing project without --force")
	assert.Contains(t, stderr, "already exists")
}

func TestE2E_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown component", []string{"new", "demo", "--state-store", "MongoDB"}, 2},
		{"invalid name", []string{"new", "Demo_App", "-l", "Go"}, 2},
		{"missing name", []string{"new", "-l", "Go", "--no-prompt"}, 2},
		{"missing answers file", []string{"new", "--answers", "nope.yaml"}, 5},
		{"unknown command", []string{"deploy"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, stderr, code := runDaprgen(t, dir, tt.args...)
			assert.Equal(t, tt.code, code, "stderr: %s", stderr)
			assert.NotEmpty(t, stderr)
			assert.NoDirExists(t, filepath.Join(dir, "demo"))
		})
	}
}

func TestE2E_DiffExitCode(t *testing.T) {
	dir := t.TempDir()
	args := []string{"demo", "-l", "Python", "--pubsub", "NATS"}

	_, stderr, code := runDaprgen(t, dir, append([]string{"new"}, args...)...)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	_, _, code = runDaprgen(t, dir, append([]string{"diff", "--no-color"}, args...)...)
	assert.Equal(t, 0, code)

	testutil.WriteFile(t, dir, "demo/python/extra.py", "print('hi')\n")
	stdout, stderr, code := runDaprgen(t, dir, append([]string{"diff", "--no-color"}, args...)...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "demo/python/extra.py")
	assert.Empty(t, stderr, "diff reports differences on stdout only")
}

func TestE2E_ConfigInitThenVet(t *testing.T) {
	dir := t.TempDir()

	_, stderr, code := runDaprgen(t, dir, "config", "init")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	_, stderr, code = runDaprgen(t, dir, "config", "vet")
	assert.Equal(t, 0, code, "stderr: %s", stderr)

	testutil.WriteFile(t, dir, "config.yaml", "modes: []\n")
	_, _, code = runDaprgen(t, dir, "config", "vet")
	assert.Equal(t, 2, code)
}

func TestE2E_Version(t *testing.T) {
	stdout, stderr, code := runDaprgen(t, t.TempDir(), "version")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Contains(t, stdout, "daprgen version")
	assert.Contains(t, stdout, "CUE SDK")
}

func TestE2E_Help(t *testing.T) {
	stdout, stderr, code := runDaprgen(t, t.TempDir(), "--help")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	for _, sub := range []string{"new", "plan", "diff", "list", "config", "version"} {
		assert.Contains(t, stdout, sub)
	}
}
