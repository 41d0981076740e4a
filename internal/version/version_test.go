package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.CUESDKVersion, "CUESDKVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:       "v1.0.0",
		GitCommit:     "abc123",
		BuildDate:     "2026-01-29",
		GoVersion:     "go1.25",
		CUESDKVersion: "v0.15.4",
	}

	str := info.String()

	assert.Contains(t, str, "daprgen version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
	assert.Contains(t, str, "v0.15.4")
}

func TestExtractDaprVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		ok     bool
	}{
		{"standard", "CLI version: 1.14.1 \nRuntime version: 1.14.4\n", "1.14.1", true},
		{"prefixed", "CLI version: v1.15.0-rc.2\nRuntime version: n/a\n", "1.15.0-rc.2", true},
		{"garbage", "command not found", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractDaprVersion(tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectDaprCLI_NotFound(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(string) (string, error) { return "", errors.New("not found") }

	info := DetectDaprCLI()
	assert.False(t, info.Found)
	assert.Equal(t, "  dapr CLI:  not found", info.String())
}

func TestDaprCLIInfoString(t *testing.T) {
	assert.Equal(t, "  dapr CLI:  1.14.1 (/usr/local/bin/dapr)",
		DaprCLIInfo{Version: "1.14.1", Path: "/usr/local/bin/dapr", Found: true}.String())
}
