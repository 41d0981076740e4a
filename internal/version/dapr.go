package version

import (
	"bytes"
	"os/exec"
	"regexp"
	"strings"
)

// daprVersionRegex matches the CLI line of `dapr version`, e.g.
// "CLI version: 1.14.1".
var daprVersionRegex = regexp.MustCompile(`CLI version:\s*v?(\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?)`)

// DaprCLIInfo describes the dapr CLI found on PATH.
type DaprCLIInfo struct {
	// Version is the dapr CLI version without a "v" prefix.
	Version string `json:"version,omitempty"`

	// Path is the path to the dapr binary.
	Path string `json:"path,omitempty"`

	// Found indicates if the dapr binary was found.
	Found bool `json:"found"`

	// Message explains a lookup or parse failure.
	Message string `json:"message,omitempty"`
}

var lookPath = exec.LookPath

// DetectDaprCLI finds the dapr CLI needed to run generated projects.
func DetectDaprCLI() DaprCLIInfo {
	path, err := lookPath("dapr")
	if err != nil {
		return DaprCLIInfo{Message: "dapr CLI not found in PATH"}
	}

	cmd := exec.Command(path, "version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return DaprCLIInfo{Path: path, Found: true, Message: "failed to get dapr version: " + err.Error()}
	}

	v, ok := extractDaprVersion(out.String())
	if !ok {
		return DaprCLIInfo{Path: path, Found: true, Message: "could not parse dapr version output"}
	}
	return DaprCLIInfo{Version: v, Path: path, Found: true}
}

// extractDaprVersion pulls the CLI version from `dapr version` output.
func extractDaprVersion(output string) (string, bool) {
	m := daprVersionRegex.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	return strings.TrimPrefix(m[1], "v"), true
}

// String returns a human-readable dapr CLI line.
func (d DaprCLIInfo) String() string {
	switch {
	case !d.Found:
		return "  dapr CLI:  not found"
	case d.Version == "":
		return "  dapr CLI:  " + d.Message + " (" + d.Path + ")"
	default:
		return "  dapr CLI:  " + d.Version + " (" + d.Path + ")"
	}
}
