package plan

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation"

	oerrors "github.com/daprgen/cli/internal/errors"
)

// ModeDir maps a deployment mode to the directory its tooling reads
// component manifests from.
type ModeDir struct {
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`
	Dir  string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// DefaultModes returns the Kubernetes and self-hosted conventions. The first
// entry's directory also receives the microservice manifests.
func DefaultModes() []ModeDir {
	return []ModeDir{
		{Mode: "kubernetes", Dir: "deploy"},
		{Mode: "standalone", Dir: "components"},
	}
}

// ValidateModes checks that modes is non-empty and that every directory is a
// DNS-1123 label. Two modes may share a directory.
func ValidateModes(modes []ModeDir) error {
	if len(modes) == 0 {
		return oerrors.NewValidationError("at least one deployment mode is required", "", "modes", "")
	}
	for i, m := range modes {
		if m.Mode == "" {
			return oerrors.NewValidationError(fmt.Sprintf("modes[%d]: mode is required", i), "", "modes", "")
		}
		if msgs := validation.IsDNS1123Label(m.Dir); len(msgs) > 0 {
			return oerrors.NewValidationError(
				fmt.Sprintf("modes[%d]: dir %q: %s", i, m.Dir, msgs[0]),
				"", "modes", "directories are single lowercase path segments such as deploy",
			)
		}
	}
	return nil
}

// Dirs returns mode directories in order without repeats.
func Dirs(modes []ModeDir) []string {
	seen := make(map[string]bool, len(modes))
	var out []string
	for _, m := range modes {
		if !seen[m.Dir] {
			seen[m.Dir] = true
			out = append(out, m.Dir)
		}
	}
	return out
}
