package cmdutil

import (
	"fmt"
	"io/fs"

	"github.com/daprgen/cli/internal/cmdtypes"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/plan"
	"github.com/daprgen/cli/internal/registry"
	"github.com/daprgen/cli/internal/templates"
)

// Sources is everything a command generates from.
type Sources struct {
	Registry  *registry.Registry
	Templates fs.FS
	Modes     []plan.ModeDir
}

// ModeDirs returns the distinct mode directories in order.
func (s *Sources) ModeDirs() []string {
	return plan.Dirs(s.Modes)
}

// LoadSources builds the registry (built-in plus overlay), opens the
// template tree and checks that the two agree.
func LoadSources(gc *cmdtypes.GlobalConfig) (*Sources, error) {
	if gc == nil || gc.Config == nil {
		return nil, &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("configuration not loaded")}
	}

	reg := registry.Default()
	if path := gc.RegistryFile.Value; path != "" {
		merged, err := reg.LoadOverlayFile(path)
		if err != nil {
			return nil, err
		}
		reg = merged
		output.Debug("registry overlay loaded", "path", path, "source", gc.RegistryFile.Source)
	}

	src, err := templates.Open(gc.TemplatesDir.Value)
	if err != nil {
		return nil, err
	}
	if err := templates.Check(src, reg); err != nil {
		return nil, err
	}

	modes := gc.Config.Modes
	if len(modes) == 0 {
		modes = plan.DefaultModes()
	}
	if err := plan.ValidateModes(modes); err != nil {
		return nil, err
	}
	if err := reg.CheckModeDirs(plan.Dirs(modes)); err != nil {
		return nil, err
	}

	return &Sources{Registry: reg, Templates: src, Modes: modes}, nil
}
