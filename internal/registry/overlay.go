package registry

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	oerrors "github.com/daprgen/cli/internal/errors"
)

// Overlay is the on-disk registry file format. Entries replace built-in
// entries with the same key and are appended otherwise.
type Overlay struct {
	Scaffold   *Scaffold           `yaml:"scaffold,omitempty"`
	Languages  []LanguageTemplate  `yaml:"languages,omitempty"`
	Components []ComponentTemplate `yaml:"components,omitempty"`
}

// LoadOverlay decodes an overlay and merges it over r. The result is a new,
// validated registry; r is left unchanged.
func (r *Registry) LoadOverlay(in io.Reader) (*Registry, error) {
	var ov Overlay
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&ov); err != nil && !errors.Is(err, io.EOF) {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("parsing registry overlay: %v", err),
			"registry", "", "",
		)
	}
	return r.Merge(ov)
}

// LoadOverlayFile reads an overlay from path.
func (r *Registry) LoadOverlayFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("registry file does not exist", path,
				"check the registryFile setting or remove it to use the built-in registry")
		}
		return nil, fmt.Errorf("opening registry file: %w", err)
	}
	defer f.Close()

	merged, err := r.LoadOverlay(f)
	if err != nil {
		var de *oerrors.DetailError
		if errors.As(err, &de) {
			de.Location = path
		}
		return nil, err
	}
	return merged, nil
}

// Merge applies ov over r and returns the validated result.
func (r *Registry) Merge(ov Overlay) (*Registry, error) {
	langs := r.Languages()
	for _, l := range ov.Languages {
		if i, ok := r.byLanguage[l.Language]; ok {
			langs[i] = l
			continue
		}
		langs = append(langs, l)
	}

	comps := append([]ComponentTemplate(nil), r.components...)
	for _, c := range ov.Components {
		if i, ok := r.byComponent[c.Ref()]; ok {
			comps[i] = c
			continue
		}
		comps = append(comps, c)
	}

	scaffold := r.scaffold
	if ov.Scaffold != nil {
		scaffold = *ov.Scaffold
	}

	return New(langs, comps, scaffold)
}
