package templates

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/registry"
)

// Check verifies that fsys provides every source the registry refers to:
// code and scaffold directories, manifest files and the scaffold
// placeholder. Every rendered file must also parse as a template.
func Check(fsys fs.FS, reg *registry.Registry) error {
	var issues []string
	addf := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	wantDir := func(p, owner string) bool {
		info, err := fs.Stat(fsys, p)
		switch {
		case err != nil:
			addf("%s: directory %s is missing", owner, p)
			return false
		case !info.IsDir():
			addf("%s: %s is not a directory", owner, p)
			return false
		}
		return true
	}
	wantFile := func(p, owner string) {
		info, err := fs.Stat(fsys, p)
		switch {
		case err != nil:
			addf("%s: file %s is missing", owner, p)
		case info.IsDir():
			addf("%s: %s is a directory, expected a manifest file", owner, p)
		default:
			if err := parse(fsys, p); err != nil {
				addf("%s: %v", owner, err)
			}
		}
	}

	scaffold := reg.Scaffold()
	if wantDir(scaffold.Source, "scaffold") {
		wantFile(path.Join(scaffold.Source, scaffold.Placeholder), "scaffold")
	}

	for _, l := range reg.Languages() {
		owner := fmt.Sprintf("language %q", l.Language)
		if wantDir(l.CodeTemplatePath, owner) {
			if err := parseTree(fsys, l.CodeTemplatePath); err != nil {
				addf("%s: %v", owner, err)
			}
		}
		wantFile(l.ManifestTemplatePath, owner)
	}

	for _, kind := range registry.AllKinds() {
		for _, c := range reg.Components(kind) {
			wantFile(c.ManifestTemplatePath, fmt.Sprintf("%s %q", kind.Title(), c.Name))
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return oerrors.NewValidationError(
		strings.Join(issues, "\n  "),
		"templates", "",
		"the templates directory must mirror the layout of the built-in templates",
	)
}

func parse(fsys fs.FS, p string) error {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return err
	}
	if _, err := template.New(p).Parse(string(content)); err != nil {
		return fmt.Errorf("template %s: %w", p, err)
	}
	return nil
}

// parseTree parses every .tmpl file under root.
func parseTree(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsTemplate(p) {
			return nil
		}
		return parse(fsys, p)
	})
}
