// Package templates provides the embedded project template tree and the
// renderer that fills it in.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	oerrors "github.com/daprgen/cli/internal/errors"
)

//go:embed all:source
var sourceFS embed.FS

// sourceRoot is the directory inside sourceFS that holds the tree.
const sourceRoot = "source"

// FS returns the built-in template tree. Paths are relative to its root,
// e.g. "languages/go" or "components/state/redis-state.yaml".
func FS() fs.FS {
	sub, err := fs.Sub(sourceFS, sourceRoot)
	if err != nil {
		panic("templates: embedded tree missing: " + err.Error())
	}
	return sub
}

// Open returns the template source to generate from. An empty dir selects
// the built-in tree; otherwise dir must be an existing directory laid out
// like the built-in tree.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return FS(), nil
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("expanding templates dir: %w", err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("resolving templates dir: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("templates directory does not exist", abs,
				"omit --templates-dir to use the built-in templates")
		}
		return nil, fmt.Errorf("checking templates dir: %w", err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError("templates path is not a directory", abs, "templatesDir", "")
	}

	return os.DirFS(abs), nil
}
