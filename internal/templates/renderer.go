package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

// Suffix marks files that are rendered when copied as part of a directory.
// It is stripped from the output name.
const Suffix = ".tmpl"

// IsTemplate reports whether name carries the template suffix.
func IsTemplate(name string) bool {
	return strings.HasSuffix(name, Suffix)
}

// TargetName returns name without the template suffix.
func TargetName(name string) string {
	return strings.TrimSuffix(name, Suffix)
}

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data any
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data any) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders one template. Referencing a field that data does not
// have is an error.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// ListFiles returns the output names of every file under root in fsys,
// relative to root, sorted. A root that is a file yields its own base name.
func ListFiles(fsys fs.FS, root string) ([]string, error) {
	info, err := fs.Stat(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{TargetName(path.Base(root))}, nil
	}

	var files []string
	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, root+"/")
		files = append(files, TargetName(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
