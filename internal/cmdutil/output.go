package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/daprgen/cli/internal/manifest"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/plan"
	"github.com/daprgen/cli/internal/templates"
)

// WriteStructured writes v as YAML or JSON. Both use the json struct tags.
func WriteStructured(w io.Writer, format output.OutputFormat, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case output.FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// PlanTable renders a plan as a table of operations. For copy operations
// the FILES column lists what the source in src produces.
func PlanTable(p *plan.Plan, src fs.FS) string {
	tbl := output.NewTable("#", "OPERATION", "SOURCE", "DESTINATION", "FILES")
	for i, op := range p.Operations {
		source, files := "-", "-"
		if op.Kind != plan.DeletePath {
			source = op.Src
			if names, err := templates.ListFiles(src, op.Src); err == nil {
				files = strings.Join(names, ", ")
			}
		}
		tbl.Row(fmt.Sprintf("%d", i+1), string(op.Kind), source, op.Dst, files)
	}
	return tbl.String()
}

// FileTree renders the generated files below root. Files inside a mode
// directory are labelled as manifests.
func FileTree(root string, files, modeDirs []string) string {
	entries := make(map[string]string, len(files))
	for _, f := range files {
		rel := strings.TrimPrefix(f, root+"/")
		switch {
		case manifest.IsManifest(f, modeDirs):
			entries[rel] = "Manifest"
		case path.Base(f) == "Dockerfile":
			entries[rel] = "Container image"
		default:
			entries[rel] = ""
		}
	}
	return output.RenderFileTree(root, entries, output.GetStyles())
}
