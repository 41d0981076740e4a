// Package manifest decodes and structurally verifies generated Kubernetes
// and Dapr manifests.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/util/validation"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"

	oerrors "github.com/daprgen/cli/internal/errors"
)

// Object is one manifest document and the file it came from.
type Object struct {
	Path string
	*unstructured.Unstructured
}

// Decode parses a multi-document YAML (or JSON) manifest. Empty documents
// are skipped.
func Decode(name string, data []byte) ([]Object, error) {
	dec := utilyaml.NewYAMLOrJSONDecoder(bytes.NewReader(data), 4096)

	var objs []Object
	for {
		var raw map[string]interface{}
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		if len(raw) == 0 {
			continue
		}
		objs = append(objs, Object{Path: name, Unstructured: &unstructured.Unstructured{Object: raw}})
	}
	return objs, nil
}

// Check returns the structural problems of one object: apiVersion and kind
// are required, metadata.name must be a DNS-1123 subdomain, Dapr components
// need spec.type and spec.version, and Deployments must enable the sidecar.
func Check(obj Object) []string {
	var issues []string
	where := obj.Path
	if name := obj.GetName(); name != "" {
		where = fmt.Sprintf("%s (%s %s)", obj.Path, obj.GetKind(), name)
	}
	addf := func(format string, args ...any) {
		issues = append(issues, where+": "+fmt.Sprintf(format, args...))
	}

	if obj.GetAPIVersion() == "" {
		addf("apiVersion is required")
	}
	if obj.GetKind() == "" {
		addf("kind is required")
	}
	if name := obj.GetName(); name == "" {
		addf("metadata.name is required")
	} else if msgs := validation.IsDNS1123Subdomain(name); len(msgs) > 0 {
		addf("metadata.name %q: %s", name, strings.Join(msgs, "; "))
	}

	gvk := obj.GroupVersionKind()
	switch {
	case gvk.Group == DaprGroup && gvk.Kind == "Component":
		for _, field := range []string{"type", "version"} {
			if v, _, _ := unstructured.NestedString(obj.Object, "spec", field); v == "" {
				addf("spec.%s is required for Dapr components", field)
			}
		}
	case gvk.Group == "apps" && gvk.Kind == "Deployment":
		annotations, _, _ := unstructured.NestedStringMap(obj.Object, "spec", "template", "metadata", "annotations")
		if annotations["dapr.io/enabled"] != "true" {
			addf("pod template must set dapr.io/enabled: \"true\"")
		}
		if annotations["dapr.io/app-id"] == "" {
			addf("pod template must set dapr.io/app-id")
		}
	}

	return issues
}

// Verify decodes and checks one manifest file.
func Verify(name string, data []byte) ([]Object, error) {
	objs, err := Decode(name, data)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), name, "", "")
	}
	if len(objs) == 0 {
		return nil, oerrors.NewValidationError("manifest contains no objects", name, "", "")
	}

	var issues []string
	for _, obj := range objs {
		issues = append(issues, Check(obj)...)
	}
	if len(issues) > 0 {
		return nil, oerrors.NewValidationError(strings.Join(issues, "\n  "), name, "", "")
	}
	return objs, nil
}

// IsManifest reports whether a generated path is a manifest, i.e. a YAML
// file directly inside one of the given manifest directories of the app.
func IsManifest(p string, dirs []string) bool {
	if ext := path.Ext(p); ext != ".yaml" && ext != ".yml" {
		return false
	}
	parent := path.Base(path.Dir(p))
	for _, d := range dirs {
		if parent == d {
			return true
		}
	}
	return false
}

// VerifyFiles verifies every manifest among files (read from fsys) and
// returns all objects in apply order. Problems in all files are reported
// together.
func VerifyFiles(fsys billy.Filesystem, files, dirs []string) ([]Object, error) {
	var (
		objs   []Object
		issues []string
	)
	for _, f := range files {
		if !IsManifest(f, dirs) {
			continue
		}
		data, err := util.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		found, err := Verify(f, data)
		if err != nil {
			var de *oerrors.DetailError
			if errors.As(err, &de) {
				issues = append(issues, de.Message)
				continue
			}
			return nil, err
		}
		objs = append(objs, found...)
	}

	if len(issues) > 0 {
		return nil, oerrors.NewValidationError(
			strings.Join(issues, "\n  "),
			"", "", "fix the manifest templates in your templates directory",
		)
	}

	SortForApply(objs)
	return objs, nil
}

// SortForApply sorts objects in the order they should be applied.
// Lower weight objects come first; ties keep file order.
func SortForApply(objs []Object) {
	sort.SliceStable(objs, func(i, j int) bool {
		return GetWeight(objs[i].GroupVersionKind()) < GetWeight(objs[j].GroupVersionKind())
	})
}

// GroupByKind groups objects by their Kind.
func GroupByKind(objs []Object) map[string][]Object {
	result := make(map[string][]Object)
	for _, o := range objs {
		result[o.GetKind()] = append(result[o.GetKind()], o)
	}
	return result
}

// ApplyOrder returns the distinct files of objs in first-appearance order.
func ApplyOrder(objs []Object) []string {
	seen := make(map[string]bool)
	var files []string
	for _, o := range objs {
		if !seen[o.Path] {
			seen[o.Path] = true
			files = append(files, o.Path)
		}
	}
	return files
}
