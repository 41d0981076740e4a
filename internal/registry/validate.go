package registry

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	oerrors "github.com/daprgen/cli/internal/errors"
)

// Validate checks the registry invariants: keys are unique per kind, every
// artifact name is a DNS-1123 label, and artifact names are unique across
// languages and components so that no two generated files collide.
func (r *Registry) Validate() error {
	var issues []string
	addf := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	artifacts := make(map[string]string)
	claim := func(name, owner string) {
		if prev, ok := artifacts[name]; ok {
			addf("artifact name %q used by both %s and %s", name, prev, owner)
			return
		}
		artifacts[name] = owner
	}

	seenLang := make(map[Language]bool)
	for _, l := range r.languages {
		owner := fmt.Sprintf("language %q", l.Language)
		if l.Language == "" {
			addf("language entry with languageName %q has no key", l.LanguageName)
			continue
		}
		if seenLang[l.Language] {
			addf("%s registered twice", owner)
			continue
		}
		seenLang[l.Language] = true

		for _, msg := range validation.IsDNS1123Label(l.LanguageName) {
			addf("%s: languageName %q: %s", owner, l.LanguageName, msg)
		}
		if l.CodeTemplatePath == "" {
			addf("%s: codeTemplatePath is required", owner)
		}
		if l.ManifestTemplatePath == "" {
			addf("%s: manifestTemplatePath is required", owner)
		}
		if l.DefaultPort < 1 || l.DefaultPort > 65535 {
			addf("%s: defaultPort %d out of range", owner, l.DefaultPort)
		}
		claim(l.LanguageName, owner)
	}

	seenComp := make(map[ComponentRef]bool)
	for _, c := range r.components {
		owner := fmt.Sprintf("%s %q", c.Kind.Title(), c.Name)
		if !c.Kind.Valid() {
			addf("component %q: unknown kind %q", c.Name, c.Kind)
			continue
		}
		if c.Name == "" {
			addf("%s component with componentName %q has no name", c.Kind, c.ComponentName)
			continue
		}
		if seenComp[c.Ref()] {
			addf("%s registered twice", owner)
			continue
		}
		seenComp[c.Ref()] = true

		for _, msg := range validation.IsDNS1123Label(c.ComponentName) {
			addf("%s: componentName %q: %s", owner, c.ComponentName, msg)
		}
		if c.ComponentType == "" {
			addf("%s: componentType is required", owner)
		}
		if c.ManifestTemplatePath == "" {
			addf("%s: manifestTemplatePath is required", owner)
		}
		claim(c.ComponentName, owner)
	}

	// Every name a user may type must pick exactly one component of its kind.
	typed := make(map[ComponentKind]map[string]string)
	for _, c := range r.components {
		if typed[c.Kind] == nil {
			typed[c.Kind] = make(map[string]string)
		}
		owner := fmt.Sprintf("%s %q", c.Kind.Title(), c.Name)
		for _, n := range append([]string{c.Name, c.ComponentName}, c.Aliases...) {
			key := strings.ToLower(strings.TrimSpace(n))
			if key == "" {
				addf("%s: empty alias", owner)
				continue
			}
			if prev, ok := typed[c.Kind][key]; ok && prev != owner {
				addf("%s: name %q already selects %s", owner, n, prev)
				continue
			}
			typed[c.Kind][key] = owner
		}
	}

	if r.scaffold.Source == "" {
		addf("scaffold: source is required")
	}
	if r.scaffold.Placeholder == "" {
		addf("scaffold: placeholder is required")
	}

	if len(issues) == 0 {
		return nil
	}
	return oerrors.NewValidationError(
		strings.Join(issues, "\n  "),
		"registry",
		"",
		"artifact names must be unique lowercase DNS labels (e.g. redis-state)",
	)
}

// CheckModeDirs reports languages whose code directory would land on one
// of the deployment-mode directories. Both live directly under the
// project root, so such a language could never be generated.
func (r *Registry) CheckModeDirs(dirs []string) error {
	var issues []string
	for _, l := range r.languages {
		for _, d := range dirs {
			if l.LanguageName == d {
				issues = append(issues, fmt.Sprintf("language %q: languageName %q is also a mode directory", l.Language, d))
			}
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return oerrors.NewValidationError(
		strings.Join(issues, "\n  "),
		"registry",
		"languageName",
		"rename the language or the mode directory",
	)
}
