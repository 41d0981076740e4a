package registry

import (
	"fmt"
	"strings"
)

// Registry is an immutable set of language and component templates.
type Registry struct {
	languages  []LanguageTemplate
	components []ComponentTemplate
	scaffold   Scaffold

	byLanguage  map[Language]int
	byComponent map[ComponentRef]int
}

// New builds and validates a registry. Entries keep the given order.
func New(languages []LanguageTemplate, components []ComponentTemplate, scaffold Scaffold) (*Registry, error) {
	r := &Registry{
		languages:   append([]LanguageTemplate(nil), languages...),
		components:  append([]ComponentTemplate(nil), components...),
		scaffold:    scaffold,
		byLanguage:  make(map[Language]int, len(languages)),
		byComponent: make(map[ComponentRef]int, len(components)),
	}
	for i, l := range r.languages {
		r.byLanguage[l.Language] = i
	}
	for i, c := range r.components {
		r.byComponent[c.Ref()] = i
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Language resolves a language to its template.
func (r *Registry) Language(l Language) (LanguageTemplate, error) {
	i, ok := r.byLanguage[l]
	if !ok {
		return LanguageTemplate{}, &UnknownTemplateKeyError{Kind: "language", Key: string(l), Known: r.languageKeys()}
	}
	return r.languages[i], nil
}

// Component resolves a component reference to its template.
func (r *Registry) Component(ref ComponentRef) (ComponentTemplate, error) {
	i, ok := r.byComponent[ref]
	if !ok {
		return ComponentTemplate{}, &UnknownTemplateKeyError{Kind: ref.Kind.Title(), Key: ref.Name, Known: r.componentKeys(ref.Kind)}
	}
	return r.components[i], nil
}

// Languages returns all language templates in registry order.
func (r *Registry) Languages() []LanguageTemplate {
	return append([]LanguageTemplate(nil), r.languages...)
}

// Components returns the templates of one kind in registry order.
func (r *Registry) Components(kind ComponentKind) []ComponentTemplate {
	var out []ComponentTemplate
	for _, c := range r.components {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Scaffold returns the placeholder directory description.
func (r *Registry) Scaffold() Scaffold {
	return r.scaffold
}

// CanonicalLanguage maps a user-typed language to its registry key. The
// match is exact first, then case-insensitive on the key or LanguageName,
// so "go" and "GO" both resolve to "Go".
func (r *Registry) CanonicalLanguage(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	if _, ok := r.byLanguage[Language(s)]; ok {
		return Language(s), true
	}
	for _, l := range r.languages {
		if strings.EqualFold(string(l.Language), s) || strings.EqualFold(l.LanguageName, s) {
			return l.Language, true
		}
	}
	return "", false
}

// CanonicalComponent maps a user-typed component name of the given kind to
// its registry key, matching the key, ComponentName or an alias
// case-insensitively.
func (r *Registry) CanonicalComponent(kind ComponentKind, s string) (string, bool) {
	s = strings.TrimSpace(s)
	if _, ok := r.byComponent[ComponentRef{Kind: kind, Name: s}]; ok {
		return s, true
	}
	for _, c := range r.components {
		if c.Kind != kind {
			continue
		}
		if strings.EqualFold(c.Name, s) || strings.EqualFold(c.ComponentName, s) {
			return c.Name, true
		}
		for _, a := range c.Aliases {
			if strings.EqualFold(a, s) {
				return c.Name, true
			}
		}
	}
	return "", false
}

func (r *Registry) languageKeys() []string {
	keys := make([]string, 0, len(r.languages))
	for _, l := range r.languages {
		keys = append(keys, string(l.Language))
	}
	return keys
}

func (r *Registry) componentKeys(kind ComponentKind) []string {
	var keys []string
	for _, c := range r.components {
		if c.Kind == kind {
			keys = append(keys, c.Name)
		}
	}
	return keys
}

// String returns a short description for debug logging.
func (r *Registry) String() string {
	return fmt.Sprintf("registry(%d languages, %d components)", len(r.languages), len(r.components))
}
