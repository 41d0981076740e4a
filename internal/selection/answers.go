package selection

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/registry"
)

// Answers is the raw, loosely typed answer set produced by prompts, flags
// or an answers file.
type Answers struct {
	Name       string                    `yaml:"name,omitempty" toml:"name,omitempty"`
	Mode       string                    `yaml:"mode,omitempty" toml:"mode,omitempty"`
	Languages  []string                  `yaml:"languages,omitempty" toml:"languages,omitempty"`
	StateStore string                    `yaml:"stateStore,omitempty" toml:"stateStore,omitempty"`
	PubSub     string                    `yaml:"pubsub,omitempty" toml:"pubsub,omitempty"`
	Bindings   []string                  `yaml:"bindings,omitempty" toml:"bindings,omitempty"`
	Services   map[string]ServiceAnswers `yaml:"services,omitempty" toml:"services,omitempty"`
}

// ServiceAnswers carries the optional per-language microservice flags.
type ServiceAnswers struct {
	StatePersistence bool   `yaml:"statePersistence,omitempty" toml:"statePersistence,omitempty"`
	PubSub           bool   `yaml:"pubsub,omitempty" toml:"pubsub,omitempty"`
	ExternalEndpoint bool   `yaml:"externalEndpoint,omitempty" toml:"externalEndpoint,omitempty"`
	Actors           *bool  `yaml:"actors,omitempty" toml:"actors,omitempty"`
	Protocol         string `yaml:"protocol,omitempty" toml:"protocol,omitempty"`
}

// Empty reports whether no selection was made at all.
func (a Answers) Empty() bool {
	return len(a.Languages) == 0 && isNone(a.StateStore) && isNone(a.PubSub) && len(a.Bindings) == 0
}

// LoadAnswers reads an answers file. The format follows the extension:
// .yaml/.yml or .toml. Unknown fields are rejected.
func LoadAnswers(path string) (Answers, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Answers{}, fmt.Errorf("expanding answers path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return Answers{}, oerrors.NewNotFoundError("answers file does not exist", expanded, "")
		}
		return Answers{}, fmt.Errorf("reading answers file: %w", err)
	}

	var a Answers
	switch ext := strings.ToLower(filepath.Ext(expanded)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
			return Answers{}, oerrors.NewValidationError(err.Error(), expanded, "", "answers files use the keys name, mode, languages, stateStore, pubsub, bindings and services")
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return Answers{}, oerrors.NewValidationError(err.Error(), expanded, "", "answers files use the keys name, mode, languages, stateStore, pubsub, bindings and services")
		}
	default:
		return Answers{}, oerrors.NewValidationError(
			fmt.Sprintf("unsupported answers file extension %q", ext),
			expanded, "", "use a .yaml, .yml or .toml file",
		)
	}
	return a, nil
}

// Canonical returns a copy of a with every language and component answer
// rewritten to its registry key where the registry recognizes it. Unknown
// values are kept as typed so that planning reports them.
func (a Answers) Canonical(reg *registry.Registry) Answers {
	out := a
	out.Languages = make([]string, len(a.Languages))
	for i, l := range a.Languages {
		out.Languages[i] = canonicalLanguage(reg, l)
	}
	out.StateStore = canonicalComponent(reg, registry.KindState, a.StateStore)
	out.PubSub = canonicalComponent(reg, registry.KindPubSub, a.PubSub)
	out.Bindings = make([]string, len(a.Bindings))
	for i, b := range a.Bindings {
		out.Bindings[i] = canonicalComponent(reg, registry.KindBindings, b)
	}
	if a.Services != nil {
		out.Services = make(map[string]ServiceAnswers, len(a.Services))
		for k, v := range a.Services {
			out.Services[canonicalLanguage(reg, k)] = v
		}
	}
	return out
}

func canonicalLanguage(reg *registry.Registry, s string) string {
	if l, ok := reg.CanonicalLanguage(s); ok {
		return string(l)
	}
	return s
}

func canonicalComponent(reg *registry.Registry, kind registry.ComponentKind, s string) string {
	if isNone(s) {
		return s
	}
	if name, ok := reg.CanonicalComponent(kind, s); ok {
		return name
	}
	return s
}
