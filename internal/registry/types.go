// Package registry holds the static lookup tables that map languages and
// Dapr components to template sources and output names.
package registry

import "fmt"

// Language is a supported microservice implementation language.
type Language string

const (
	CSharp     Language = "C#"
	Go         Language = "Go"
	JavaScript Language = "JavaScript"
	Python     Language = "Python"
	TypeScript Language = "TypeScript"
)

// AllLanguages returns every built-in language in prompt order.
func AllLanguages() []Language {
	return []Language{CSharp, Go, JavaScript, Python, TypeScript}
}

// ComponentKind is the kind of a Dapr component.
type ComponentKind string

const (
	KindState    ComponentKind = "state"
	KindPubSub   ComponentKind = "pubsub"
	KindBindings ComponentKind = "bindings"
)

// AllKinds returns the component kinds in generation order.
func AllKinds() []ComponentKind {
	return []ComponentKind{KindState, KindPubSub, KindBindings}
}

// Valid reports whether k is a known component kind.
func (k ComponentKind) Valid() bool {
	switch k {
	case KindState, KindPubSub, KindBindings:
		return true
	default:
		return false
	}
}

// Title returns a human-readable label for the kind.
func (k ComponentKind) Title() string {
	switch k {
	case KindState:
		return "state store"
	case KindPubSub:
		return "pub/sub"
	case KindBindings:
		return "binding"
	default:
		return string(k)
	}
}

// ComponentRef identifies a component choice. Two refs are the same
// component when both Kind and Name match.
type ComponentRef struct {
	Kind ComponentKind `json:"kind" yaml:"kind"`
	Name string        `json:"name" yaml:"name"`
}

// String returns "kind/name".
func (r ComponentRef) String() string {
	return fmt.Sprintf("%s/%s", r.Kind, r.Name)
}

// LanguageTemplate describes how one language is generated.
type LanguageTemplate struct {
	// Language is the selection key, e.g. "Go".
	Language Language `json:"language" yaml:"language"`

	// LanguageName names the output directory and manifest, e.g. "go".
	LanguageName string `json:"languageName" yaml:"languageName"`

	// CodeTemplatePath is the boilerplate source directory.
	CodeTemplatePath string `json:"codeTemplatePath" yaml:"codeTemplatePath"`

	// ManifestTemplatePath is the per-service deployment manifest template.
	ManifestTemplatePath string `json:"manifestTemplatePath" yaml:"manifestTemplatePath"`

	// DefaultPort is the port the boilerplate service listens on.
	DefaultPort int `json:"defaultPort" yaml:"defaultPort"`

	// RunCommand starts the service locally, e.g. "go run .".
	RunCommand string `json:"runCommand,omitempty" yaml:"runCommand,omitempty"`
}

// ComponentTemplate describes how one component manifest is generated.
type ComponentTemplate struct {
	Kind ComponentKind `json:"kind" yaml:"kind"`

	// Name is the selection key, e.g. "Redis".
	Name string `json:"name" yaml:"name"`

	// ComponentName names the manifest file and the Dapr component, e.g. "redis-state".
	ComponentName string `json:"componentName" yaml:"componentName"`

	// ComponentType is the Dapr component type, e.g. "state.redis".
	ComponentType string `json:"componentType" yaml:"componentType"`

	ManifestTemplatePath string `json:"manifestTemplatePath" yaml:"manifestTemplatePath"`

	// Advice is a markdown hint shown after generation.
	Advice string `json:"advice,omitempty" yaml:"advice,omitempty"`

	// Aliases are other names accepted for Name, e.g. "CosmosDB".
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Ref returns the identity of the component.
func (c ComponentTemplate) Ref() ComponentRef {
	return ComponentRef{Kind: c.Kind, Name: c.Name}
}

// Scaffold describes the placeholder directory copied to create empty
// manifest directories.
type Scaffold struct {
	// Source is the template directory to copy.
	Source string `json:"source" yaml:"source"`

	// Placeholder is the file that keeps Source non-empty and must be
	// deleted after the copy.
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}
