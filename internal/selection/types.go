// Package selection turns raw user answers into the immutable App that
// drives planning and generation.
package selection

import (
	"strings"

	"github.com/daprgen/cli/internal/registry"
)

// NoneSentinel is the answer that means "no component".
const NoneSentinel = "None"

// Mode is the Dapr hosting mode the user intends to run in first.
type Mode string

const (
	ModeKubernetes Mode = "Kubernetes"
	ModeStandalone Mode = "Standalone"
)

// Protocol is the Dapr app protocol of a microservice.
type Protocol string

const (
	ProtocolHTTP Protocol = "HTTP"
	ProtocolGRPC Protocol = "gRPC"
)

// Microservice is one generated service. The flags are stored for future
// conditional templates and do not change generation today.
type Microservice struct {
	Language         registry.Language `json:"language" yaml:"language"`
	StatePersistence bool              `json:"statePersistence,omitempty" yaml:"statePersistence,omitempty"`
	PubSub           bool              `json:"pubsub,omitempty" yaml:"pubsub,omitempty"`
	ExternalEndpoint bool              `json:"externalEndpoint,omitempty" yaml:"externalEndpoint,omitempty"`
	Actors           *bool             `json:"actors,omitempty" yaml:"actors,omitempty"`
	Protocol         Protocol          `json:"protocol,omitempty" yaml:"protocol,omitempty"`
}

// App is the aggregate root of a generation run. Build creates it once; it
// must not be modified afterwards.
type App struct {
	Name          string                  `json:"name" yaml:"name"`
	Mode          Mode                    `json:"mode" yaml:"mode"`
	Microservices []Microservice          `json:"microservices" yaml:"microservices"`
	StateStore    *registry.ComponentRef  `json:"stateStore,omitempty" yaml:"stateStore,omitempty"`
	PubSub        *registry.ComponentRef  `json:"pubsub,omitempty" yaml:"pubsub,omitempty"`
	Bindings      []registry.ComponentRef `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// Languages returns the microservice languages in selection order.
func (a *App) Languages() []registry.Language {
	out := make([]registry.Language, 0, len(a.Microservices))
	for _, ms := range a.Microservices {
		out = append(out, ms.Language)
	}
	return out
}

// Components returns the selected components in generation order: state
// store, pub/sub, then bindings.
func (a *App) Components() []registry.ComponentRef {
	var out []registry.ComponentRef
	if a.StateStore != nil {
		out = append(out, *a.StateStore)
	}
	if a.PubSub != nil {
		out = append(out, *a.PubSub)
	}
	return append(out, a.Bindings...)
}

// isNone reports whether an answer means "no component".
func isNone(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, NoneSentinel)
}
