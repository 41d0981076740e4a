package selection

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/registry"
)

// Build validates and normalizes answers into an App. A non-empty
// nameOverride takes precedence over the answered name.
//
// "None" and empty answers for the state store and pub/sub mean absent.
// Bindings drop the sentinel and duplicates, keeping relative order.
// Languages produce one microservice each in selection order, first
// occurrence wins.
func Build(a Answers, nameOverride string) (*App, error) {
	name, err := projectName(a.Name, nameOverride)
	if err != nil {
		return nil, err
	}

	mode, err := ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}

	services, err := microservices(a.Languages, a.Services)
	if err != nil {
		return nil, err
	}

	return &App{
		Name:          name,
		Mode:          mode,
		Microservices: services,
		StateStore:    optionalComponent(registry.KindState, a.StateStore),
		PubSub:        optionalComponent(registry.KindPubSub, a.PubSub),
		Bindings:      bindings(a.Bindings),
	}, nil
}

func projectName(answered, override string) (string, error) {
	name := strings.TrimSpace(override)
	if name == "" {
		name = strings.TrimSpace(answered)
	}
	if name == "" {
		return "", &oerrors.DetailError{
			Type:    "missing project name",
			Message: "no project name was given",
			Field:   "name",
			Hint:    "pass --name or set name in the answers file",
			Cause:   oerrors.ErrMissingProjectName,
		}
	}

	if msgs := validation.IsDNS1123Label(name); len(msgs) > 0 {
		return "", &oerrors.DetailError{
			Type:    "invalid project name",
			Message: fmt.Sprintf("%q: %s", name, strings.Join(msgs, "; ")),
			Field:   "name",
			Hint:    "use lowercase letters, digits and '-' (e.g. my-dapr-app)",
			Cause:   oerrors.ErrInvalidProjectName,
		}
	}
	return name, nil
}

// ParseMode parses a hosting mode case-insensitively. Empty means Kubernetes.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kubernetes", "k8s":
		return ModeKubernetes, nil
	case "standalone", "self-hosted":
		return ModeStandalone, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown mode %q", s),
			"", "mode", "use Kubernetes or Standalone",
		)
	}
}

func parseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "http":
		return ProtocolHTTP, nil
	case "grpc":
		return ProtocolGRPC, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown protocol %q", s),
			"", "services.protocol", "use HTTP or gRPC",
		)
	}
}

func microservices(languages []string, flags map[string]ServiceAnswers) ([]Microservice, error) {
	seen := make(map[string]bool, len(languages))
	out := make([]Microservice, 0, len(languages))

	for _, raw := range languages {
		lang := strings.TrimSpace(raw)
		if isNone(lang) || seen[lang] {
			continue
		}
		seen[lang] = true

		f := flags[lang]
		protocol, err := parseProtocol(f.Protocol)
		if err != nil {
			return nil, err
		}
		out = append(out, Microservice{
			Language:         registry.Language(lang),
			StatePersistence: f.StatePersistence,
			PubSub:           f.PubSub,
			ExternalEndpoint: f.ExternalEndpoint,
			Actors:           f.Actors,
			Protocol:         protocol,
		})
	}
	return out, nil
}

func optionalComponent(kind registry.ComponentKind, answer string) *registry.ComponentRef {
	if isNone(answer) {
		return nil
	}
	return &registry.ComponentRef{Kind: kind, Name: strings.TrimSpace(answer)}
}

func bindings(answers []string) []registry.ComponentRef {
	seen := make(map[string]bool, len(answers))
	var out []registry.ComponentRef
	for _, raw := range answers {
		name := strings.TrimSpace(raw)
		if isNone(name) || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, registry.ComponentRef{Kind: registry.KindBindings, Name: name})
	}
	return out
}
