package prompt

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/daprgen/cli/internal/registry"
	"github.com/daprgen/cli/internal/selection"
)

// Ask fills in the answers seed leaves empty, one prompt per question.
// Answers already present in seed are not asked again.
func Ask(ui UI, reg *registry.Registry, seed selection.Answers) (selection.Answers, error) {
	a := seed

	if strings.TrimSpace(a.Name) == "" {
		if err := ui.Input("What would you like to call your dapr project?", &a.Name, validateName); err != nil {
			return a, err
		}
	}

	if a.Mode == "" {
		a.Mode = string(selection.ModeKubernetes)
		if err := ui.Select("Are you running dapr in Kubernetes or in standalone mode?",
			[]string{string(selection.ModeKubernetes), string(selection.ModeStandalone)}, &a.Mode); err != nil {
			return a, err
		}
	}

	if a.Languages == nil {
		var langs []string
		for _, l := range reg.Languages() {
			langs = append(langs, string(l.Language))
		}
		a.Languages = []string{}
		if err := ui.MultiSelect("What languages would you like to scaffold microservices for?", langs, &a.Languages); err != nil {
			return a, err
		}
	}

	if a.StateStore == "" {
		a.StateStore = selection.NoneSentinel
		if err := ui.Select("What state store (if any) would you like your app to use?",
			componentOptions(reg, registry.KindState, true), &a.StateStore); err != nil {
			return a, err
		}
	}

	if a.PubSub == "" {
		a.PubSub = selection.NoneSentinel
		if err := ui.Select("What pub/sub (if any) would you like your app to use?",
			componentOptions(reg, registry.KindPubSub, true), &a.PubSub); err != nil {
			return a, err
		}
	}

	if a.Bindings == nil {
		a.Bindings = []string{}
		if err := ui.MultiSelect("What bindings would you like your app to use?",
			componentOptions(reg, registry.KindBindings, false), &a.Bindings); err != nil {
			return a, err
		}
	}

	return a, nil
}

func componentOptions(reg *registry.Registry, kind registry.ComponentKind, withNone bool) []string {
	var out []string
	for _, c := range reg.Components(kind) {
		out = append(out, c.Name)
	}
	if withNone {
		out = append(out, selection.NoneSentinel)
	}
	return out
}

func validateName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("a project name is required")
	}
	if msgs := validation.IsDNS1123Label(s); len(msgs) > 0 {
		return fmt.Errorf("%s", msgs[0])
	}
	return nil
}
