// Package summary projects an App into the human-readable text shown after
// generation.
package summary

import (
	"fmt"
	"strings"

	"github.com/daprgen/cli/internal/registry"
	"github.com/daprgen/cli/internal/selection"
)

// Describe returns a sentence-style description of what was scaffolded.
// Microservices and components are listed in selection order.
func Describe(app *selection.App) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I scaffolded %s dapr app called %s.", withArticle(string(app.Mode)), app.Name)

	var services []string
	for _, ms := range app.Microservices {
		services = append(services, withArticle(string(ms.Language))+" microservice")
	}
	if len(services) > 0 {
		fmt.Fprintf(&b, " The app includes %s.", joinList(services))
	}

	var components []string
	for _, ref := range app.Components() {
		components = append(components, withArticle(ref.Name)+" "+ref.Kind.Title())
	}
	if len(components) > 0 {
		fmt.Fprintf(&b, " I also created the configuration files for %s.", joinList(components))
	}

	if len(services) == 0 && len(components) == 0 {
		b.WriteString(" No microservices or components were selected, so only the manifest directories were created.")
	}

	return b.String()
}

// withArticle prefixes s with "a" or "an".
func withArticle(s string) string {
	if s == "" {
		return s
	}
	switch strings.ToLower(s[:1]) {
	case "a", "e", "i", "o", "u":
		return "an " + s
	default:
		return "a " + s
	}
}

// joinList joins items as "a", "a and b" or "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// kindTitles is used by NextSteps headings.
var kindTitles = map[registry.ComponentKind]string{
	registry.KindState:    "State store",
	registry.KindPubSub:   "Pub/sub",
	registry.KindBindings: "Binding",
}
