package summary

import (
	"fmt"
	"path"
	"strings"

	"github.com/daprgen/cli/internal/plan"
	"github.com/daprgen/cli/internal/registry"
	"github.com/daprgen/cli/internal/selection"
)

// Options tunes NextSteps.
type Options struct {
	// Modes are the deployment mode directories that were generated.
	Modes []plan.ModeDir

	// ApplyOrder lists manifest files in the order they should be applied.
	// Only files in the Kubernetes manifest directory are used; when none
	// are listed the whole directory is applied at once.
	ApplyOrder []string
}

// NextSteps returns Markdown advice for running the generated app: runtime
// setup for the chosen mode, per-component configuration and the commands
// that start each service.
func NextSteps(app *selection.App, reg *registry.Registry, opts Options) string {
	modes := opts.Modes
	if len(modes) == 0 {
		modes = plan.DefaultModes()
	}
	manifestDir := path.Join(app.Name, modes[0].Dir)
	componentsDir := path.Join(app.Name, dirFor(modes, "standalone", modes[len(modes)-1].Dir))

	var b strings.Builder
	b.WriteString("# Next steps\n\n")

	b.WriteString("## Install Dapr\n\n")
	if app.Mode == selection.ModeStandalone {
		b.WriteString("Initialize Dapr on this machine:\n\n```sh\ndapr init\n```\n\n")
	} else {
		b.WriteString("Install Dapr into your current cluster:\n\n```sh\ndapr init --kubernetes\n```\n\n")
	}

	if refs := app.Components(); len(refs) > 0 {
		b.WriteString("## Configure components\n\n")
		for _, ref := range refs {
			c, err := reg.Component(ref)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "- **%s %s** (`%s.yaml`)", kindTitles[ref.Kind], c.Name, c.ComponentName)
			if c.Advice != "" {
				b.WriteString(": " + c.Advice)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(app.Microservices) == 0 {
		return b.String()
	}

	b.WriteString("## Run\n\n")
	if app.Mode == selection.ModeStandalone {
		fmt.Fprintf(&b, "Start each service with its sidecar, loading components from `%s`:\n\n```sh\n", componentsDir)
		for _, ms := range app.Microservices {
			l, err := reg.Language(ms.Language)
			if err != nil {
				continue
			}
			run := l.RunCommand
			if run == "" {
				run = "<start command>"
			}
			fmt.Fprintf(&b, "(cd %s && dapr run --app-id %s-microservice --app-port %d --resources-path ../%s -- %s)\n",
				path.Join(app.Name, l.LanguageName), l.LanguageName, l.DefaultPort, path.Base(componentsDir), run)
		}
		b.WriteString("```\n")
		return b.String()
	}

	b.WriteString("Build and push an image for each service, then apply the manifests:\n\n```sh\n")
	for _, ms := range app.Microservices {
		l, err := reg.Language(ms.Language)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "docker build -t %s/%s:latest %s\n", app.Name, l.LanguageName, path.Join(app.Name, l.LanguageName))
	}
	var order []string
	for _, f := range opts.ApplyOrder {
		if strings.HasPrefix(f, manifestDir+"/") {
			order = append(order, f)
		}
	}
	if len(order) > 0 {
		for _, f := range order {
			fmt.Fprintf(&b, "kubectl apply -f %s\n", f)
		}
	} else {
		fmt.Fprintf(&b, "kubectl apply -f %s/\n", manifestDir)
	}
	b.WriteString("```\n")
	return b.String()
}

func dirFor(modes []plan.ModeDir, mode, fallback string) string {
	for _, m := range modes {
		if strings.EqualFold(m.Mode, mode) {
			return m.Dir
		}
	}
	return fallback
}
