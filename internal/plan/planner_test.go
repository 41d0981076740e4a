package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/registry"
	"github.com/daprgen/cli/internal/selection"
)

func buildApp(t *testing.T, a selection.Answers) *selection.App {
	t.Helper()
	app, err := selection.Build(a, "")
	require.NoError(t, err)
	return app
}

func TestPlan_ScenarioA(t *testing.T) {
	app := buildApp(t, selection.Answers{
		Name:       "demo",
		Languages:  []string{"Go"},
		StateStore: "Redis",
		PubSub:     "None",
	})

	p, err := New(registry.Default()).Plan(app)
	require.NoError(t, err)

	type step struct {
		kind OpKind
		src  string
		dst  string
	}
	want := []step{
		{CopyDirectory, "scaffold", "demo/deploy"},
		{CopyDirectory, "scaffold", "demo/components"},
		{CopyDirectory, "languages/go", "demo/go"},
		{CopyManifest, "microservice-manifests/go.yaml", "demo/deploy/go.yaml"},
		{CopyManifest, "components/state/redis-state.yaml", "demo/deploy/redis-state.yaml"},
		{CopyManifest, "components/state/redis-state.yaml", "demo/components/redis-state.yaml"},
		{DeletePath, "", "demo/deploy/tmp.txt"},
		{DeletePath, "", "demo/components/tmp.txt"},
	}

	got := make([]step, 0, len(p.Operations))
	for _, op := range p.Operations {
		got = append(got, step{op.Kind, op.Src, op.Dst})
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "demo", p.AppName)
}

func TestPlan_ScenarioB(t *testing.T) {
	app := buildApp(t, selection.Answers{Name: "demo", StateStore: "None", PubSub: "None"})

	p, err := New(registry.Default()).Plan(app)
	require.NoError(t, err)

	assert.Equal(t, []string{"demo/deploy", "demo/components"}, p.Destinations())
	assert.Equal(t, 0, p.Count(CopyManifest))
	assert.Equal(t, 2, p.Count(CopyDirectory))
	assert.Equal(t, 2, p.Count(DeletePath))
}

func TestPlan_ScenarioC(t *testing.T) {
	app := buildApp(t, selection.Answers{Name: "demo", Languages: []string{"Go", "Rust"}})

	p, err := New(registry.Default()).Plan(app)
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, oerrors.ErrUnknownTemplateKey)
	assert.Contains(t, err.Error(), `"Rust"`)
}

func TestPlan_UnknownComponent(t *testing.T) {
	tests := []struct {
		name    string
		answers selection.Answers
	}{
		{"state store", selection.Answers{Name: "demo", StateStore: "MongoDB"}},
		{"pubsub", selection.Answers{Name: "demo", PubSub: "Kafka"}},
		{"binding", selection.Answers{Name: "demo", Bindings: []string{"Cron", "SMTP"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(registry.Default()).Plan(buildApp(t, tt.answers))
			assert.Nil(t, p)
			assert.ErrorIs(t, err, oerrors.ErrUnknownTemplateKey)
		})
	}
}

func TestPlan_Vars(t *testing.T) {
	app := buildApp(t, selection.Answers{
		Name:       "shop",
		Mode:       "Standalone",
		Languages:  []string{"Python"},
		StateStore: "Redis",
		PubSub:     "NATS",
		Bindings:   []string{"Cron"},
	})

	p, err := New(registry.Default()).Plan(app)
	require.NoError(t, err)

	for _, op := range p.Operations {
		assert.Equal(t, "shop", op.Vars.AppName, op.String())
		assert.Equal(t, "Standalone", op.Vars.Mode, op.String())
		assert.Equal(t, "redis-state", op.Vars.StateStoreName, op.String())
		assert.Equal(t, "nats-pubsub", op.Vars.PubSubName, op.String())
	}

	code := p.Operations[2]
	require.Equal(t, "shop/python", code.Dst)
	assert.Equal(t, "python", code.Vars.ServiceName)
	assert.Equal(t, "Python", code.Vars.Language)
	assert.Equal(t, 5001, code.Vars.Port)
	assert.Equal(t, code.Vars, p.Operations[3].Vars, "code and manifest share naming")

	cron := p.Operations[len(p.Operations)-3]
	require.Equal(t, "shop/components/cron-binding.yaml", cron.Dst)
	assert.Equal(t, "cron-binding", cron.Vars.ComponentName)
	assert.Equal(t, "bindings.cron", cron.Vars.ComponentType)
	assert.Empty(t, cron.Vars.ServiceName)
}

func TestPlan_Order(t *testing.T) {
	app := buildApp(t, selection.Answers{
		Name:       "demo",
		Languages:  []string{"TypeScript", "C#"},
		StateStore: "Cassandra",
		PubSub:     "RabbitMQ",
		Bindings:   []string{"HTTP", "Kafka"},
	})

	p, err := New(registry.Default()).Plan(app)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"demo/deploy",
		"demo/components",
		"demo/typescript",
		"demo/deploy/typescript.yaml",
		"demo/csharp",
		"demo/deploy/csharp.yaml",
		"demo/deploy/cassandra-state.yaml",
		"demo/components/cassandra-state.yaml",
		"demo/deploy/rabbitmq-pubsub.yaml",
		"demo/components/rabbitmq-pubsub.yaml",
		"demo/deploy/http-binding.yaml",
		"demo/components/http-binding.yaml",
		"demo/deploy/kafka-binding.yaml",
		"demo/components/kafka-binding.yaml",
	}, p.Destinations())
}

// powerset returns every subset of items, each in the original order.
func powerset[T any](items []T) [][]T {
	out := [][]T{nil}
	for _, item := range items {
		n := len(out)
		for i := 0; i < n; i++ {
			subset := append(append([]T(nil), out[i]...), item)
			out = append(out, subset)
		}
	}
	return out
}

func names(tmpls []registry.ComponentTemplate) []string {
	out := []string{"None"}
	for _, c := range tmpls {
		out = append(out, c.Name)
	}
	return out
}

// TestPlan_ExhaustiveRegistry enumerates every selection the built-in
// registry allows and checks operation counts and destination uniqueness.
func TestPlan_ExhaustiveRegistry(t *testing.T) {
	reg := registry.Default()
	planner := New(reg)
	modeDirs := len(DefaultModes())

	var langKeys []string
	for _, l := range reg.Languages() {
		langKeys = append(langKeys, string(l.Language))
	}
	var bindingKeys []string
	for _, c := range reg.Components(registry.KindBindings) {
		bindingKeys = append(bindingKeys, c.Name)
	}

	count := 0
	for _, langs := range powerset(langKeys) {
		for _, state := range names(reg.Components(registry.KindState)) {
			for _, pubsub := range names(reg.Components(registry.KindPubSub)) {
				for _, binds := range powerset(bindingKeys) {
					app := buildApp(t, selection.Answers{
						Name:       "demo",
						Languages:  langs,
						StateStore: state,
						PubSub:     pubsub,
						Bindings:   binds,
					})

					p, err := planner.Plan(app)
					require.NoError(t, err)

					components := len(binds)
					if state != "None" {
						components++
					}
					if pubsub != "None" {
						components++
					}

					label := fmt.Sprintf("%v/%s/%s/%v", langs, state, pubsub, binds)
					require.Equal(t, modeDirs+len(langs), p.Count(CopyDirectory), label)
					require.Equal(t, len(langs)+modeDirs*components, p.Count(CopyManifest), label)
					require.Equal(t, modeDirs, p.Count(DeletePath), label)

					seen := make(map[string]bool)
					for _, dst := range p.Destinations() {
						require.False(t, seen[dst], "%s: duplicate destination %s", label, dst)
						seen[dst] = true
					}
					count++
				}
			}
		}
	}
	assert.Equal(t, 32*4*5*16, count)
}

func TestPlan_WithModes(t *testing.T) {
	app := buildApp(t, selection.Answers{Name: "demo", Languages: []string{"Go"}, PubSub: "NATS"})

	t.Run("three modes", func(t *testing.T) {
		planner := New(registry.Default(), WithModes(
			ModeDir{Mode: "kubernetes", Dir: "k8s"},
			ModeDir{Mode: "standalone", Dir: "components"},
			ModeDir{Mode: "compose", Dir: "compose"},
		))
		p, err := planner.Plan(app)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"demo/k8s",
			"demo/components",
			"demo/compose",
			"demo/go",
			"demo/k8s/go.yaml",
			"demo/k8s/nats-pubsub.yaml",
			"demo/components/nats-pubsub.yaml",
			"demo/compose/nats-pubsub.yaml",
		}, p.Destinations())
		assert.Equal(t, 3, p.Count(DeletePath))
	})

	t.Run("shared directory emitted once", func(t *testing.T) {
		planner := New(registry.Default(), WithModes(
			ModeDir{Mode: "kubernetes", Dir: "deploy"},
			ModeDir{Mode: "standalone", Dir: "deploy"},
		))
		p, err := planner.Plan(app)
		require.NoError(t, err)
		assert.Equal(t, []string{"demo/deploy", "demo/go", "demo/deploy/go.yaml", "demo/deploy/nats-pubsub.yaml"}, p.Destinations())
	})

	t.Run("empty keeps defaults", func(t *testing.T) {
		planner := New(registry.Default(), WithModes())
		assert.Equal(t, DefaultModes(), planner.Modes())
	})

	t.Run("invalid dir", func(t *testing.T) {
		planner := New(registry.Default(), WithModes(ModeDir{Mode: "kubernetes", Dir: "../deploy"}))
		p, err := planner.Plan(app)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})
}

func TestPlan_DuplicateDestination(t *testing.T) {
	reg, err := registry.Default().Merge(registry.Overlay{
		Languages: []registry.LanguageTemplate{{
			Language:             "Deploy Lang",
			LanguageName:         "deploy",
			CodeTemplatePath:     "languages/deploy",
			ManifestTemplatePath: "microservice-manifests/deploy.yaml",
			DefaultPort:          8000,
		}},
	})
	require.NoError(t, err)

	app := buildApp(t, selection.Answers{Name: "demo", Languages: []string{"Deploy Lang"}})
	p, err := New(reg).Plan(app)
	assert.Nil(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrDuplicateDestination)
	assert.True(t, oerrors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "demo/deploy")
}

func TestPlan_String(t *testing.T) {
	app := buildApp(t, selection.Answers{Name: "demo"})
	p, err := New(registry.Default()).Plan(app)
	require.NoError(t, err)

	out := p.String()
	assert.Contains(t, out, " 1. copy-directory scaffold -> demo/deploy")
	assert.Contains(t, out, " 4. delete-path demo/components/tmp.txt")
}
