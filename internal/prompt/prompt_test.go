package prompt

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daprgen/cli/internal/registry"
	"github.com/daprgen/cli/internal/selection"
)

// scriptedUI answers prompts from fixed values and records the titles asked.
type scriptedUI struct {
	input  string
	pick   map[string]string
	multi  map[string][]string
	asked  []string
	failOn string
}

func (s *scriptedUI) record(title string) error {
	s.asked = append(s.asked, title)
	if s.failOn != "" && title == s.failOn {
		return ErrCancelled
	}
	return nil
}

func (s *scriptedUI) Input(title string, value *string, validate func(string) error) error {
	if err := s.record(title); err != nil {
		return err
	}
	if validate != nil {
		if err := validate(s.input); err != nil {
			return err
		}
	}
	*value = s.input
	return nil
}

func (s *scriptedUI) Select(title string, options []string, current *string) error {
	if err := s.record(title); err != nil {
		return err
	}
	if v, ok := s.pick[title]; ok {
		*current = v
	}
	return nil
}

func (s *scriptedUI) MultiSelect(title string, options []string, selected *[]string) error {
	if err := s.record(title); err != nil {
		return err
	}
	if v, ok := s.multi[title]; ok {
		*selected = v
	}
	return nil
}

const (
	titleName      = "What would you like to call your dapr project?"
	titleMode      = "Are you running dapr in Kubernetes or in standalone mode?"
	titleLanguages = "What languages would you like to scaffold microservices for?"
	titleState     = "What state store (if any) would you like your app to use?"
	titlePubSub    = "What pub/sub (if any) would you like your app to use?"
	titleBindings  = "What bindings would you like your app to use?"
)

func TestAsk_AllQuestions(t *testing.T) {
	ui := &scriptedUI{
		input: "demo",
		pick: map[string]string{
			titleMode:  "Standalone",
			titleState: "Redis",
		},
		multi: map[string][]string{
			titleLanguages: {"Go", "Python"},
			titleBindings:  {"Cron"},
		},
	}

	got, err := Ask(ui, registry.Default(), selection.Answers{})
	require.NoError(t, err)

	assert.Equal(t, []string{titleName, titleMode, titleLanguages, titleState, titlePubSub, titleBindings}, ui.asked)
	assert.Equal(t, selection.Answers{
		Name:       "demo",
		Mode:       "Standalone",
		Languages:  []string{"Go", "Python"},
		StateStore: "Redis",
		PubSub:     selection.NoneSentinel,
		Bindings:   []string{"Cron"},
	}, got)

	app, err := selection.Build(got, "")
	require.NoError(t, err)
	assert.Equal(t, selection.ModeStandalone, app.Mode)
	assert.Nil(t, app.PubSub)
}

func TestAsk_SkipsAnswered(t *testing.T) {
	ui := &scriptedUI{}
	seed := selection.Answers{
		Name:       "demo",
		Mode:       "Kubernetes",
		Languages:  []string{"Go"},
		StateStore: "None",
		PubSub:     "NATS",
		Bindings:   []string{},
	}

	got, err := Ask(ui, registry.Default(), seed)
	require.NoError(t, err)
	assert.Empty(t, ui.asked)
	assert.Equal(t, seed, got)
}

func TestAsk_Cancelled(t *testing.T) {
	ui := &scriptedUI{input: "demo", failOn: titleLanguages}

	_, err := Ask(ui, registry.Default(), selection.Answers{})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestAsk_InvalidName(t *testing.T) {
	ui := &scriptedUI{input: "Not Valid"}

	_, err := Ask(ui, registry.Default(), selection.Answers{})
	assert.Error(t, err)
}

func TestComponentOptions(t *testing.T) {
	reg := registry.Default()

	assert.Equal(t, []string{"Redis", "Azure CosmosDB", "Cassandra", "None"}, componentOptions(reg, registry.KindState, true))
	assert.NotContains(t, componentOptions(reg, registry.KindBindings, false), "None")
}

func TestHuhUI_RequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}

	var v string
	assert.ErrorIs(t, ui.Select("pick", []string{"a"}, &v), ErrNotInteractive)
}

func TestHuhUI_MapsAbort(t *testing.T) {
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = func(*huh.Form) error { return huh.ErrUserAborted }

	ui := &HuhUI{isTerminal: func() bool { return true }}

	var v []string
	err := ui.MultiSelect("pick", []string{"a", "b"}, &v)
	assert.True(t, errors.Is(err, ErrCancelled))
}

func TestHuhUI_RunsForm(t *testing.T) {
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })

	ran := false
	runFormFunc = func(*huh.Form) error { ran = true; return nil }

	ui := &HuhUI{isTerminal: func() bool { return true }}

	var v string
	require.NoError(t, ui.Input("name", &v, validateName))
	assert.True(t, ran)
}
