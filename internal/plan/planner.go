package plan

import (
	"fmt"
	"path"

	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/registry"
	"github.com/daprgen/cli/internal/selection"
)

// Planner turns an App into a Plan using a registry.
type Planner struct {
	reg   *registry.Registry
	modes []ModeDir
}

// Option configures a Planner.
type Option func(*Planner)

// WithModes sets the deployment modes components are emitted for. An empty
// list keeps the defaults.
func WithModes(modes ...ModeDir) Option {
	return func(p *Planner) {
		if len(modes) > 0 {
			p.modes = append([]ModeDir(nil), modes...)
		}
	}
}

// New creates a planner.
func New(reg *registry.Registry, opts ...Option) *Planner {
	p := &Planner{reg: reg, modes: DefaultModes()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Modes returns the deployment modes in effect.
func (p *Planner) Modes() []ModeDir {
	return append([]ModeDir(nil), p.modes...)
}

// Plan computes the operations for app:
//
//  1. one scaffold copy per distinct mode directory
//  2. per microservice, its code directory then its manifest
//  3. state store then pub/sub, one manifest per mode directory
//  4. bindings in order, one manifest per mode directory
//  5. removal of the scaffold placeholder from every mode directory
//
// All registry lookups happen first; on any error no plan is returned.
func (p *Planner) Plan(app *selection.App) (*Plan, error) {
	if err := ValidateModes(p.modes); err != nil {
		return nil, err
	}

	langs, err := p.resolveLanguages(app)
	if err != nil {
		return nil, err
	}
	comps, err := p.resolveComponents(app)
	if err != nil {
		return nil, err
	}

	dirs := Dirs(p.modes)
	serviceDir := dirs[0]
	scaffold := p.reg.Scaffold()

	base := Vars{AppName: app.Name, Mode: string(app.Mode)}
	for _, c := range comps {
		switch c.Kind {
		case registry.KindState:
			base.StateStoreName = c.ComponentName
		case registry.KindPubSub:
			base.PubSubName = c.ComponentName
		}
	}

	b := &builder{plan: &Plan{AppName: app.Name}, seen: make(map[string]string)}

	for _, dir := range dirs {
		b.add(Operation{
			Kind: CopyDirectory,
			Src:  scaffold.Source,
			Dst:  path.Join(app.Name, dir),
			Vars: base,
		})
	}

	for _, l := range langs {
		vars := base
		vars.ServiceName = l.LanguageName
		vars.Language = string(l.Language)
		vars.Port = l.DefaultPort

		b.add(Operation{
			Kind: CopyDirectory,
			Src:  l.CodeTemplatePath,
			Dst:  path.Join(app.Name, l.LanguageName),
			Vars: vars,
		})
		b.add(Operation{
			Kind: CopyManifest,
			Src:  l.ManifestTemplatePath,
			Dst:  path.Join(app.Name, serviceDir, l.LanguageName+".yaml"),
			Vars: vars,
		})
	}

	for _, c := range comps {
		vars := base
		vars.ComponentName = c.ComponentName
		vars.ComponentType = c.ComponentType

		for _, dir := range dirs {
			b.add(Operation{
				Kind: CopyManifest,
				Src:  c.ManifestTemplatePath,
				Dst:  path.Join(app.Name, dir, c.ComponentName+".yaml"),
				Vars: vars,
			})
		}
	}

	for _, dir := range dirs {
		b.plan.Operations = append(b.plan.Operations, Operation{
			Kind: DeletePath,
			Dst:  path.Join(app.Name, dir, scaffold.Placeholder),
			Vars: base,
		})
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.plan, nil
}

func (p *Planner) resolveLanguages(app *selection.App) ([]registry.LanguageTemplate, error) {
	out := make([]registry.LanguageTemplate, 0, len(app.Microservices))
	for _, ms := range app.Microservices {
		l, err := p.reg.Language(ms.Language)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// resolveComponents returns templates in generation order: state store,
// pub/sub, bindings.
func (p *Planner) resolveComponents(app *selection.App) ([]registry.ComponentTemplate, error) {
	refs := app.Components()
	out := make([]registry.ComponentTemplate, 0, len(refs))
	for _, ref := range refs {
		c, err := p.reg.Component(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// builder appends operations and records the first destination collision.
type builder struct {
	plan *Plan
	seen map[string]string
	err  error
}

func (b *builder) add(op Operation) {
	if prev, ok := b.seen[op.Dst]; ok {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %s is written by both %q and %q",
				oerrors.ErrDuplicateDestination, op.Dst, prev, op.Src)
		}
		return
	}
	b.seen[op.Dst] = op.Src
	b.plan.Operations = append(b.plan.Operations, op)
}
