// Package generator applies a plan to a destination filesystem.
package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/plan"
	"github.com/daprgen/cli/internal/templates"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Generator executes plans. Template sources are read from src and output
// is written to dst; plan destinations are relative to the root of dst.
type Generator struct {
	src fs.FS
	dst billy.Filesystem
}

// New creates a generator.
func New(src fs.FS, dst billy.Filesystem) *Generator {
	return &Generator{src: src, dst: dst}
}

// Result describes what a run left in the destination.
type Result struct {
	// Files are the files written and still present, sorted.
	Files []string

	// Dirs are the directories created by copy operations, sorted.
	Dirs []string
}

// Execute applies the operations in order. The first failure aborts the
// run with a *GenerationFailedError; output already written stays in place.
func (g *Generator) Execute(p *plan.Plan) (*Result, error) {
	log := output.ProjectLogger(p.AppName)
	files := make(map[string]bool)
	dirs := make(map[string]bool)

	for _, op := range p.Operations {
		log.Debug("applying operation", "kind", op.Kind, "src", op.Src, "dst", op.Dst)

		var err error
		switch op.Kind {
		case plan.CopyDirectory:
			err = g.copy(op, false, files, dirs)
		case plan.CopyManifest:
			err = g.copy(op, true, files, dirs)
		case plan.DeletePath:
			err = g.remove(op.Dst, files)
		default:
			err = fmt.Errorf("unknown operation kind %q", op.Kind)
		}
		if err != nil {
			return nil, &GenerationFailedError{Op: op, Err: err}
		}
	}

	return &Result{Files: sortedKeys(files), Dirs: sortedKeys(dirs)}, nil
}

// copy copies op.Src to op.Dst. A directory source is walked and its .tmpl
// files rendered; a file source is copied to op.Dst itself and rendered when
// alwaysRender is set or it carries the template suffix.
func (g *Generator) copy(op plan.Operation, alwaysRender bool, files, dirs map[string]bool) error {
	info, err := fs.Stat(g.src, op.Src)
	if err != nil {
		return fmt.Errorf("reading template source: %w", err)
	}

	renderer := templates.NewRenderer(op.Vars)

	if !info.IsDir() {
		if err := g.writeFile(op.Src, op.Dst, alwaysRender || templates.IsTemplate(op.Src), renderer); err != nil {
			return err
		}
		files[op.Dst] = true
		return nil
	}

	return fs.WalkDir(g.src, op.Src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, op.Src), "/")
		target := path.Join(op.Dst, templates.TargetName(rel))

		if d.IsDir() {
			if err := g.dst.MkdirAll(target, dirMode); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			dirs[target] = true
			return nil
		}

		if err := g.writeFile(p, target, alwaysRender || templates.IsTemplate(p), renderer); err != nil {
			return err
		}
		files[target] = true
		return nil
	})
}

func (g *Generator) writeFile(src, dst string, render bool, renderer *templates.Renderer) error {
	content, err := fs.ReadFile(g.src, src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	if render {
		content, err = renderer.RenderFile(src, content)
		if err != nil {
			return err
		}
	}

	if err := g.dst.MkdirAll(path.Dir(dst), dirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w", path.Dir(dst), err)
	}
	if err := util.WriteFile(g.dst, dst, content, fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	output.Debug("wrote file", "path", dst)
	return nil
}

// remove deletes p and everything under it. A missing path is not an error.
func (g *Generator) remove(p string, files map[string]bool) error {
	if err := util.RemoveAll(g.dst, p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", p, err)
	}
	for f := range files {
		if f == p || strings.HasPrefix(f, p+"/") {
			delete(files, f)
		}
	}
	return nil
}

// CheckTarget validates the project directory before generation. An
// existing non-empty directory is only accepted with force.
func CheckTarget(dst billy.Filesystem, dir string, force bool) error {
	info, err := dst.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return oerrors.NewValidationError(fmt.Sprintf("%s exists and is not a directory", dir), dir, "", "")
	}

	entries, err := dst.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 && !force {
		return oerrors.NewValidationError(
			fmt.Sprintf("directory %s already exists and is not empty", dir),
			dir, "", "use --force to generate into it; generated files are overwritten, others are kept",
		)
	}

	return nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
