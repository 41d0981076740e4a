// Package diff compares a would-be generation with an existing project.
package diff

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DefaultMaxLines caps unified diffs of non-YAML files.
const DefaultMaxLines = 80

// Result represents a diff between generated and existing files.
type Result struct {
	// Added files would be created.
	Added []string

	// Modified files exist with different content.
	Modified []ModifiedFile

	// Unchanged files exist with identical content.
	Unchanged []string

	// Untracked files exist in the project but are not generated.
	// Generation leaves them in place; they still count as a difference.
	Untracked []string
}

// ModifiedFile represents a file with changes.
type ModifiedFile struct {
	// Path is the project-relative file path.
	Path string

	// Diff is the rendered diff output.
	Diff string
}

// IsEmpty reports whether the project on disk matches a fresh generation
// exactly: nothing added, modified or untracked.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Modified) == 0 && len(r.Untracked) == 0
}

// Summary returns a summary string of changes.
func (r *Result) Summary() string {
	if r.IsEmpty() {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Modified) > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", len(r.Modified)))
	}
	if len(r.Untracked) > 0 {
		parts = append(parts, fmt.Sprintf("%d untracked", len(r.Untracked)))
	}
	return strings.Join(parts, ", ")
}

// Options configures the comparison.
type Options struct {
	// UseColor enables colorized YAML diff output.
	UseColor bool

	// MaxLines truncates unified diffs; zero means DefaultMaxLines.
	MaxLines int
}

// Compare checks every generated file against the existing project. Both
// filesystems share the same layout: files are relative paths such as
// "demo/deploy/go.yaml" and root is the project directory in existing.
func Compare(generated billy.Filesystem, files []string, existing billy.Filesystem, root string, opts Options) (*Result, error) {
	result := &Result{}
	generatedSet := make(map[string]bool, len(files))

	for _, f := range files {
		generatedSet[f] = true

		want, err := util.ReadFile(generated, f)
		if err != nil {
			return nil, fmt.Errorf("reading generated %s: %w", f, err)
		}

		have, err := util.ReadFile(existing, f)
		if err != nil {
			if os.IsNotExist(err) {
				result.Added = append(result.Added, f)
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}

		if bytes.Equal(have, want) {
			result.Unchanged = append(result.Unchanged, f)
			continue
		}

		d, err := compareFile(f, have, want, opts)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", f, err)
		}
		result.Modified = append(result.Modified, ModifiedFile{Path: f, Diff: d})
	}

	untracked, err := untrackedFiles(existing, root, generatedSet)
	if err != nil {
		return nil, err
	}
	result.Untracked = untracked

	return result, nil
}

func untrackedFiles(existing billy.Filesystem, root string, generated map[string]bool) ([]string, error) {
	if _, err := existing.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var out []string
	err := util.Walk(existing, root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel := filepath.ToSlash(p)
		if !generated[rel] {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(out)
	return out, nil
}

// compareFile diffs YAML semantically with dyff and everything else as a
// unified diff. YAML that differs only in formatting falls back to the
// unified diff so that a byte difference is never reported as empty.
func compareFile(name string, have, want []byte, opts Options) (string, error) {
	if ext := path.Ext(name); ext == ".yaml" || ext == ".yml" {
		d, err := diffYAML(have, want, opts.UseColor)
		if err == nil && d != "" {
			return d, nil
		}
	}
	return unified(name, string(have), string(want), opts.MaxLines), nil
}

// diffYAML computes a YAML diff using dyff.
func diffYAML(have, want []byte, useColor bool) (string, error) {
	from, err := parseYAMLInput("existing", have)
	if err != nil {
		return "", fmt.Errorf("parsing existing YAML: %w", err)
	}
	to, err := parseYAMLInput("generated", want)
	if err != nil {
		return "", fmt.Errorf("parsing generated YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// unified renders a unified diff truncated to maxLines.
func unified(name, from, to string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	d := strings.TrimRight(udiff.Unified(name+" (existing)", name+" (generated)", from, to), "\n")
	if d == "" {
		return ""
	}

	lines := strings.Split(d, "\n")
	if len(lines) <= maxLines {
		return d
	}
	return strings.Join(lines[:maxLines], "\n") +
		fmt.Sprintf("\n... (%d more lines)", len(lines)-maxLines)
}
