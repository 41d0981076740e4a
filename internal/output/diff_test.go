package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff(t *testing.T) {
	styles := NoColorStyles()

	t.Run("renders no changes message", func(t *testing.T) {
		assert.Equal(t, "No changes detected.", RenderDiff(nil, nil, nil, styles))
	})

	t.Run("renders added files", func(t *testing.T) {
		result := RenderDiff([]string{"demo/deploy/go.yaml"}, nil, nil, styles)

		assert.Contains(t, result, "Added:")
		assert.Contains(t, result, "+ demo/deploy/go.yaml")
		assert.Contains(t, result, "1 added")
	})

	t.Run("renders untracked files", func(t *testing.T) {
		result := RenderDiff(nil, []string{"demo/notes.txt"}, nil, styles)

		assert.Contains(t, result, "Untracked:")
		assert.Contains(t, result, "? demo/notes.txt")
		assert.Contains(t, result, "1 untracked")
	})

	t.Run("renders modified files with indented diff", func(t *testing.T) {
		modified := []ModifiedItem{
			{Name: "demo/deploy/redis-state.yaml", Diff: "spec.type\n  - state.redis\n  + state.mongodb"},
		}
		result := RenderDiff(nil, nil, modified, styles)

		assert.Contains(t, result, "Modified:")
		assert.Contains(t, result, "~ demo/deploy/redis-state.yaml")
		assert.Contains(t, result, "    spec.type")
		assert.Contains(t, result, "1 modified")
	})

	t.Run("renders all change types", func(t *testing.T) {
		result := RenderDiff(
			[]string{"demo/go/main.go"},
			[]string{"demo/README.md"},
			[]ModifiedItem{{Name: "demo/deploy/go.yaml", Diff: "changed"}},
			styles,
		)
		assert.Contains(t, result, "1 added, 1 modified, 1 untracked")
	})
}

func TestDiffSummary(t *testing.T) {
	tests := []struct {
		name      string
		added     int
		modified  int
		untracked int
		want      string
	}{
		{"no changes", 0, 0, 0, "No changes"},
		{"only added", 1, 0, 0, "1 added"},
		{"only modified", 0, 3, 0, "3 modified"},
		{"only untracked", 0, 0, 2, "2 untracked"},
		{"all types", 1, 2, 3, "1 added, 2 modified, 3 untracked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, diffSummary(tt.added, tt.modified, tt.untracked))
		})
	}
}

func TestIndentDiff(t *testing.T) {
	t.Run("indents each line", func(t *testing.T) {
		assert.Equal(t, "    line1\n    line2\n", IndentDiff("line1\nline2", "    "))
	})

	t.Run("skips empty lines", func(t *testing.T) {
		assert.Equal(t, "  line1\n  line2\n", IndentDiff("line1\n\nline2", "  "))
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		assert.Empty(t, IndentDiff("", "    "))
	})
}
