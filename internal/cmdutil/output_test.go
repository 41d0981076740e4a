package cmdutil

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daprgen/cli/internal/output"
	"github.com/daprgen/cli/internal/plan"
)

func samplePlan() *plan.Plan {
	return &plan.Plan{
		AppName: "demo",
		Operations: []plan.Operation{
			{Kind: plan.CopyDirectory, Src: "scaffold", Dst: "demo/deploy"},
			{Kind: plan.DeletePath, Dst: "demo/deploy/tmp.txt"},
		},
	}
}

func TestWriteStructured(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteStructured(&buf, output.FormatYAML, samplePlan()))
		assert.Contains(t, buf.String(), "appName: demo")
		assert.Contains(t, buf.String(), "kind: copy-directory")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteStructured(&buf, output.FormatJSON, samplePlan()))
		assert.Contains(t, buf.String(), `"appName": "demo"`)
		assert.Contains(t, buf.String(), `"kind": "delete-path"`)
	})
}

func TestPlanTable(t *testing.T) {
	p := samplePlan()
	p.Operations = append(p.Operations,
		plan.Operation{Kind: plan.CopyDirectory, Src: "languages/go", Dst: "demo/go"},
		plan.Operation{Kind: plan.CopyManifest, Src: "microservice-manifests/missing.yaml", Dst: "demo/deploy/missing.yaml"},
	)
	out := PlanTable(p, fstest.MapFS{
		"scaffold/tmp.txt":          {Data: []byte("x")},
		"languages/go/main.go.tmpl": {Data: []byte("package main")},
		"languages/go/go.mod.tmpl":  {Data: []byte("module x")},
	})

	assert.Contains(t, out, "OPERATION")
	assert.Contains(t, out, "FILES")
	assert.Contains(t, out, "copy-directory")
	assert.Contains(t, out, "demo/deploy/tmp.txt")
	assert.Contains(t, out, "go.mod, main.go")
	assert.Contains(t, out, "tmp.txt")
	assert.NotContains(t, out, "main.go.tmpl")
}

func TestFileTree(t *testing.T) {
	out := FileTree("demo", []string{
		"demo/deploy/go.yaml",
		"demo/go/main.go",
		"demo/go/Dockerfile",
	}, []string{"deploy", "components"})

	assert.Contains(t, out, "demo/")
	assert.Contains(t, out, "go.yaml")
	assert.Contains(t, out, "Manifest")
	assert.Contains(t, out, "Container image")
}
