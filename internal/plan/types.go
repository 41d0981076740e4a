// Package plan computes the ordered file operations that materialize an App.
// Planning is pure: it performs no I/O.
package plan

import (
	"fmt"
	"strings"
)

// OpKind is the kind of a generation operation.
type OpKind string

const (
	// CopyDirectory copies a template directory tree to Dst.
	CopyDirectory OpKind = "copy-directory"

	// CopyManifest renders a single manifest template to Dst.
	CopyManifest OpKind = "copy-manifest"

	// DeletePath removes Dst if present.
	DeletePath OpKind = "delete-path"
)

// Vars is the data rendered into templates so that code and manifests name
// things consistently.
type Vars struct {
	AppName        string `json:"appName"`
	Mode           string `json:"mode,omitempty"`
	ServiceName    string `json:"serviceName,omitempty"`
	Language       string `json:"language,omitempty"`
	Port           int    `json:"port,omitempty"`
	StateStoreName string `json:"stateStoreName,omitempty"`
	PubSubName     string `json:"pubsubName,omitempty"`
	ComponentName  string `json:"componentName,omitempty"`
	ComponentType  string `json:"componentType,omitempty"`
}

// Operation is one step of a plan. It carries intent only.
type Operation struct {
	Kind OpKind `json:"kind"`

	// Src is the template source path; empty for DeletePath.
	Src string `json:"src,omitempty"`

	// Dst is the slash-separated destination path relative to the output root.
	Dst string `json:"dst"`

	Vars Vars `json:"vars"`
}

// String returns a one-line description used in logs and errors.
func (o Operation) String() string {
	if o.Kind == DeletePath {
		return fmt.Sprintf("%s %s", o.Kind, o.Dst)
	}
	return fmt.Sprintf("%s %s -> %s", o.Kind, o.Src, o.Dst)
}

// Plan is the ordered operation list for one app.
type Plan struct {
	AppName    string      `json:"appName"`
	Operations []Operation `json:"operations"`
}

// Count returns the number of operations of the given kind.
func (p *Plan) Count(kind OpKind) int {
	n := 0
	for _, op := range p.Operations {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Destinations returns the Dst of every copy operation in plan order.
func (p *Plan) Destinations() []string {
	var out []string
	for _, op := range p.Operations {
		if op.Kind != DeletePath {
			out = append(out, op.Dst)
		}
	}
	return out
}

// String renders the plan one operation per line.
func (p *Plan) String() string {
	var b strings.Builder
	for i, op := range p.Operations {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, op)
	}
	return b.String()
}
