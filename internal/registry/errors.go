package registry

import (
	"fmt"
	"strings"

	oerrors "github.com/daprgen/cli/internal/errors"
)

// UnknownTemplateKeyError is returned when a language or component has no
// registry entry.
type UnknownTemplateKeyError struct {
	// Kind is "language" or a component kind.
	Kind string

	// Key is the value that failed to resolve.
	Key string

	// Known lists the registered keys of the same kind.
	Known []string
}

// Error implements the error interface.
func (e *UnknownTemplateKeyError) Error() string {
	msg := fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
	if len(e.Known) > 0 {
		msg += " (known: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

// Is makes errors.Is match ErrUnknownTemplateKey.
func (e *UnknownTemplateKeyError) Is(target error) bool {
	return target == oerrors.ErrUnknownTemplateKey
}
