package generator

import (
	"fmt"

	oerrors "github.com/daprgen/cli/internal/errors"
	"github.com/daprgen/cli/internal/plan"
)

// GenerationFailedError reports the operation that aborted a run.
type GenerationFailedError struct {
	Op  plan.Operation
	Err error
}

// Error implements the error interface.
func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("generation failed at %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying I/O or render error.
func (e *GenerationFailedError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is match ErrGenerationFailed.
func (e *GenerationFailedError) Is(target error) bool {
	return target == oerrors.ErrGenerationFailed
}
