package logic

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error taxonomy for the chat flow. Controllers map these onto HTTP
// statuses: ErrValidation and ErrFileReference are client errors, the
// rest are 500s except ErrNotFound (404).
var (
	ErrValidation          = errors.New("validation failed")
	ErrFileReference       = errors.New("invalid file reference")
	ErrNotFound            = errors.New("not found")
	ErrPersistence         = errors.New("persistence failed")
	ErrProvider            = errors.New("assistant provider error")
	ErrStorage             = errors.New("object storage error")
	ErrPollTimeout         = errors.New("timed out waiting for run completion")
	ErrUnsupportedRunState = errors.New("run requires tool output, which is not supported")
)

// RunFailedError reports a run that reached a terminal non-success state.
type RunFailedError struct {
	Status string
}

func (e *RunFailedError) Error() string {
	return fmt.Sprintf("run ended with status %q", e.Status)
}
