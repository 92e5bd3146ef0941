package asset

import (
	"fmt"
	"time"

	"github.com/abhisek/scouteye/internal/llm"
)

// UploadError indicates a transport failure while uploading the asset or
// refetching its state. Fatal to the current analysis attempt.
type UploadError struct {
	Op          string // "upload" or "poll"
	DisplayName string
	Err         error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s failed for %q: %v", e.Op, e.DisplayName, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// RemoteProcessingError indicates the service marked the asset as failed.
type RemoteProcessingError struct {
	ID          string
	DisplayName string
}

func (e *RemoteProcessingError) Error() string {
	return fmt.Sprintf("remote processing failed for %q (%s)", e.DisplayName, e.ID)
}

// TimeoutError indicates the poll budget was exhausted while the asset was
// still processing.
type TimeoutError struct {
	ID          string
	DisplayName string
	Budget      time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("processing of %q (%s) did not finish within %s", e.DisplayName, e.ID, e.Budget)
}

// UnexpectedStateError indicates the asset settled in a state the manager
// does not recognize as terminal.
type UnexpectedStateError struct {
	ID          string
	DisplayName string
	State       llm.FileState
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("unexpected remote state %q for %q (%s)", e.State, e.DisplayName, e.ID)
}
