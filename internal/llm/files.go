package llm

import (
	"context"
	"time"
)

// FileState is the remote processing state of an uploaded file.
type FileState string

const (
	FileStateProcessing  FileState = "PROCESSING"
	FileStateActive      FileState = "ACTIVE"
	FileStateFailed      FileState = "FAILED"
	FileStateUnspecified FileState = "STATE_UNSPECIFIED"
)

// FileInfo describes a remote file as reported by the service.
type FileInfo struct {
	// Name is the remote identifier, e.g. "files/abc123".
	Name        string
	DisplayName string
	URI         string
	MIMEType    string
	State       FileState
	CreateTime  time.Time
}

// FileStore is the remote file lifecycle surface: upload a local binary,
// refetch its processing state, delete it. Uploaded files start in
// PROCESSING and become ACTIVE (usable) or FAILED on the service's own
// schedule; callers poll Get until the state settles.
type FileStore interface {
	// Upload sends the file at path to the service under displayName and
	// returns the remote descriptor. The returned state is usually
	// PROCESSING; it is never ACTIVE immediately for video.
	Upload(ctx context.Context, path, displayName string) (*FileInfo, error)

	// Get refetches the current descriptor for a remote file by name.
	Get(ctx context.Context, name string) (*FileInfo, error)

	// Delete removes the remote file.
	Delete(ctx context.Context, name string) error
}
