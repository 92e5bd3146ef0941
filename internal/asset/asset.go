// Package asset owns the remote asset lifecycle: uploading a local video to
// the inference service, polling its eventually-consistent processing state
// until it is usable, and deleting it when it is superseded or no longer
// needed.
package asset

import (
	"time"

	"github.com/abhisek/scouteye/internal/llm"
)

// State is the lifecycle state of a remote asset.
type State string

const (
	StateUploading  State = "uploading"
	StateProcessing State = "processing"
	StateActive     State = "active"
	StateFailed     State = "failed"
	StateDeleted    State = "deleted"
)

// RemoteAsset tracks one uploaded binary through the remote lifecycle.
// Only the Manager mutates its State; callers treat it as read-only.
type RemoteAsset struct {
	// ID is the remote identifier, e.g. "files/abc123".
	ID string

	// DisplayName is the unique per-upload name, e.g. "upload_1712345678_run1.mp4".
	DisplayName string

	// URI and MIMEType are the inference-call reference to the asset.
	URI      string
	MIMEType string

	State     State
	CreatedAt time.Time
}

// Ref returns the file reference for an inference request.
func (a *RemoteAsset) Ref() *llm.FileRef {
	return &llm.FileRef{URI: a.URI, MIMEType: a.MIMEType}
}

func fromFileInfo(info *llm.FileInfo) *RemoteAsset {
	a := &RemoteAsset{
		ID:          info.Name,
		DisplayName: info.DisplayName,
		URI:         info.URI,
		MIMEType:    info.MIMEType,
		CreatedAt:   info.CreateTime,
	}
	switch info.State {
	case llm.FileStateActive:
		a.State = StateActive
	case llm.FileStateFailed:
		a.State = StateFailed
	default:
		a.State = StateProcessing
	}
	return a
}
