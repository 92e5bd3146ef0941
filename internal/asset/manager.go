package asset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/scouteye/internal/llm"
)

// Config holds the lifecycle timing knobs.
type Config struct {
	// PollInterval is the sleep between state refetches.
	PollInterval time.Duration

	// Budget is the overall deadline for an upload to reach ACTIVE.
	Budget time.Duration
}

// DefaultConfig returns the production timing: poll every 15s, give up
// after 300s.
func DefaultConfig() Config {
	return Config{
		PollInterval: 15 * time.Second,
		Budget:       300 * time.Second,
	}
}

// Manager drives remote assets through upload → poll → active/failed, and
// deletes them on release. One Manager serves one session; it never shares
// assets across sessions.
type Manager struct {
	files llm.FileStore
	cfg   Config
}

// NewManager creates a Manager over the given file store.
func NewManager(files llm.FileStore, cfg Config) *Manager {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.Budget <= 0 {
		cfg.Budget = DefaultConfig().Budget
	}
	return &Manager{files: files, cfg: cfg}
}

// UploadName builds a display name that is unique per upload attempt and
// ends with the local file's base name, so a later reuse check can match
// it back to the same local source.
func UploadName(localPath string) string {
	return fmt.Sprintf("upload_%d_%s", time.Now().Unix(), filepath.Base(localPath))
}

// Acquire uploads the local file and blocks until the remote asset leaves
// PROCESSING, polling at the configured interval. On success the returned
// asset is Active and ready for inference. On any failure after a remote
// identifier was obtained, the orphaned remote file is deleted best-effort
// before the original error is returned.
func (m *Manager) Acquire(ctx context.Context, localPath, displayName string) (*RemoteAsset, error) {
	info, err := m.files.Upload(ctx, localPath, displayName)
	if err != nil {
		return nil, &UploadError{Op: "upload", DisplayName: displayName, Err: err}
	}
	a := fromFileInfo(info)

	deadline := time.Now().Add(m.cfg.Budget)
	for info.State == llm.FileStateProcessing {
		if time.Now().After(deadline) {
			m.cleanup(ctx, a)
			return nil, &TimeoutError{ID: a.ID, DisplayName: displayName, Budget: m.cfg.Budget}
		}

		select {
		case <-ctx.Done():
			m.cleanup(ctx, a)
			return nil, ctx.Err()
		case <-time.After(m.cfg.PollInterval):
		}

		info, err = m.files.Get(ctx, a.ID)
		if err != nil {
			m.cleanup(ctx, a)
			return nil, &UploadError{Op: "poll", DisplayName: displayName, Err: err}
		}
	}

	switch info.State {
	case llm.FileStateActive:
		a.State = StateActive
		return a, nil
	case llm.FileStateFailed:
		m.cleanup(ctx, a)
		return nil, &RemoteProcessingError{ID: a.ID, DisplayName: displayName}
	default:
		m.cleanup(ctx, a)
		return nil, &UnexpectedStateError{ID: a.ID, DisplayName: displayName, State: info.State}
	}
}

// Ensure returns an Active asset for localPath. When prev was uploaded from
// the same local file and a state refetch confirms it is still Active, prev
// is reused without a new upload; otherwise prev is released best-effort
// and a fresh upload is made under a new unique display name.
func (m *Manager) Ensure(ctx context.Context, prev *RemoteAsset, localPath string) (*RemoteAsset, error) {
	if m.CheckReusable(ctx, prev, filepath.Base(localPath)) {
		return prev, nil
	}
	if prev != nil {
		m.Release(ctx, prev)
	}
	return m.Acquire(ctx, localPath, UploadName(localPath))
}

// CheckReusable reports whether prev still serves the local source named
// localName. A refetch error or any non-Active state means "must re-upload".
func (m *Manager) CheckReusable(ctx context.Context, prev *RemoteAsset, localName string) bool {
	if prev == nil || localName == "" {
		return false
	}
	if !strings.HasSuffix(prev.DisplayName, localName) {
		return false
	}

	info, err := m.files.Get(ctx, prev.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not refetch %s (%s), re-uploading: %v\n",
			prev.ID, prev.DisplayName, err)
		return false
	}
	return info.State == llm.FileStateActive
}

// Release deletes the remote asset best-effort. Failures are logged and
// swallowed; they must never mask the error that triggered the release.
// A nil asset is a no-op.
func (m *Manager) Release(ctx context.Context, a *RemoteAsset) {
	if a == nil || a.State == StateDeleted {
		return
	}
	if err := m.files.Delete(ctx, a.ID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not delete remote file %s (%s): %v\n",
			a.ID, a.DisplayName, err)
		return
	}
	a.State = StateDeleted
}

// cleanup removes a remote file that never reached Active. It runs on a
// fresh context so a canceled caller can still delete its orphan.
func (m *Manager) cleanup(_ context.Context, a *RemoteAsset) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	m.Release(ctx, a)
}
