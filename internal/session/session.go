// Package session ties one analysis sitting together: the current remote
// asset, the selected age group, and the latest results. Remote assets are
// session-scoped; switching to a different local video or closing the
// session releases them.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/scouteye/internal/asset"
	"github.com/abhisek/scouteye/internal/biomech"
	"github.com/abhisek/scouteye/internal/skilleval"
)

// Session holds the state of one analysis sitting.
type Session struct {
	ID string

	mgr *asset.Manager

	mu      sync.Mutex
	current *asset.RemoteAsset

	AgeGroup skilleval.AgeGroup

	// Latest results, for rendering after the run.
	Evaluation *skilleval.Summary
	Biomech    biomech.Record
}

// New creates a session over the given asset manager.
func New(mgr *asset.Manager) *Session {
	return &Session{
		ID:       uuid.NewString(),
		mgr:      mgr,
		AgeGroup: skilleval.AgeGroup8Plus,
	}
}

// EnsureAsset returns an Active remote asset for localPath, reusing the
// session's current asset when it still serves the same local file and is
// still Active remotely. A switch to a different file releases the old
// asset before the new upload.
func (s *Session) EnsureAsset(ctx context.Context, localPath string) (*asset.RemoteAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.mgr.Ensure(ctx, s.current, localPath)
	if err != nil {
		s.current = nil
		return nil, err
	}
	s.current = a
	return a, nil
}

// Asset returns the session's current remote asset, nil if none.
func (s *Session) Asset() *asset.RemoteAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// InvalidateAsset releases the current remote asset, forcing the next
// EnsureAsset to upload fresh. Used when the caller knows the local source
// changed without a path change.
func (s *Session) InvalidateAsset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mgr.Release(ctx, s.current)
	s.current = nil
}

// Close releases the session's remote asset. Safe to call more than once.
func (s *Session) Close(ctx context.Context) {
	s.InvalidateAsset(ctx)
}
