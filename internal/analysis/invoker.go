// Package analysis invokes the model against an uploaded video asset. It is
// the single chokepoint between the domain services and the provider: it
// enforces the asset precondition, applies the per-call deadline, and wraps
// provider failures so callers can attribute them to the asset involved.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/scouteye/internal/asset"
	"github.com/abhisek/scouteye/internal/llm"
)

// DefaultSkillTimeout bounds a single per-skill scoring call.
const DefaultSkillTimeout = 180 * time.Second

// DefaultBiomechTimeout bounds a biomechanics extraction call, which reads
// more of the video and writes a longer answer.
const DefaultBiomechTimeout = 300 * time.Second

// InvocationError wraps a provider failure with the asset it was analysing.
type InvocationError struct {
	AssetID string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("inference against %s failed: %v", e.AssetID, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// AssetNotReadyError indicates the caller tried to analyse an asset that is
// not Active. This is a programming error in the caller, not a remote fault,
// so no request is sent.
type AssetNotReadyError struct {
	AssetID string
	State   asset.State
}

func (e *AssetNotReadyError) Error() string {
	return fmt.Sprintf("asset %s is %s, not active", e.AssetID, e.State)
}

// Invoker runs model calls against remote assets.
type Invoker struct {
	provider llm.Provider
}

// NewInvoker creates an Invoker over the given provider.
func NewInvoker(provider llm.Provider) *Invoker {
	return &Invoker{provider: provider}
}

// Infer sends prompt plus the asset's file reference to the model, bounded
// by timeout. The asset must be Active; anything else fails fast without a
// network call. A model call that succeeds at the transport level but
// carries no candidates surfaces as llm.ErrEmptyResponse inside the
// returned InvocationError, distinguishable via errors.Is.
func (inv *Invoker) Infer(ctx context.Context, a *asset.RemoteAsset, req llm.Request, timeout time.Duration) (*llm.Response, error) {
	if a == nil || a.State != asset.StateActive {
		id, state := "", asset.State("")
		if a != nil {
			id, state = a.ID, a.State
		}
		return nil, &AssetNotReadyError{AssetID: id, State: state}
	}

	req.File = a.Ref()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := inv.provider.Generate(ctx, req)
	if err != nil {
		return nil, &InvocationError{AssetID: a.ID, Err: err}
	}
	return resp, nil
}

// ModelID reports the underlying provider's model identifier.
func (inv *Invoker) ModelID() string {
	return inv.provider.ModelID()
}
