package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/scouteye/internal/store"
)

// NewService creates a Provider and its companion FileStore from
// configuration. The provider is wrapped with event logging; no retry
// middleware is applied — retry is a caller decision, never automatic.
//
// Model hot-swapping works by calling NewService again with the updated
// Config: provider handles are cheap to recreate, and requests already
// dispatched on the old handle are unaffected.
func NewService(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, FileStore, error) {
	switch cfg.Provider {
	case "gemini":
		g, err := NewGeminiProvider(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		return WithLogging(g, eventRepo), g, nil
	case "mock":
		return NewMockProvider(), NewMockFileStore(), nil
	default:
		return nil, nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
