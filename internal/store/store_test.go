package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.DB())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, tt.pragma)
	}
}

func TestEventRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		SessionID:    "sess-1",
		Provider:     "gemini",
		Model:        "gemini-2.5-pro",
		Purpose:      "skill-score",
		InputTokens:  1200,
		OutputTokens: 4,
		LatencyMs:    2500,
		Success:      true,
		RequestBody:  "score it",
		ResponseBody: "4",
	})
	require.NoError(t, err)

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-pro",
		Purpose:      "biomech-extract",
		Success:      false,
		ErrorMessage: "model returned no candidates",
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.Equal(t, "biomech-extract", events[0].Purpose)
	assert.False(t, events[0].Success)

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "skill-score"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "sess-1", filtered[0].SessionID)
	assert.Equal(t, 1200, filtered[0].InputTokens)

	e, err := repo.GetLLMEvent(ctx, filtered[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "4", e.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-pro",
			Purpose:      "skill-score",
			InputTokens:  100,
			OutputTokens: 10,
			LatencyMs:    1000,
			Success:      true,
		}))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 1)
	assert.Equal(t, 3, byPurpose[0].Calls)
	assert.Equal(t, 300, byPurpose[0].InputTokens)
	assert.Equal(t, int64(1000), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, "gemini-2.5-pro", byModel[0].Model)
}
