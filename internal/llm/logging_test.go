package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/scouteye/internal/store"
)

type captureRepo struct {
	store.NopEventRepo
	events []store.LLMRequestEventData
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func TestLoggingProvider_RecordsEvent(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  "4",
		Usage: Usage{InputTokens: 1200, OutputTokens: 4},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "skill-score")
	ctx = WithSession(ctx, "sess-42")

	_, err := p.Generate(ctx, Request{
		Messages: []Message{{Role: RoleUser, Content: "score it"}},
		File:     &FileRef{URI: "https://files.example/abc", MIMEType: "video/mp4"},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "skill-score" {
		t.Errorf("purpose = %q, want skill-score", e.Purpose)
	}
	if e.SessionID != "sess-42" {
		t.Errorf("session = %q, want sess-42", e.SessionID)
	}
	if !e.Success || e.OutputTokens != 4 {
		t.Errorf("event = %+v, want success with 4 output tokens", e)
	}
	if e.ResponseBody != "4" {
		t.Errorf("response body = %q, want 4", e.ResponseBody)
	}
	// The file reference shows up in the serialized request.
	if want := "[file: https://files.example/abc (video/mp4)]"; !strings.Contains(e.RequestBody, want) {
		t.Errorf("request body missing file line:\n%s", e.RequestBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &captureRepo{}
	p := WithLogging(NewMockProvider(MockResponse{Err: ErrEmptyResponse}), repo)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "score it"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("failed call recorded as success")
	}
	if e.ErrorMessage == "" {
		t.Error("failed call has no error message")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown fallback", e.Purpose)
	}
}
