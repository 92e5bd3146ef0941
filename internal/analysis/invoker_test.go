package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/scouteye/internal/asset"
	"github.com/abhisek/scouteye/internal/llm"
)

func activeAsset() *asset.RemoteAsset {
	return &asset.RemoteAsset{
		ID:          "files/abc123",
		DisplayName: "upload_100_run1.mp4",
		URI:         "https://mock.example/files/abc123",
		MIMEType:    "video/mp4",
		State:       asset.StateActive,
	}
}

func TestInfer_AttachesFileRef(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "4"})
	inv := NewInvoker(mock)

	a := activeAsset()
	req := llm.Request{Messages: []llm.Message{{Role: "user", Content: "score it"}}}

	resp, err := inv.Infer(context.Background(), a, req, time.Second)
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	if resp.Text != "4" {
		t.Errorf("text = %q, want 4", resp.Text)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	file := mock.Calls[0].File
	if file == nil || file.URI != a.URI || file.MIMEType != a.MIMEType {
		t.Errorf("file ref = %+v, want URI %s", file, a.URI)
	}
}

func TestInfer_RejectsNonActiveAsset(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "unreachable"})
	inv := NewInvoker(mock)

	a := activeAsset()
	a.State = asset.StateDeleted

	_, err := inv.Infer(context.Background(), a, llm.Request{}, time.Second)
	var nr *AssetNotReadyError
	if !errors.As(err, &nr) {
		t.Fatalf("error = %v, want *AssetNotReadyError", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider was called %d times, want 0", mock.CallCount())
	}
}

func TestInfer_RejectsNilAsset(t *testing.T) {
	mock := llm.NewMockProvider()
	inv := NewInvoker(mock)

	_, err := inv.Infer(context.Background(), nil, llm.Request{}, time.Second)
	var nr *AssetNotReadyError
	if !errors.As(err, &nr) {
		t.Fatalf("error = %v, want *AssetNotReadyError", err)
	}
}

func TestInfer_EmptyResponseIsDistinguishable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: llm.ErrEmptyResponse})
	inv := NewInvoker(mock)

	_, err := inv.Infer(context.Background(), activeAsset(), llm.Request{}, time.Second)
	if !errors.Is(err, llm.ErrEmptyResponse) {
		t.Fatalf("error = %v, want wrapped ErrEmptyResponse", err)
	}

	var ie *InvocationError
	if !errors.As(err, &ie) {
		t.Fatalf("error = %v, want *InvocationError", err)
	}
	if ie.AssetID != "files/abc123" {
		t.Errorf("asset id = %q, want files/abc123", ie.AssetID)
	}
}

func TestInfer_SingleAttempt(t *testing.T) {
	// Failures must not be retried; the caller decides what to do.
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{RetryAfter: time.Second}},
		llm.MockResponse{Text: "should not be reached"},
	)
	inv := NewInvoker(mock)

	_, err := inv.Infer(context.Background(), activeAsset(), llm.Request{}, time.Second)
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("error = %v, want wrapped *ErrRateLimit", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider was called %d times, want exactly 1", mock.CallCount())
	}
}
