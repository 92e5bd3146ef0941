package asset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/scouteye/internal/llm"
)

func testConfig() Config {
	return Config{PollInterval: time.Millisecond, Budget: 50 * time.Millisecond}
}

func TestAcquire_BecomesActive(t *testing.T) {
	fs := llm.NewMockFileStore()
	m := NewManager(fs, testConfig())

	a, err := acquireWithScript(t, m, fs, "run1.mp4",
		llm.FileStateProcessing, llm.FileStateProcessing, llm.FileStateActive)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if a.State != StateActive {
		t.Errorf("state = %q, want %q", a.State, StateActive)
	}
	if a.ID == "" || a.URI == "" {
		t.Errorf("asset missing remote identity: %+v", a)
	}
	if len(fs.Deleted) != 0 {
		t.Errorf("successful acquire should not delete anything, deleted %v", fs.Deleted)
	}
}

// acquireWithScript uploads via the manager after arranging the scripted
// state sequence for the file the upload will create.
func acquireWithScript(t *testing.T, m *Manager, fs *llm.MockFileStore, local string, states ...llm.FileState) (*RemoteAsset, error) {
	t.Helper()

	// The mock reports PROCESSING until a script is attached, and the
	// manager only polls after its first interval, so attaching the script
	// right after the upload lands is race-free.
	name := UploadName(local)
	type result struct {
		a   *RemoteAsset
		err error
	}
	ch := make(chan result, 1)
	go func() {
		a, err := m.Acquire(context.Background(), "/tmp/"+local, name)
		ch <- result{a, err}
	}()

	// Wait for the upload to land, then script the states for it.
	deadline := time.Now().Add(time.Second)
	for fs.UploadCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("upload never happened")
		}
		time.Sleep(100 * time.Microsecond)
	}
	fs.ScriptStates("files/mock-1", states...)

	r := <-ch
	return r.a, r.err
}

func TestAcquire_UploadTransportError(t *testing.T) {
	fs := llm.NewMockFileStore()
	fs.UploadErr = errors.New("connection reset")
	m := NewManager(fs, testConfig())

	_, err := m.Acquire(context.Background(), "/tmp/run1.mp4", "upload_1_run1.mp4")
	var ue *UploadError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UploadError", err)
	}
	if ue.Op != "upload" {
		t.Errorf("op = %q, want upload", ue.Op)
	}
}

func TestAcquire_RemoteFailureCleansUp(t *testing.T) {
	fs := llm.NewMockFileStore()
	m := NewManager(fs, testConfig())

	_, err := acquireWithScript(t, m, fs, "run1.mp4", llm.FileStateFailed)
	var pe *RemoteProcessingError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *RemoteProcessingError", err)
	}
	if len(fs.Deleted) != 1 {
		t.Errorf("orphaned remote file should be deleted, deleted %v", fs.Deleted)
	}
}

func TestAcquire_UnexpectedState(t *testing.T) {
	fs := llm.NewMockFileStore()
	m := NewManager(fs, testConfig())

	_, err := acquireWithScript(t, m, fs, "run1.mp4", llm.FileStateUnspecified)
	var se *UnexpectedStateError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *UnexpectedStateError", err)
	}
}

func TestAcquire_TimeoutAfterBudget(t *testing.T) {
	fs := llm.NewMockFileStore()
	cfg := Config{PollInterval: time.Millisecond, Budget: 30 * time.Millisecond}
	m := NewManager(fs, cfg)

	start := time.Now()
	// The mock never leaves PROCESSING when no script is attached.
	_, err := m.Acquire(context.Background(), "/tmp/run1.mp4", "upload_1_run1.mp4")
	elapsed := time.Since(start)

	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TimeoutError", err)
	}
	if te.Budget != cfg.Budget {
		t.Errorf("budget = %v, want %v", te.Budget, cfg.Budget)
	}
	if elapsed < cfg.Budget {
		t.Errorf("gave up after %v, before the %v budget", elapsed, cfg.Budget)
	}
	if elapsed > cfg.Budget+20*cfg.PollInterval+20*time.Millisecond {
		t.Errorf("gave up after %v, far past the %v budget", elapsed, cfg.Budget)
	}
	if len(fs.Deleted) != 1 {
		t.Errorf("stuck remote file should be deleted, deleted %v", fs.Deleted)
	}
}

func TestAcquire_CleanupFailureDoesNotMaskError(t *testing.T) {
	fs := llm.NewMockFileStore()
	fs.DeleteErr = errors.New("delete refused")
	m := NewManager(fs, testConfig())

	_, err := acquireWithScript(t, m, fs, "run1.mp4", llm.FileStateFailed)
	var pe *RemoteProcessingError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *RemoteProcessingError despite cleanup failure", err)
	}
}

func TestEnsure_ReusesActiveAsset(t *testing.T) {
	fs := llm.NewMockFileStore()
	m := NewManager(fs, testConfig())

	info := fs.AddFile("upload_100_run1.mp4", llm.FileStateActive)
	prev := &RemoteAsset{
		ID:          info.Name,
		DisplayName: info.DisplayName,
		URI:         info.URI,
		MIMEType:    info.MIMEType,
		State:       StateActive,
	}

	a, err := m.Ensure(context.Background(), prev, "/videos/run1.mp4")
	if err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if a != prev {
		t.Error("expected the previous asset to be reused")
	}
	if fs.UploadCount() != 0 {
		t.Errorf("reuse must not upload, got %d uploads", fs.UploadCount())
	}
}

func TestEnsure_NonActivePreviousIsReplaced(t *testing.T) {
	fs := llm.NewMockFileStore()
	m := NewManager(fs, testConfig())

	info := fs.AddFile("upload_100_run1.mp4", llm.FileStateFailed)
	prev := &RemoteAsset{ID: info.Name, DisplayName: info.DisplayName, State: StateActive}

	type result struct {
		a   *RemoteAsset
		err error
	}
	ch := make(chan result, 1)
	go func() {
		a, err := m.Ensure(context.Background(), prev, "/videos/run1.mp4")
		ch <- result{a, err}
	}()

	deadline := time.Now().Add(time.Second)
	for fs.UploadCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("replacement upload never happened")
		}
		time.Sleep(100 * time.Microsecond)
	}
	fs.ScriptStates("files/mock-2", llm.FileStateActive)

	r := <-ch
	if r.err != nil {
		t.Fatalf("Ensure failed: %v", r.err)
	}
	if r.a.ID == prev.ID {
		t.Error("stale asset should have been replaced")
	}
	// The stale asset is deleted before the new upload.
	if len(fs.Deleted) == 0 || fs.Deleted[0] != prev.ID {
		t.Errorf("previous asset should be deleted first, deleted %v", fs.Deleted)
	}
}

func TestEnsure_NameMismatchForcesUpload(t *testing.T) {
	fs := llm.NewMockFileStore()
	m := NewManager(fs, testConfig())

	info := fs.AddFile("upload_100_other.mp4", llm.FileStateActive)
	prev := &RemoteAsset{ID: info.Name, DisplayName: info.DisplayName, State: StateActive}

	if m.CheckReusable(context.Background(), prev, "run1.mp4") {
		t.Error("display name mismatch must not be reusable")
	}
}

func TestRelease_NilIsNoop(t *testing.T) {
	fs := llm.NewMockFileStore()
	m := NewManager(fs, testConfig())

	m.Release(context.Background(), nil)
	if len(fs.Deleted) != 0 {
		t.Errorf("nil release deleted %v", fs.Deleted)
	}
}

func TestRelease_DeletesAndMarks(t *testing.T) {
	fs := llm.NewMockFileStore()
	m := NewManager(fs, testConfig())

	info := fs.AddFile("upload_100_run1.mp4", llm.FileStateActive)
	a := &RemoteAsset{ID: info.Name, DisplayName: info.DisplayName, State: StateActive}

	m.Release(context.Background(), a)
	if a.State != StateDeleted {
		t.Errorf("state = %q, want %q", a.State, StateDeleted)
	}
	if len(fs.Deleted) != 1 || fs.Deleted[0] != info.Name {
		t.Errorf("deleted = %v, want [%s]", fs.Deleted, info.Name)
	}

	// Releasing again is a no-op.
	m.Release(context.Background(), a)
	if len(fs.Deleted) != 1 {
		t.Errorf("double release deleted again: %v", fs.Deleted)
	}
}

func TestUploadName_EndsWithBaseName(t *testing.T) {
	name := UploadName("/videos/clips/run1.mp4")
	if want := "_run1.mp4"; len(name) == 0 || name[len(name)-len(want):] != want {
		t.Errorf("UploadName = %q, want suffix %q", name, want)
	}
}
