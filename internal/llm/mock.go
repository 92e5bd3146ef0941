package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text    string
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Text:       resp.Text,
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockFileStore is a deterministic FileStore for testing. Uploads return a
// PROCESSING descriptor; each subsequent Get pops the next state from that
// file's scripted sequence, sticking at the last one when the script runs
// out.
type MockFileStore struct {
	mu      sync.Mutex
	nextID  int
	files   map[string]*FileInfo
	scripts map[string][]FileState

	UploadErr error
	GetErr    error
	DeleteErr error

	Uploads []string // display names, in order
	Deleted []string // remote names, in order
}

// NewMockFileStore creates an empty MockFileStore.
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{
		files:   make(map[string]*FileInfo),
		scripts: make(map[string][]FileState),
	}
}

// AddFile registers a pre-existing remote file in the given state and
// returns its descriptor. Used to seed reuse scenarios.
func (m *MockFileStore) AddFile(displayName string, state FileState) *FileInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addLocked(displayName, state)
}

// ScriptStates sets the sequence of states Get will report for a remote
// file, one per call.
func (m *MockFileStore) ScriptStates(name string, states ...FileState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[name] = states
}

func (m *MockFileStore) addLocked(displayName string, state FileState) *FileInfo {
	m.nextID++
	name := fmt.Sprintf("files/mock-%d", m.nextID)
	info := &FileInfo{
		Name:        name,
		DisplayName: displayName,
		URI:         "https://mock.example/" + name,
		MIMEType:    "video/mp4",
		State:       state,
		CreateTime:  time.Now(),
	}
	m.files[name] = info
	return info
}

func (m *MockFileStore) Upload(_ context.Context, path, displayName string) (*FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Uploads = append(m.Uploads, displayName)
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}

	info := m.addLocked(displayName, FileStateProcessing)
	cp := *info
	return &cp, nil
}

func (m *MockFileStore) Get(_ context.Context, name string) (*FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	info, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("file %s not found", name)
	}

	if script := m.scripts[name]; len(script) > 0 {
		info.State = script[0]
		if len(script) > 1 {
			m.scripts[name] = script[1:]
		}
	}

	cp := *info
	return &cp, nil
}

func (m *MockFileStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Deleted = append(m.Deleted, name)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.files, name)
	return nil
}

// UploadCount returns the number of Upload calls made.
func (m *MockFileStore) UploadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Uploads)
}
