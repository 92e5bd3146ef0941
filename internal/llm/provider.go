package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for remote model interaction.
// Consumers call Generate with a Request and receive the model's output.
type Provider interface {
	// Generate sends a prompt (optionally grounded on an uploaded file) to
	// the model and returns its response. The request's Schema field, when
	// set, instructs the provider to return JSON conforming to that schema;
	// the response Content will be the validated JSON. Without a schema the
	// response carries free text only.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the only case in Scout Eye) this contains one user message.
	Messages []Message

	// File references an uploaded remote file to ground the request on.
	// The file must be in the ACTIVE state; enforcing that is the caller's
	// job (the provider passes the reference through as-is).
	File *FileRef

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response is free text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// FileRef points a request at a previously uploaded remote file.
type FileRef struct {
	URI      string
	MIMEType string
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "skill-score".
	Name string

	// Description is a human-readable description of what this schema
	// represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Text is the raw text of the first candidate, trimmed.
	Text string

	// Content is the validated JSON object when a Schema was provided in
	// the request, nil otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
