package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all model provider configuration.
type Config struct {
	// Provider selects which implementation to use.
	// Values: "gemini", "mock"
	Provider string

	// APIKey authenticates against the Gemini API.
	APIKey string

	// Model is the Gemini model identifier, friendly name or full ID.
	Model string

	// Timeout is the default maximum duration for a single inference
	// request. Individual callers may override it per request.
	Timeout time.Duration
}

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.5-flash",
	"gemini-pro":   "gemini-2.5-pro",
}

// SelectableModels lists the model identifiers offered for runtime
// switching. Video analysis requires a multimodal model; all of these
// qualify.
func SelectableModels() []string {
	return []string{
		"gemini-2.5-pro",
		"gemini-2.5-flash",
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
		"gemini-1.5-pro",
		"gemini-1.5-flash",
	}
}

// resolveModel maps a friendly model name to its full ID, passing through
// anything it does not recognize.
func resolveModel(name string, table map[string]string) string {
	if id, ok := table[name]; ok {
		return id
	}
	return name
}

// ResolveModel maps a friendly Gemini model name ("gemini-pro") to its full
// ID, passing full IDs through unchanged.
func ResolveModel(name string) string {
	return resolveModel(name, geminiModels)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Model:    "gemini-pro",
		Timeout:  180 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. SCOUTEYE_-prefixed variables win over the
// plain GEMINI_API_KEY convention.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SCOUTEYE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("SCOUTEYE_GEMINI_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("SCOUTEYE_GEMINI_MODEL"); m != "" {
		cfg.Model = m
	}

	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("SCOUTEYE_GEMINI_API_KEY (or GEMINI_API_KEY) is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
