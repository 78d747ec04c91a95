package llm

import (
	"context"
	"errors"
	"strings"
)

// CompletionRequest captures one text-completion call.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float32
}

// Client abstracts an LLM text-completion provider.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ErrNotConfigured is returned when no LLM credential is present. It is
// distinct from provider call failures so callers can surface a clear
// configuration message instead of a transient error.
var ErrNotConfigured = errors.New("llm credential not configured")

// Config holds the provider credential and default model. The credential is
// passed explicitly; there is no hidden global.
type Config struct {
	APIKey string
	Model  string
}

// Configured reports whether a credential is present.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// disabledClient fails every call with ErrNotConfigured.
type disabledClient struct{}

func (disabledClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}

// Disabled returns a client whose calls fail with ErrNotConfigured.
func Disabled() Client {
	return disabledClient{}
}
