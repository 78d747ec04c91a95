package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"docassist-backend/internal/llm"
)

const defaultModel = "gpt-4o-mini"

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	api   *openai.Client
	model string
}

// New constructs a client from config. When no credential is present it
// returns the disabled client, whose calls fail with llm.ErrNotConfigured.
func New(cfg llm.Config) llm.Client {
	if !cfg.Configured() {
		return llm.Disabled()
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	return &Client{
		api:   openai.NewClient(cfg.APIKey),
		model: model,
	}
}

func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	oReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
	}
	if req.MaxTokens > 0 {
		oReq.MaxTokens = req.MaxTokens
	}
	if req.Temperature > 0 {
		oReq.Temperature = req.Temperature
	}

	resp, err := c.api.CreateChatCompletion(ctx, oReq)
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai response empty content")
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
