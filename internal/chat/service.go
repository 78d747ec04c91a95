package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docassist-backend/internal/documents"
	"docassist-backend/internal/llm"
	"docassist-backend/internal/shared/telemetry"
)

const (
	answerMaxTokens   = 1000
	answerTemperature = 0.7

	// maxHistoryTurns bounds how much prior conversation the prompt carries.
	maxHistoryTurns = 10
)

const answerSystemPrompt = `You are a helpful assistant that answers questions about the user's uploaded documents. Use only the document content provided below to answer. If the answer is not in the documents, say so clearly instead of guessing. Be concise and specific, and mention which document an answer comes from when it matters.`

const (
	noDocumentsReply = "You haven't uploaded any documents yet. Upload a document and I can answer questions about it."

	notConfiguredReply = "AI chat is not configured. An API key is required to enable document Q&A."
)

// Service answers questions about a user's documents.
type Service struct {
	Docs *documents.Service
	LLM  llm.Client
}

// Answer produces an assistant reply to the user's question, grounded in the
// user's documents. It never returns an error: configuration gaps, an empty
// document store, and provider failures all become reply text.
func (s *Service) Answer(ctx context.Context, userID, question string, history []Message) Message {
	return assistantMessage(s.answerText(ctx, userID, question, history))
}

func (s *Service) answerText(ctx context.Context, userID, question string, history []Message) string {
	docs, err := s.Docs.List(ctx, userID)
	if err != nil {
		telemetry.Error("chat.list_documents_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "Error: " + err.Error()
	}
	if len(docs) == 0 {
		return noDocumentsReply
	}

	docContext := documents.BuildContext(ctx, "The user's documents:\n\n", docs, s.Docs.Fetcher())

	reply, err := s.LLM.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: answerSystemPrompt,
		UserPrompt:   buildPrompt(docContext, question, history),
		MaxTokens:    answerMaxTokens,
		Temperature:  answerTemperature,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return notConfiguredReply
		}
		telemetry.Error("chat.completion_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "Error: " + err.Error()
	}
	return reply
}

func buildPrompt(docContext, question string, history []Message) string {
	var b strings.Builder
	b.WriteString(docContext)

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, msg := range history {
			fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "User question: %s", question)
	return b.String()
}

func assistantMessage(content string) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
