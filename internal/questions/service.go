package questions

import (
	"context"
	"fmt"
	"strings"

	"docassist-backend/internal/documents"
	"docassist-backend/internal/llm"
	"docassist-backend/internal/shared/telemetry"
)

const (
	// targetQuestionCount is how many questions a generation run aims for.
	targetQuestionCount = 30
	// minQuestionYield is the lowest acceptable yield from a single run.
	// Below it the whole generation is retried once.
	minQuestionYield = 15
	// seedQuestionCount is how many already-generated questions the backfill
	// prompt cites so the model avoids repeating them.
	seedQuestionCount = 5

	generateMaxTokens   = 2500
	backfillMaxTokens   = 1000
	generateTemperature = 0.7
)

const generateSystemPrompt = `You are an expert interview coach. Based on the candidate's resume, generate exactly 30 interview questions the candidate should prepare for, covering these categories:
- Technical skills and tools mentioned in the resume (about 10 questions)
- Behavioral questions grounded in their work history (about 8 questions)
- Problem-solving scenarios relevant to their field (about 5 questions)
- Leadership and teamwork (about 4 questions)
- Career goals and motivation (about 3 questions)

Return one question per line, numbered 1 through 30. Do not add category headers, commentary, or anything other than the questions.`

const backfillSystemPrompt = `You are an expert interview coach. Generate additional interview questions based on the candidate's resume. Return one question per line, numbered. Do not repeat questions you are told were already asked.`

// Service generates interview questions from a user's résumé documents.
type Service struct {
	Docs *documents.Service
	LLM  llm.Client
}

// Resumes returns the user's documents classified as résumés, newest first.
func (s *Service) Resumes(ctx context.Context, userID string) ([]documents.Document, error) {
	docs, err := s.Docs.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ResumeDocuments(ctx, docs, s.Docs.Fetcher()), nil
}

// Generate produces up to 30 interview questions from the user's résumés.
// When documentID is non-empty, generation is scoped to that document only.
// A run that yields fewer than minQuestionYield questions is retried once in
// full; a run that yields at least that many but fewer than the target gets
// one supplemental backfill call.
func (s *Service) Generate(ctx context.Context, userID, documentID string) ([]string, error) {
	resumes, err := s.resumeDocuments(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if len(resumes) == 0 {
		return nil, ErrNoResumeDocuments
	}

	resumeContext := documents.BuildContext(ctx, "Resume Content:\n\n", resumes, s.Docs.Fetcher())

	qs, err := s.generateOnce(ctx, resumeContext)
	if err != nil {
		return nil, err
	}

	if len(qs) < minQuestionYield {
		telemetry.Warn("questions.low_yield_retry", map[string]any{
			"user_id": userID,
			"yield":   len(qs),
		})
		retried, rerr := s.generateOnce(ctx, resumeContext)
		if rerr != nil {
			telemetry.Warn("questions.retry_failed", map[string]any{
				"user_id": userID,
				"error":   rerr.Error(),
			})
		} else if len(retried) > len(qs) {
			qs = retried
		}
	}

	if len(qs) > targetQuestionCount {
		qs = qs[:targetQuestionCount]
	}
	return qs, nil
}

// resumeDocuments resolves which documents generation should draw from.
func (s *Service) resumeDocuments(ctx context.Context, userID, documentID string) ([]documents.Document, error) {
	if strings.TrimSpace(documentID) != "" {
		doc, err := s.Docs.Get(ctx, userID, documentID)
		if err != nil {
			return nil, err
		}
		if !IsResume(ctx, doc, s.Docs.Fetcher()) {
			return nil, ErrNoResumeDocuments
		}
		return []documents.Document{doc}, nil
	}
	return s.Resumes(ctx, userID)
}

// generateOnce runs one full generation pass: the primary call, parsing, and
// at most one backfill call when the yield is acceptable but short of target.
func (s *Service) generateOnce(ctx context.Context, resumeContext string) ([]string, error) {
	raw, err := s.LLM.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: generateSystemPrompt,
		UserPrompt:   resumeContext,
		MaxTokens:    generateMaxTokens,
		Temperature:  generateTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	qs := ParseQuestions(raw)
	if len(qs) >= minQuestionYield && len(qs) < targetQuestionCount {
		qs = s.backfill(ctx, resumeContext, qs)
	}
	return qs, nil
}

// backfill asks the provider for the remaining questions in one supplemental
// call. A failed or empty backfill is tolerated; the primary yield stands.
func (s *Service) backfill(ctx context.Context, resumeContext string, qs []string) []string {
	shortfall := targetQuestionCount - len(qs)
	seed := qs
	if len(seed) > seedQuestionCount {
		seed = seed[:seedQuestionCount]
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "%sGenerate %d more interview questions for this candidate.\n\nAlready asked (do not repeat):\n", resumeContext, shortfall)
	for i, q := range seed {
		fmt.Fprintf(&prompt, "%d. %s\n", i+1, q)
	}

	raw, err := s.LLM.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: backfillSystemPrompt,
		UserPrompt:   prompt.String(),
		MaxTokens:    backfillMaxTokens,
		Temperature:  generateTemperature,
	})
	if err != nil {
		telemetry.Warn("questions.backfill_failed", map[string]any{
			"shortfall": shortfall,
			"error":     err.Error(),
		})
		return qs
	}

	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		seen[q] = true
	}
	for _, q := range ParseQuestions(raw) {
		if seen[q] {
			continue
		}
		seen[q] = true
		qs = append(qs, q)
		if len(qs) == targetQuestionCount {
			break
		}
	}
	return qs
}
