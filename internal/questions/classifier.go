package questions

import (
	"context"
	"strings"

	"docassist-backend/internal/documents"
	"docassist-backend/internal/shared/telemetry"
)

// resumeKeywords classify a document by filename or title alone.
var resumeKeywords = []string{"resume", "cv", "curriculum vitae", "bio", "biography"}

// resumeSections are section terms commonly present in résumé bodies. A
// document containing at least minSectionMatches distinct terms is classified
// as a résumé. This is a heuristic; false positives and negatives are
// accepted behavior.
var resumeSections = []string{
	"objective", "summary", "experience", "education", "skills",
	"work history", "employment", "professional experience",
	"qualifications", "achievements", "projects", "certifications",
	"references", "contact information", "phone", "email", "address",
}

const minSectionMatches = 3

// MatchesResumeTitle reports whether the filename or title alone marks the
// document as a résumé. This tier is pure and needs no content fetch.
func MatchesResumeTitle(doc documents.Document) bool {
	fileName := strings.ToLower(doc.FileName)
	title := strings.ToLower(doc.Title)
	for _, keyword := range resumeKeywords {
		if strings.Contains(fileName, keyword) || strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}

// IsResume classifies a document as a résumé: first by filename/title
// keywords, then by counting distinct section terms in the content. A content
// fetch failure classifies the document as not a résumé.
func IsResume(ctx context.Context, doc documents.Document, fetch documents.ContentFetcher) bool {
	if MatchesResumeTitle(doc) {
		return true
	}

	content, err := fetch(ctx, doc)
	if err != nil {
		telemetry.Warn("resume.content_check_failed", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
		return false
	}

	contentLower := strings.ToLower(content)
	matches := 0
	for _, section := range resumeSections {
		if strings.Contains(contentLower, section) {
			matches++
			if matches >= minSectionMatches {
				return true
			}
		}
	}
	return false
}

// ResumeDocuments filters the given documents down to résumés, preserving
// store order. Title-matched documents skip the content fetch.
func ResumeDocuments(ctx context.Context, docs []documents.Document, fetch documents.ContentFetcher) []documents.Document {
	var out []documents.Document
	for _, doc := range docs {
		if IsResume(ctx, doc, fetch) {
			out = append(out, doc)
		}
	}
	return out
}
