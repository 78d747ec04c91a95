package documents

import (
	"context"
	"fmt"
	"strings"

	"docassist-backend/internal/shared/telemetry"
)

// ResolveText produces the textual representation of a document for AI
// context. Precedence: extracted text, then raw text content, then a
// synthesized metadata placeholder. It always returns some string.
func ResolveText(doc Document) string {
	if strings.TrimSpace(doc.ExtractedText) != "" {
		return doc.ExtractedText
	}
	if !doc.IsBase64 && strings.TrimSpace(doc.Content) != "" {
		return doc.Content
	}
	if doc.IsBase64 {
		if IsPDF(doc.FileType, doc.FileName) {
			return fmt.Sprintf(
				"File: %s\nTitle: %s\nType: %s\nSize: %d bytes\n\n[PDF text extraction failed or PDF contains no text. The PDF might be image-based, scanned, or password-protected. Please upload a text-based PDF for AI analysis.]",
				doc.FileName, doc.Title, doc.FileType, doc.FileSize)
		}
		return fmt.Sprintf(
			"File: %s\nTitle: %s\nType: %s\nSize: %d bytes\n\n[Text content could not be extracted from this file. Please upload text files or text-based PDFs for AI analysis.]",
			doc.FileName, doc.Title, doc.FileType, doc.FileSize)
	}
	return fmt.Sprintf("No content available for %s", doc.FileName)
}

// ContentFetcher fetches the textual content of a document. It may fail per
// document; BuildContext isolates such failures.
type ContentFetcher func(ctx context.Context, doc Document) (string, error)

// BuildContext concatenates the textual representation of the given documents
// into one prompt context, one block per document. A content failure on one
// document substitutes a placeholder block rather than aborting the whole
// assembly. Documents are processed sequentially, in the order given.
func BuildContext(ctx context.Context, header string, docs []Document, fetch ContentFetcher) string {
	var buf strings.Builder
	buf.WriteString(header)

	for _, doc := range docs {
		content, err := fetch(ctx, doc)
		if err != nil {
			telemetry.Warn("context.document_unavailable", map[string]any{
				"document_id": doc.ID,
				"title":       doc.Title,
				"error":       err.Error(),
			})
			buf.WriteString(fmt.Sprintf("Document: %s\n[Content unavailable]\n\n", doc.Title))
			continue
		}
		buf.WriteString(fmt.Sprintf("Document: %s\n%s\n\n", doc.Title, content))
	}

	return buf.String()
}
