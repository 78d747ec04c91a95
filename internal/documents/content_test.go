package documents

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestResolveTextPrefersExtractedText(t *testing.T) {
	doc := Document{
		Content:       "cmF3IGJ5dGVz",
		IsBase64:      true,
		ExtractedText: "extracted body",
	}
	if got := ResolveText(doc); got != "extracted body" {
		t.Fatalf("expected extracted text, got %q", got)
	}
}

func TestResolveTextUsesPlainContent(t *testing.T) {
	doc := Document{Content: "plain notes", IsBase64: false}
	if got := ResolveText(doc); got != "plain notes" {
		t.Fatalf("expected plain content, got %q", got)
	}
}

func TestResolveTextPDFPlaceholder(t *testing.T) {
	doc := Document{
		FileName: "scan.pdf",
		Title:    "Scan",
		FileType: "application/pdf",
		FileSize: 4096,
		Content:  "YmFzZTY0",
		IsBase64: true,
	}
	got := ResolveText(doc)
	if !strings.Contains(got, "File: scan.pdf") {
		t.Fatalf("expected metadata in placeholder, got %q", got)
	}
	if !strings.Contains(got, "image-based") {
		t.Fatalf("expected PDF-specific message, got %q", got)
	}
}

func TestResolveTextGenericBinaryPlaceholder(t *testing.T) {
	doc := Document{
		FileName: "photo.png",
		Title:    "Photo",
		FileType: "image/png",
		FileSize: 100,
		Content:  "YmFzZTY0",
		IsBase64: true,
	}
	got := ResolveText(doc)
	if strings.Contains(got, "image-based") {
		t.Fatalf("expected generic message for non-PDF, got %q", got)
	}
	if !strings.Contains(got, "could not be extracted") {
		t.Fatalf("expected extraction notice, got %q", got)
	}
}

func TestResolveTextNeverEmpty(t *testing.T) {
	if got := ResolveText(Document{FileName: "empty.txt"}); got == "" {
		t.Fatal("expected non-empty result for empty document")
	}
}

func TestBuildContextSubstitutesPlaceholderOnFailure(t *testing.T) {
	docs := []Document{
		{ID: "1", Title: "Good", Content: "good content"},
		{ID: "2", Title: "Bad"},
		{ID: "3", Title: "Also good", Content: "more content"},
	}

	fetch := func(ctx context.Context, doc Document) (string, error) {
		if doc.ID == "2" {
			return "", errors.New("boom")
		}
		return doc.Content, nil
	}

	got := BuildContext(context.Background(), "Context:\n\n", docs, fetch)

	if !strings.HasPrefix(got, "Context:\n\n") {
		t.Fatalf("expected header prefix, got %q", got)
	}
	if !strings.Contains(got, "Document: Good\ngood content\n\n") {
		t.Fatalf("expected first document block, got %q", got)
	}
	if !strings.Contains(got, "Document: Bad\n[Content unavailable]\n\n") {
		t.Fatalf("expected placeholder block, got %q", got)
	}
	if !strings.Contains(got, "Document: Also good\nmore content\n\n") {
		t.Fatalf("expected later documents to survive earlier failure, got %q", got)
	}
}
