package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docassist-backend/internal/extract"
	"docassist-backend/internal/shared/telemetry"
	"docassist-backend/internal/shared/util"
)

// Service contains business logic for documents.
type Service struct {
	Repo Repo
}

// Upload validates, encodes, and persists an uploaded file. PDF text
// extraction runs synchronously before persistence; an extraction failure is
// non-fatal and the document is stored without extracted text.
func (s *Service) Upload(ctx context.Context, userID, fileName, title, mimeType string, data []byte) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, ErrUnauthenticated
	}

	cleanName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	// The size ceiling is checked before any extraction or encoding work.
	if len(data) > MaxFileSize {
		return Document{}, fmt.Errorf("%w: %d bytes > %d", ErrSizeExceeded, len(data), MaxFileSize)
	}

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	if title == "" {
		title = cleanName
	}

	var extractedText string
	if IsPDF(mimeType, cleanName) {
		extractedText = s.extractPDFText(cleanName, data)
	}

	content, isBase64, err := Encode(data, mimeType, cleanName)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         title,
		FileName:      cleanName,
		FileSize:      int64(len(data)),
		FileType:      mimeType,
		Content:       content,
		IsBase64:      isBase64,
		ExtractedText: extractedText,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// UploadText persists pasted text as a plain-text document.
func (s *Service) UploadText(ctx context.Context, userID, title, text string) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, ErrUnauthenticated
	}
	if strings.TrimSpace(title) == "" {
		return Document{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(text) > MaxFileSize {
		return Document{}, fmt.Errorf("%w: %d bytes > %d", ErrSizeExceeded, len(text), MaxFileSize)
	}

	doc := Document{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		FileName:  title + ".txt",
		FileSize:  int64(len(text)),
		FileType:  "text/plain",
		Content:   text,
		IsBase64:  false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Document, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns one document owned by the user.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, ErrUnauthenticated
	}
	return s.Repo.GetByID(ctx, userID, documentID)
}

// Delete removes a document permanently.
func (s *Service) Delete(ctx context.Context, userID, documentID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUnauthenticated
	}
	return s.Repo.Delete(ctx, userID, documentID)
}

// Content resolves the textual representation of a stored document.
func (s *Service) Content(ctx context.Context, userID, documentID string) (string, error) {
	doc, err := s.Get(ctx, userID, documentID)
	if err != nil {
		return "", err
	}
	return ResolveText(doc), nil
}

// Download restores the original bytes of a stored document.
func (s *Service) Download(ctx context.Context, userID, documentID string) ([]byte, Document, error) {
	doc, err := s.Get(ctx, userID, documentID)
	if err != nil {
		return nil, Document{}, err
	}
	raw, err := Decode(doc)
	if err != nil {
		return nil, Document{}, err
	}
	return raw, doc, nil
}

// Fetcher returns a ContentFetcher that re-reads each document from the
// store, so context assembly sees a per-document failure when the record has
// gone away mid-iteration.
func (s *Service) Fetcher() ContentFetcher {
	return func(ctx context.Context, doc Document) (string, error) {
		fresh, err := s.Repo.GetByID(ctx, doc.UserID, doc.ID)
		if err != nil {
			return "", err
		}
		return ResolveText(fresh), nil
	}
}

func (s *Service) extractPDFText(fileName string, data []byte) string {
	text, err := extract.PDFText(data)
	if err != nil {
		fields := map[string]any{"file_name": fileName, "error": err.Error()}
		switch {
		case errors.Is(err, extract.ErrNoExtractableText):
			telemetry.Warn("upload.pdf_no_text", fields)
		case errors.Is(err, extract.ErrPasswordProtected):
			telemetry.Warn("upload.pdf_password_protected", fields)
		default:
			telemetry.Warn("upload.pdf_extract_failed", fields)
		}
		return ""
	}
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}
