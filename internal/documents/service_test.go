package documents

import (
	"context"
	"errors"
	"testing"
)

func TestUploadStoresTextFilePlain(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	doc, err := svc.Upload(context.Background(), "user-1", "notes.txt", "", "text/plain", []byte("some notes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if doc.IsBase64 {
		t.Fatal("expected plain text storage for .txt upload")
	}
	if doc.Content != "some notes" {
		t.Fatalf("expected verbatim content, got %q", doc.Content)
	}
	if doc.Title != "notes.txt" {
		t.Fatalf("expected filename as default title, got %q", doc.Title)
	}
}

func TestUploadRejectsOversizedBeforeAnyWork(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	data := make([]byte, MaxFileSize+1)
	copy(data, []byte("%PDF-1.4 garbage"))

	_, err := svc.Upload(context.Background(), "user-1", "big.pdf", "", "application/pdf", data)
	if !errors.Is(err, ErrSizeExceeded) {
		t.Fatalf("expected ErrSizeExceeded, got %v", err)
	}

	docs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected nothing persisted, got %d documents", len(docs))
	}
}

func TestUploadRequiresUser(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Upload(context.Background(), "", "notes.txt", "", "text/plain", []byte("x"))
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestUploadUnparseablePDFStoredWithoutExtractedText(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	doc, err := svc.Upload(context.Background(), "user-1", "broken.pdf", "Broken", "application/pdf", []byte("not a real pdf"))
	if err != nil {
		t.Fatalf("upload should tolerate extraction failure: %v", err)
	}
	if !doc.IsBase64 {
		t.Fatal("expected base64 storage for pdf")
	}
	if doc.ExtractedText != "" {
		t.Fatalf("expected no extracted text, got %q", doc.ExtractedText)
	}
}

func TestUploadTextSizeLimit(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.UploadText(context.Background(), "user-1", "big", string(make([]byte, MaxFileSize+1)))
	if !errors.Is(err, ErrSizeExceeded) {
		t.Fatalf("expected ErrSizeExceeded, got %v", err)
	}
}

func TestDeleteIsHardRemoval(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	doc, err := svc.UploadText(context.Background(), "user-1", "temp", "content")
	if err != nil {
		t.Fatalf("upload text: %v", err)
	}

	if err := svc.Delete(context.Background(), "user-1", doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-1", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStorePartitionsByUser(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	doc, err := svc.UploadText(context.Background(), "user-1", "private", "secret")
	if err != nil {
		t.Fatalf("upload text: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-2", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected cross-user access to fail, got %v", err)
	}
	docs, err := svc.List(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents for other user, got %d", len(docs))
	}
}

func TestDownloadRoundTrip(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	original := []byte{0x00, 0x01, 0xfe, 0xff}
	doc, err := svc.Upload(context.Background(), "user-1", "blob.bin", "", "application/octet-stream", original)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	raw, got, err := svc.Download(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if string(raw) != string(original) {
		t.Fatalf("round trip mismatch: %v != %v", raw, original)
	}
	if got.FileName != "blob.bin" {
		t.Fatalf("expected file name, got %q", got.FileName)
	}
}
