package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateStoresNullExtractedText(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:        "doc-1",
		UserID:    "user-1",
		Title:     "scan",
		FileName:  "scan.pdf",
		FileSize:  1024,
		FileType:  "application/pdf",
		Content:   "aGVsbG8=",
		IsBase64:  true,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			doc.UserID,
			doc.Title,
			doc.FileName,
			doc.FileSize,
			doc.FileType,
			doc.Content,
			doc.IsBase64,
			nil, // extracted_text must be NULL, not empty string
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserScansExtractedText(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "file_name", "file_size", "file_type",
		"content", "is_base64", "extracted_text", "created_at",
	}).
		AddRow("doc-2", "user-1", "resume", "resume.pdf", int64(2048), "application/pdf", "YmFzZTY0", true, "resume text", now).
		AddRow("doc-1", "user-1", "notes", "notes.txt", int64(12), "text/plain", "plain notes", false, nil, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("user-1").
		WillReturnRows(rows)

	docs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ExtractedText != "resume text" {
		t.Fatalf("expected extracted text, got %q", docs[0].ExtractedText)
	}
	if docs[1].ExtractedText != "" {
		t.Fatalf("expected empty extracted text for NULL column, got %q", docs[1].ExtractedText)
	}
}

func TestPGRepoDeleteReportsMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("user-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
