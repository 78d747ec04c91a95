package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document. ExtractedText is stored as NULL when absent,
// never as an empty string.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    user_id,
    title,
    file_name,
    file_size,
    file_type,
    content,
    is_base64,
    extracted_text,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var extracted sql.NullString
	if doc.ExtractedText != "" {
		extracted = sql.NullString{String: doc.ExtractedText, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.Title,
		doc.FileName,
		doc.FileSize,
		doc.FileType,
		doc.Content,
		doc.IsBase64,
		extracted,
		doc.CreatedAt,
	)
	return err
}

// ListByUser lists documents ordered newest-first. The id tiebreak keeps the
// order deterministic for equal timestamps.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	const query = `
SELECT id, user_id, title, file_name, file_size, file_type, content, is_base64, extracted_text, created_at
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// GetByID fetches a document by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, documentID string) (Document, error) {
	const query = `
SELECT id, user_id, title, file_name, file_size, file_type, content, is_base64, extracted_text, created_at
FROM documents
WHERE user_id = $1 AND id = $2
LIMIT 1`

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, userID, documentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// Delete removes a document owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, documentID string) error {
	const query = `DELETE FROM documents WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, documentID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var extracted sql.NullString
	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&doc.FileName,
		&doc.FileSize,
		&doc.FileType,
		&doc.Content,
		&doc.IsBase64,
		&extracted,
		&doc.CreatedAt,
	); err != nil {
		return Document{}, err
	}
	if extracted.Valid {
		doc.ExtractedText = extracted.String
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
