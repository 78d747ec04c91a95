package documents

import "time"

// Document represents an uploaded document owned by a user. Content holds
// either plain text or the base64 encoding of the original bytes, per
// IsBase64. ExtractedText is a best-effort textual derivative used only for
// AI context; it is never stored empty.
type Document struct {
	ID            string
	UserID        string
	Title         string
	FileName      string
	FileSize      int64
	FileType      string
	Content       string
	IsBase64      bool
	ExtractedText string
	CreatedAt     time.Time
}
