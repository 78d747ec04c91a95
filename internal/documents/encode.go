package documents

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// MaxFileSize is the hard per-document payload ceiling. The backing store has
// a 1 MiB record limit; 900 KiB leaves room for metadata.
const MaxFileSize = 900 * 1024

var textExtensions = []string{".txt", ".md", ".json", ".csv"}

// IsTextFile reports whether a file should be stored as plain text based on
// mime type and filename extension.
func IsTextFile(mimeType, fileName string) bool {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "text/") {
		return true
	}
	lower := strings.ToLower(fileName)
	for _, ext := range textExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// IsPDF reports whether a file is a PDF based on mime type and filename.
func IsPDF(mimeType, fileName string) bool {
	if strings.EqualFold(strings.TrimSpace(mimeType), "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}

// Encode produces the storable representation of a file: plain text for
// text-like files, base64 for everything else. The size ceiling is enforced
// before any encoding work happens.
func Encode(data []byte, mimeType, fileName string) (content string, isBase64 bool, err error) {
	if len(data) > MaxFileSize {
		return "", false, fmt.Errorf("%w: %d bytes > %d", ErrSizeExceeded, len(data), MaxFileSize)
	}
	if IsTextFile(mimeType, fileName) {
		return string(data), false, nil
	}
	return base64.StdEncoding.EncodeToString(data), true, nil
}

// Decode restores the original file bytes from a stored document.
func Decode(doc Document) ([]byte, error) {
	if !doc.IsBase64 {
		return []byte(doc.Content), nil
	}
	raw, err := base64.StdEncoding.DecodeString(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return raw, nil
}
