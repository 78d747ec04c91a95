package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"docassist-backend/internal/shared/telemetry"
)

// MaxPages bounds how many pages are processed per document. Later pages are
// skipped, not an error.
const MaxPages = 100

var (
	// ErrPasswordProtected marks PDFs that cannot be opened without a password.
	ErrPasswordProtected = errors.New("pdf is password-protected")
	// ErrMalformed marks byte streams that are not a readable PDF.
	ErrMalformed = errors.New("malformed pdf document")
	// ErrNoExtractableText marks PDFs that opened fine but yielded no text,
	// typically image-only scans.
	ErrNoExtractableText = errors.New("no extractable text in pdf")
)

// pageSource is the normalized view of an open PDF. The extraction algorithm
// works on plain string fragments and never sees library item shapes.
type pageSource interface {
	pageCount() int
	pageFragments(n int) ([]string, error)
}

// PDFText extracts plain text from a PDF byte stream. Page text fragments are
// joined with single spaces; pages are separated by a blank line. A failure on
// one page is logged and skipped, never aborting the whole document.
func PDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", classifyOpenErr(err)
	}
	return pagesText(&ledongthucSource{reader: reader})
}

func pagesText(src pageSource) (string, error) {
	pages := src.pageCount()
	if pages > MaxPages {
		pages = MaxPages
	}

	var buf strings.Builder
	for n := 1; n <= pages; n++ {
		fragments, err := src.pageFragments(n)
		if err != nil {
			telemetry.Warn("pdf.page_extract_failed", map[string]any{
				"page":  n,
				"error": err.Error(),
			})
			continue
		}

		pageText := joinFragments(fragments)
		if pageText != "" {
			buf.WriteString(pageText)
			buf.WriteString("\n\n")
		}
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", ErrNoExtractableText
	}
	return text, nil
}

func joinFragments(fragments []string) string {
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			kept = append(kept, f)
		}
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}

func classifyOpenErr(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "password") || strings.Contains(msg, "encrypted") {
		return ErrPasswordProtected
	}
	return ErrMalformed
}

// ledongthucSource adapts github.com/ledongthuc/pdf to pageSource.
type ledongthucSource struct {
	reader *pdf.Reader
}

func (s *ledongthucSource) pageCount() int {
	return s.reader.NumPage()
}

// pageFragments returns the page's text items as plain strings. The library
// panics on some malformed content streams, so panics are converted to errors
// and handled like any other per-page failure.
func (s *ledongthucSource) pageFragments(n int) (fragments []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = fmt.Errorf("page %d content: %v", n, r)
		}
	}()

	page := s.reader.Page(n)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	fragments = make([]string, 0, len(content.Text))
	for _, item := range content.Text {
		fragments = append(fragments, item.S)
	}
	return fragments, nil
}
