package documents

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeTextFile(t *testing.T) {
	cases := []struct {
		name     string
		mimeType string
		fileName string
	}{
		{"text mime", "text/plain", "whatever.bin"},
		{"markdown extension", "application/octet-stream", "notes.md"},
		{"json extension", "", "data.JSON"},
		{"csv extension", "", "rows.csv"},
	}

	for _, tc := range cases {
		content, isBase64, err := Encode([]byte("hello world"), tc.mimeType, tc.fileName)
		if err != nil {
			t.Fatalf("%s: encode: %v", tc.name, err)
		}
		if isBase64 {
			t.Fatalf("%s: expected plain text encoding", tc.name)
		}
		if content != "hello world" {
			t.Fatalf("%s: expected verbatim content, got %q", tc.name, content)
		}
	}
}

func TestEncodeBinaryRoundTrip(t *testing.T) {
	original := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff, 0x10}

	content, isBase64, err := Encode(original, "application/pdf", "file.pdf")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !isBase64 {
		t.Fatal("expected base64 encoding for binary file")
	}

	restored, err := Decode(Document{Content: content, IsBase64: true})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(restored, original) {
		t.Fatalf("round trip mismatch: %v != %v", restored, original)
	}
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	data := make([]byte, MaxFileSize+1)

	_, _, err := Encode(data, "text/plain", "big.txt")
	if !errors.Is(err, ErrSizeExceeded) {
		t.Fatalf("expected ErrSizeExceeded, got %v", err)
	}
}

func TestEncodeAcceptsPayloadAtLimit(t *testing.T) {
	data := make([]byte, MaxFileSize)

	if _, _, err := Encode(data, "text/plain", "big.txt"); err != nil {
		t.Fatalf("expected payload at limit to pass, got %v", err)
	}
}

func TestIsPDF(t *testing.T) {
	if !IsPDF("application/pdf", "doc.bin") {
		t.Fatal("expected pdf by mime")
	}
	if !IsPDF("application/octet-stream", "Resume.PDF") {
		t.Fatal("expected pdf by extension")
	}
	if IsPDF("text/plain", "notes.txt") {
		t.Fatal("expected non-pdf")
	}
}
