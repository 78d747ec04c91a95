package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
// Content is omitted from listings to keep payloads small.
type DocumentResponse struct {
	DocumentID       string    `json:"documentId"`
	Title            string    `json:"title"`
	FileName         string    `json:"fileName"`
	FileSize         int64     `json:"fileSize"`
	FileType         string    `json:"fileType"`
	IsBase64         bool      `json:"isBase64"`
	HasExtractedText bool      `json:"hasExtractedText"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:       doc.ID,
		Title:            doc.Title,
		FileName:         doc.FileName,
		FileSize:         doc.FileSize,
		FileType:         doc.FileType,
		IsBase64:         doc.IsBase64,
		HasExtractedText: doc.ExtractedText != "",
		CreatedAt:        doc.CreatedAt,
	}
}

func toResponses(docs []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toResponse(doc))
	}
	return out
}
