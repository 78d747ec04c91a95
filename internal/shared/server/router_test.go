package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"docassist-backend/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:4200"},
		Env:             "dev",
	}
}

func TestHealthNeedsNoIdentity(t *testing.T) {
	r := NewRouter(testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireIdentity(t *testing.T) {
	r := NewRouter(testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGuestDocumentFlow(t *testing.T) {
	r := NewRouter(testConfig())

	body := `{"title":"Notes","text":"Quarterly revenue grew 12%."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "g1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	req.Header.Set("X-Guest-Id", "g1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var listResp struct {
		Documents []struct {
			DocumentID string `json:"documentId"`
			Title      string `json:"title"`
		} `json:"documents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listResp.Documents) != 1 || listResp.Documents[0].Title != "Notes" {
		t.Fatalf("unexpected list %+v", listResp)
	}

	// Another guest must not see the document.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	req.Header.Set("X-Guest-Id", "g2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var otherResp struct {
		Documents []json.RawMessage `json:"documents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &otherResp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(otherResp.Documents) != 0 {
		t.Fatal("documents leaked across users")
	}
}

func TestChatAlwaysReplies(t *testing.T) {
	r := NewRouter(testConfig())

	body := `{"message":"What's in my documents?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "g1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Reply struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if resp.Reply.Role != "assistant" || resp.Reply.Content == "" {
		t.Fatalf("unexpected reply %+v", resp.Reply)
	}
}

func TestQuestionsWithoutResume(t *testing.T) {
	r := NewRouter(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/questions", nil)
	req.Header.Set("X-Guest-Id", "g1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddr(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ":8080"},
		{"9090", ":9090"},
		{":7070", ":7070"},
	}
	for _, tt := range tests {
		if got := Addr(tt.in); got != tt.want {
			t.Fatalf("Addr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
