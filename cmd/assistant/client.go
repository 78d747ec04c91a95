package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	sessionauth "docassist-backend/internal/auth"
)

// apiClient talks to the assistant API, attaching the current session
// identity to every request.
type apiClient struct {
	baseURL string
	http    *http.Client
	state   *sessionauth.State

	mu      sync.Mutex
	token   string
	guestID string
}

func newAPIClient(baseURL string, state *sessionauth.State) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
		state:   state,
	}
}

func (c *apiClient) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.guestID = ""
}

func (c *apiClient) setGuest(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guestID = id
	c.token = ""
}

func (c *apiClient) clearIdentity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.guestID = ""
}

func (c *apiClient) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.mu.Lock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else if c.guestID != "" {
		req.Header.Set("X-Guest-Id", c.guestID)
	}
	c.mu.Unlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error.Message != "" {
			return fmt.Errorf("%s: %s", resp.Status, errResp.Error.Message)
		}
		return fmt.Errorf("%s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *apiClient) upload(ctx context.Context, path, title string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := fw.Write(data); err != nil {
		return err
	}
	if title != "" {
		if err := mw.WriteField("title", title); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	var doc struct {
		DocumentID string `json:"documentId"`
		Title      string `json:"title"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/documents", mw.FormDataContentType(), &buf, &doc); err != nil {
		return err
	}
	fmt.Printf("uploaded %s (%s)\n", doc.Title, doc.DocumentID)
	return nil
}

func (c *apiClient) uploadText(ctx context.Context, title, text string) error {
	body, err := json.Marshal(map[string]string{"title": title, "text": text})
	if err != nil {
		return err
	}
	var doc struct {
		DocumentID string `json:"documentId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/documents/text", "application/json", bytes.NewReader(body), &doc); err != nil {
		return err
	}
	fmt.Printf("saved %s (%s)\n", title, doc.DocumentID)
	return nil
}

func (c *apiClient) listDocuments(ctx context.Context) error {
	var resp struct {
		Documents []struct {
			DocumentID string `json:"documentId"`
			Title      string `json:"title"`
			FileName   string `json:"fileName"`
			FileSize   int64  `json:"fileSize"`
		} `json:"documents"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/documents", "", nil, &resp); err != nil {
		return err
	}
	if len(resp.Documents) == 0 {
		fmt.Println("no documents")
		return nil
	}
	for _, d := range resp.Documents {
		fmt.Printf("%s  %s (%s, %d bytes)\n", d.DocumentID, d.Title, d.FileName, d.FileSize)
	}
	return nil
}

func (c *apiClient) generateQuestions(ctx context.Context) error {
	var resp struct {
		Questions []string `json:"questions"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/resumes/questions", "", nil, &resp); err != nil {
		return err
	}
	for i, q := range resp.Questions {
		fmt.Printf("%2d. %s\n", i+1, q)
	}
	return nil
}

func (c *apiClient) ask(ctx context.Context, question string) error {
	body, err := json.Marshal(map[string]any{"message": question})
	if err != nil {
		return err
	}
	var resp struct {
		Reply struct {
			Content string `json:"content"`
		} `json:"reply"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/chat", "application/json", bytes.NewReader(body), &resp); err != nil {
		return err
	}
	fmt.Println(resp.Reply.Content)
	return nil
}
