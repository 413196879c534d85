// Package export is the outbound client for the document-rendering service
// that produces PDF and Word artifacts. This backend only supplies the
// current content snapshot; rendering itself happens elsewhere.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the rendering service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type renderRequest struct {
	DocumentID string `json:"documentId"`
	Content    string `json:"content"`
	Format     string `json:"format"`
}

// Render submits the content snapshot and returns the rendered artifact
// bytes along with the response content type.
func (c *Client) Render(ctx context.Context, documentID, content, format string) ([]byte, string, error) {
	body, err := json.Marshal(renderRequest{
		DocumentID: documentID,
		Content:    content,
		Format:     format,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/render", bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("export service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("export service returned status %d", resp.StatusCode)
	}

	artifact, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read export service response: %w", err)
	}
	return artifact, resp.Header.Get("Content-Type"), nil
}
